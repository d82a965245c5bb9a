package tui

import "github.com/aalvaropc/byobox/internal/domain"

type workspaceRefreshedMsg struct {
	found bool
	root  string
	err   error
}

type initWorkspaceDoneMsg struct {
	root string
	err  error
}

// boxEntry is one box offered by one catalog.
type boxEntry struct {
	catalog string
	path    string
	box     domain.Box
}

type boxesLoadedMsg struct {
	root    string
	cfg     domain.Config
	entries []boxEntry
	err     error
}

type submitDoneMsg struct {
	receipt domain.Receipt
	id      string
	err     error
}

type toastExpiredMsg struct {
	seq int
}
