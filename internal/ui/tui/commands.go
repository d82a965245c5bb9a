package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/byobox/internal/domain"
	"github.com/aalvaropc/byobox/internal/infra/cartclient"
	"github.com/aalvaropc/byobox/internal/infra/catalog"
	"github.com/aalvaropc/byobox/internal/infra/receiptstore"
	"github.com/aalvaropc/byobox/internal/infra/workspacefinder"
	"github.com/aalvaropc/byobox/internal/usecase"
)

const toastTTL = 3 * time.Second

func cmdRefreshWorkspace(deps Deps) tea.Cmd {
	return func() tea.Msg {
		wd, err := os.Getwd()
		if err != nil {
			return workspaceRefreshedMsg{err: fmt.Errorf("getwd: %w", err)}
		}
		if deps.WorkspaceLocator == nil {
			return workspaceRefreshedMsg{err: errors.New("workspace locator is nil")}
		}

		root, err := deps.WorkspaceLocator.FindRoot(wd)
		if err != nil {
			return workspaceRefreshedMsg{err: err}
		}
		return workspaceRefreshedMsg{found: true, root: root}
	}
}

func cmdInitWorkspaceHere(deps Deps) tea.Cmd {
	return func() tea.Msg {
		wd, err := os.Getwd()
		if err != nil {
			return initWorkspaceDoneMsg{err: err}
		}
		if deps.WorkspaceInitializer == nil {
			return initWorkspaceDoneMsg{root: wd, err: errors.New("workspace initializer is nil")}
		}
		err = usecase.NewInitWorkspace(deps.WorkspaceInitializer).Execute(wd, false)
		return initWorkspaceDoneMsg{root: wd, err: err}
	}
}

// cmdLoadBoxes reads every catalog in the workspace. A broken catalog is logged and
// skipped so one bad file does not hide the others.
func cmdLoadBoxes(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		cfg, err := workspacefinder.LoadConfig(root)
		if err != nil {
			return boxesLoadedMsg{root: root, err: err}
		}

		loader := catalog.NewLoader(catalog.WithCatalogsDir(cfg.Paths.CatalogsDir))
		refs, err := loader.ListCatalogs(root)
		if err != nil {
			return boxesLoadedMsg{root: root, cfg: cfg, err: err}
		}

		var entries []boxEntry
		var firstErr error
		for _, ref := range refs {
			cat, err := loader.LoadCatalog(ref.Path)
			if err != nil {
				deps.logger().Warn("catalog.load_failed", "path", ref.Path, "err", err)
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
			for _, b := range cat.Boxes {
				entries = append(entries, boxEntry{catalog: cat.Name, path: ref.Path, box: b})
			}
		}

		if len(entries) == 0 && firstErr != nil {
			return boxesLoadedMsg{root: root, cfg: cfg, err: firstErr}
		}
		return boxesLoadedMsg{root: root, cfg: cfg, entries: entries}
	}
}

// cmdSubmit runs one submission off the update loop.
func cmdSubmit(deps Deps, root string, cfg domain.Config, catalogName string, s domain.Session) tea.Cmd {
	return func() tea.Msg {
		log := deps.logger()

		submitter := deps.Submitter
		endpoint := cfg.Store.CartURL()
		if submitter == nil {
			submitter = cartclient.NewFromStore(cfg.Store)
		}

		opts := []usecase.SubmitOption{
			usecase.WithLogger(log),
			usecase.WithSource(catalogName, endpoint),
		}
		if root != "" {
			opts = append(opts, usecase.WithReceiptStore(receiptstore.NewJSONStore(root, cfg, receiptstore.WithIndex(true))))
		}

		timeout := cfg.Store.Timeout
		if timeout <= 0 {
			timeout = domain.DefaultConfig().Store.Timeout
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout+5*time.Second)
		defer cancel()

		r, id, err := usecase.NewSubmitBox(submitter, opts...).Execute(ctx, s, cfg.Bundle)
		return submitDoneMsg{receipt: r, id: id, err: err}
	}
}

func cmdExpireToast(seq int) tea.Cmd {
	return tea.Tick(toastTTL, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}
