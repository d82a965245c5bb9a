package tui

import (
	"io"
	"log/slog"

	"github.com/aalvaropc/byobox/internal/ports"
)

type Deps struct {
	WorkspaceLocator     ports.WorkspaceLocator
	WorkspaceInitializer ports.WorkspaceInitializer

	// Submitter overrides the cart client built from byobox.yaml. Tests use it.
	Submitter ports.CartSubmitter

	Logger *slog.Logger
	Debug  bool
}

func (d Deps) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return d.Logger
}
