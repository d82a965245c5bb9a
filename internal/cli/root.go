package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/byobox/internal/infra/fsworkspace"
	"github.com/aalvaropc/byobox/internal/infra/logger"
	"github.com/aalvaropc/byobox/internal/infra/workspacefinder"
	"github.com/aalvaropc/byobox/internal/ui/tui"
)

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "byobox",
		Short:        "byobox: build-your-own box builder for storefront carts",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			wd, err := os.Getwd()
			if err != nil {
				wd = "."
			}
			wd, _ = filepath.Abs(wd)

			finder := workspacefinder.NewFinder()

			logRoot := wd
			if root, ferr := finder.FindRoot(wd); ferr == nil && root != "" {
				logRoot = root
			}

			cleanup := setupLogger(logRoot, debug)
			defer cleanup()

			return tui.Run(tui.Deps{
				WorkspaceLocator:     finder,
				WorkspaceInitializer: fsworkspace.NewInitializer(),
				Logger:               logger.L(),
				Debug:                debug,
			})
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .byobox/logs/byobox.log")

	cmd.AddCommand(
		initCmd(),
		versionCmd(),
		catalogsCmd(),
		boxesCmd(),
		validateCmd(),
		quoteCmd(),
		submitCmd(),
		cartStubCmd(),
	)
	return cmd
}

// setupLogger starts file logging under root. Logging problems never stop a command.
func setupLogger(root string, debug bool) func() {
	cleanup, err := logger.Setup(logger.Config{Root: root, Debug: debug})
	if err != nil || cleanup == nil {
		return func() {}
	}
	return func() { _ = cleanup() }
}

func debugEnabled(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("debug")
	return v
}
