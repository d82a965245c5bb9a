package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/byobox/internal/domain"
	"github.com/aalvaropc/byobox/internal/infra/cartstub"
	"github.com/aalvaropc/byobox/internal/infra/logger"
)

func cartStubCmd() *cobra.Command {
	var workspace string
	var catalogArg string
	var addr string

	c := &cobra.Command{
		Use:   "cart-stub",
		Short: "Serve a local storefront cart API for trying boxes end to end",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := []cartstub.Option{}

			logRoot := "."
			if ws, err := loadWorkspace(workspace); err == nil {
				logRoot = ws.root
				if strings.TrimSpace(catalogArg) != "" {
					path, err := resolveCatalogPath(ws, catalogArg)
					if err != nil {
						return err
					}
					cat, err := ws.catalogs.LoadCatalog(path)
					if err != nil {
						return err
					}
					opts = append(opts, cartstub.WithCatalog(cat, ws.cfg.Bundle))
				}
			} else if strings.TrimSpace(catalogArg) != "" {
				return err
			}

			cleanup := setupLogger(logRoot, debugEnabled(cmd))
			defer cleanup()
			opts = append(opts, cartstub.WithLogger(logger.L()))

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Fprintf(cmd.OutOrStdout(), "Cart stub listening on http://%s (POST /cart/add.js, GET /cart.js)\n", displayAddr(addr))
			return cartstub.New(opts...).ListenAndServe(ctx, addr)
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&catalogArg, "catalog", "c", "", "Only accept variant ids from this catalog")
	c.Flags().StringVar(&addr, "addr", defaultStubAddr(), "Listen address")
	return c
}

func defaultStubAddr() string {
	base := strings.TrimPrefix(domain.DefaultConfig().Store.BaseURL, "http://")
	return strings.TrimSuffix(base, "/")
}

func displayAddr(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "127.0.0.1" + addr
	}
	return addr
}
