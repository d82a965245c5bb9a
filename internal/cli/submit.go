package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/byobox/internal/infra/cartclient"
	"github.com/aalvaropc/byobox/internal/infra/logger"
	"github.com/aalvaropc/byobox/internal/usecase"
)

func submitCmd() *cobra.Command {
	var f boxFlags
	var endpoint string
	var noSave bool

	c := &cobra.Command{
		Use:   "submit",
		Short: "Add a complete box to the storefront cart in one request",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, cat, s, err := f.openSession()
			if err != nil {
				return err
			}

			cleanup := setupLogger(ws.root, debugEnabled(cmd))
			defer cleanup()

			store := ws.cfg.Store
			if e := strings.TrimSpace(endpoint); e != "" {
				store.BaseURL = e
				store.CartPath = ""
			}
			client := cartclient.NewFromStore(store)

			opts := []usecase.SubmitOption{
				usecase.WithLogger(logger.L()),
				usecase.WithSource(cat.Name, client.Endpoint()),
			}
			if !noSave {
				opts = append(opts, usecase.WithReceiptStore(ws.store))
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			r, id, err := usecase.NewSubmitBox(client, opts...).Execute(ctx, s, ws.cfg.Bundle)
			if err != nil {
				return err
			}
			return printReceipt(cmd.OutOrStdout(), r, id, f.format)
		},
	}

	f.register(c)
	c.Flags().StringVar(&endpoint, "endpoint", "", "Full cart add URL (overrides store.base_url + store.cart_path)")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not write a receipt under receipts/")
	return c
}
