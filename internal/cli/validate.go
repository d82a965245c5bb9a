package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/byobox/internal/usecase"
)

func validateCmd() *cobra.Command {
	var workspace string
	var catalogArg string
	var format string

	c := &cobra.Command{
		Use:   "validate",
		Short: "Check that every box in a catalog can be completed (no HTTP)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			path, err := resolveCatalogPath(ws, catalogArg)
			if err != nil {
				return err
			}

			rep, err := usecase.NewValidateCatalog(ws.catalogs).Execute(path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(rep); err != nil {
					return err
				}
			case "pretty", "":
				for _, is := range rep.Issues {
					where := is.Box
					if is.Category != "" {
						where += " / " + is.Category
					}
					if is.Product != "" {
						where += " / " + is.Product
					}
					fmt.Fprintf(out, "%-7s %s: %s\n", is.Severity, where, is.Message)
				}
				if rep.OK() {
					fmt.Fprintf(out, "OK (%d boxes, %d warnings)\n", rep.Boxes, rep.Warnings())
				}
			default:
				return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
			}

			if !rep.OK() {
				return fmt.Errorf("catalog %q has %d error(s)", rep.Catalog, rep.Errors())
			}
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&catalogArg, "catalog", "c", "", "Catalog name or path (default: workspace default)")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}
