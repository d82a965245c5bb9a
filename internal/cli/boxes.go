package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func boxesCmd() *cobra.Command {
	var workspace string
	var catalogArg string

	c := &cobra.Command{
		Use:   "boxes",
		Short: "Show the boxes of a catalog with their categories and products",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			path, err := resolveCatalogPath(ws, catalogArg)
			if err != nil {
				return err
			}

			cat, err := ws.catalogs.LoadCatalog(path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Catalog: %s\n", cat.Name)
			for _, b := range cat.Boxes {
				fmt.Fprintf(out, "\n%s  (fee %s)\n", b.Name, money(b.Fee))
				if b.Description != "" {
					fmt.Fprintf(out, "  %s\n", b.Description)
				}
				for _, c := range b.Categories {
					fmt.Fprintf(out, "  [%s] %s  %s\n", c.ID, c.DisplayName(), limitsLabel(c.Min, c.Max, c.Optional))
					for _, p := range c.Products {
						fmt.Fprintf(out, "    - %s  %s  %s%s\n", p.ID, p.Title, money(p.Price), productFlags(p.AllowDuplicates, p.VariantID))
					}
				}
			}
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&catalogArg, "catalog", "c", "", "Catalog name or path (default: workspace default)")
	return c
}

func limitsLabel(min, max int, optional bool) string {
	s := fmt.Sprintf("(min: %d, max: %d)", min, max)
	if optional {
		s += " optional"
	}
	return s
}

func productFlags(dups bool, variantID string) string {
	s := ""
	if dups {
		s += "  [duplicates ok]"
	}
	if variantID == "" {
		s += "  [no variant]"
	}
	return s
}
