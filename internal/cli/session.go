package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/byobox/internal/domain"
	"github.com/aalvaropc/byobox/internal/usecase"
)

// boxFlags are shared by quote and submit.
type boxFlags struct {
	workspace string
	catalog   string
	box       string
	selects   []string
	format    string
}

func (f *boxFlags) register(c *cobra.Command) {
	c.Flags().StringVarP(&f.workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&f.catalog, "catalog", "c", "", "Catalog name or path (default: workspace default)")
	c.Flags().StringVarP(&f.box, "box", "b", "", "Box name (optional when the catalog has one box)")
	c.Flags().StringArrayVarP(&f.selects, "select", "s", nil, "Selection category/product[=qty], repeatable")
	c.Flags().StringVar(&f.format, "format", "pretty", "Output format: pretty|json")
}

// openSession loads the workspace, opens the box and applies the selections in order.
func (f *boxFlags) openSession() (*workspaceCtx, domain.Catalog, domain.Session, error) {
	ws, err := loadWorkspace(f.workspace)
	if err != nil {
		return nil, domain.Catalog{}, domain.Session{}, err
	}

	path, err := resolveCatalogPath(ws, f.catalog)
	if err != nil {
		return nil, domain.Catalog{}, domain.Session{}, err
	}

	cat, err := ws.catalogs.LoadCatalog(path)
	if err != nil {
		return nil, domain.Catalog{}, domain.Session{}, err
	}

	box, err := usecase.FindBox(cat, f.box)
	if err != nil {
		return nil, domain.Catalog{}, domain.Session{}, err
	}

	sels := make([]usecase.Selection, 0, len(f.selects))
	for _, raw := range f.selects {
		sel, err := usecase.ParseSelection(raw)
		if err != nil {
			return nil, domain.Catalog{}, domain.Session{}, err
		}
		sels = append(sels, sel)
	}

	s, err := usecase.ApplySelections(domain.NewSession(box), sels)
	if err != nil {
		return nil, domain.Catalog{}, domain.Session{}, err
	}
	return ws, cat, s, nil
}
