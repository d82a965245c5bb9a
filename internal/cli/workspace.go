package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/byobox/internal/domain"
	"github.com/aalvaropc/byobox/internal/infra/catalog"
	"github.com/aalvaropc/byobox/internal/infra/receiptstore"
	"github.com/aalvaropc/byobox/internal/infra/workspacefinder"
	"github.com/aalvaropc/byobox/internal/ports"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config

	catalogs ports.CatalogLoader
	store    ports.ReceiptStore
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	return &workspaceCtx{
		root:     root,
		cfg:      cfg,
		catalogs: catalog.NewLoader(catalog.WithCatalogsDir(cfg.Paths.CatalogsDir)),
		store:    receiptstore.NewJSONStore(root, cfg, receiptstore.WithIndex(true)),
	}, nil
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	if w := strings.TrimSpace(workspaceFlag); w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	root, err := workspacefinder.NewFinder().FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `byobox init`): %w", wd, err)
	}
	return root, nil
}

// resolveCatalogPath accepts a path, a file name under the catalogs dir, a bare
// file stem or a catalog's name field. Empty means the workspace default.
func resolveCatalogPath(ws *workspaceCtx, arg string) (string, error) {
	in := strings.TrimSpace(arg)
	if in == "" {
		in = ws.cfg.Defaults.Catalog
	}
	if in == "" {
		return "", fmt.Errorf("catalog is required (use --catalog or -c)")
	}

	if looksLikePath(in) {
		p := in
		if !filepath.IsAbs(p) {
			p = filepath.Join(ws.root, p)
		}
		return filepath.Clean(p), nil
	}

	dir := filepath.Join(ws.root, ws.cfg.Paths.CatalogsDir)

	if hasYAMLExt(in) {
		if p := filepath.Join(dir, in); fileExists(p) {
			return p, nil
		}
	}
	for _, ext := range []string{".yaml", ".yml"} {
		if p := filepath.Join(dir, in+ext); fileExists(p) {
			return p, nil
		}
	}

	if refs, err := ws.catalogs.ListCatalogs(ws.root); err == nil {
		for _, r := range refs {
			if strings.EqualFold(r.Name, in) {
				return r.Path, nil
			}
		}
	}

	return "", &domain.OpError{
		Op:   "catalog.resolve",
		Kind: domain.KindNotFound,
		Path: dir,
		Err:  fmt.Errorf("catalog %q: %w", in, domain.ErrNotFound),
	}
}

func looksLikePath(s string) bool {
	return strings.Contains(s, "/") || strings.Contains(s, string(filepath.Separator))
}

func hasYAMLExt(s string) bool {
	ext := strings.ToLower(filepath.Ext(s))
	return ext == ".yaml" || ext == ".yml"
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
