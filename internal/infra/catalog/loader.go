package catalog

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/byobox/internal/domain"
	"github.com/aalvaropc/byobox/internal/ports"
)

type Loader struct {
	catalogsDir string
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{catalogsDir: "catalogs"}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type Option func(*Loader)

func WithCatalogsDir(dir string) Option {
	return func(l *Loader) { l.catalogsDir = dir }
}

var _ ports.CatalogLoader = (*Loader)(nil)

func (l *Loader) LoadCatalog(path string) (domain.Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Catalog{}, &domain.OpError{
			Op:   "catalog.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var yc yamlCatalog
	if err := yaml.Unmarshal(b, &yc); err != nil {
		return domain.Catalog{}, &domain.OpError{
			Op:   "catalog.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapCatalog(path, yc)
}

func (l *Loader) ListCatalogs(root string) ([]domain.CatalogRef, error) {
	dir := filepath.Join(root, l.catalogsDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "catalog.list",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var refs []domain.CatalogRef
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		low := strings.ToLower(name)
		if !strings.HasSuffix(low, ".yaml") && !strings.HasSuffix(low, ".yml") {
			continue
		}

		p := filepath.Join(dir, name)
		n, _ := readCatalogName(p)
		if strings.TrimSpace(n) == "" {
			n = strings.TrimSuffix(name, filepath.Ext(name))
		}

		refs = append(refs, domain.CatalogRef{Name: n, Path: p})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

func readCatalogName(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var v struct {
		Name string `yaml:"name"`
	}
	if err := yaml.Unmarshal(b, &v); err != nil {
		return "", err
	}
	return v.Name, nil
}
