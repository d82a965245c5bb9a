package ports

import "github.com/aalvaropc/byobox/internal/domain"

// CatalogLoader loads box catalogs from a source (e.g., filesystem).
type CatalogLoader interface {
	LoadCatalog(path string) (domain.Catalog, error)
	ListCatalogs(root string) ([]domain.CatalogRef, error)
}
