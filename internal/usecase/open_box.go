package usecase

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/byobox/internal/domain"
	"github.com/aalvaropc/byobox/internal/ports"
)

type OpenBox struct {
	catalogs ports.CatalogLoader
}

func NewOpenBox(cl ports.CatalogLoader) *OpenBox {
	return &OpenBox{catalogs: cl}
}

// Execute loads the catalog and starts an empty session for the named box.
// An empty name is accepted when the catalog offers exactly one box.
func (uc *OpenBox) Execute(catalogPath, boxName string) (domain.Session, error) {
	cat, err := uc.catalogs.LoadCatalog(catalogPath)
	if err != nil {
		return domain.Session{}, err
	}

	box, err := FindBox(cat, boxName)
	if err != nil {
		return domain.Session{}, err
	}
	return domain.NewSession(box), nil
}

// FindBox resolves a box by name inside a loaded catalog.
func FindBox(cat domain.Catalog, name string) (domain.Box, error) {
	if strings.TrimSpace(name) == "" && len(cat.Boxes) == 1 {
		return cat.Boxes[0], nil
	}

	box, ok := cat.Box(name)
	if !ok {
		return domain.Box{}, &domain.OpError{
			Op:   "box.open",
			Kind: domain.KindNotFound,
			Path: cat.Path,
			Err:  fmt.Errorf("box %q not found in catalog: %w", name, domain.ErrNotFound),
		}
	}
	return box, nil
}
