package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Product is a selectable item inside a category.
type Product struct {
	ID        string
	VariantID string
	Title     string
	Image     string
	Price     decimal.Decimal

	// AllowDuplicates is resolved at load time (product override, else category default).
	AllowDuplicates bool
}

// Category is a slot in a box with selection bounds.
type Category struct {
	ID   string
	Name string
	Min  int
	Max  int

	// Optional categories never block completion.
	Optional        bool
	AllowDuplicates bool

	Products []Product
}

// Product returns the product with the given id.
func (c Category) Product(id string) (Product, bool) {
	for _, p := range c.Products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// DisplayName falls back to the id when no name is configured.
func (c Category) DisplayName() string {
	if strings.TrimSpace(c.Name) != "" {
		return c.Name
	}
	return c.ID
}

// Box is a bundle configuration: a name, a flat fee and its categories.
type Box struct {
	Name        string
	Description string
	Image       string
	Fee         decimal.Decimal

	Categories []Category
}

// Category returns the category with the given id.
func (b Box) Category(id string) (Category, bool) {
	for _, c := range b.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// Catalog groups the boxes offered by a storefront.
type Catalog struct {
	Name  string
	Path  string
	Boxes []Box
}

// Box looks a box up by name, case-insensitively.
func (c Catalog) Box(name string) (Box, bool) {
	want := strings.TrimSpace(name)
	for _, b := range c.Boxes {
		if strings.EqualFold(b.Name, want) {
			return b, true
		}
	}
	return Box{}, false
}

// CatalogRef is a lightweight reference to a catalog file on disk.
type CatalogRef struct {
	Name string
	Path string
}
