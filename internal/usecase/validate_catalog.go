package usecase

import (
	"fmt"

	"github.com/aalvaropc/byobox/internal/domain"
	"github.com/aalvaropc/byobox/internal/ports"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is one finding about a box.
type Issue struct {
	Severity Severity `json:"severity"`
	Box      string   `json:"box"`
	Category string   `json:"category,omitempty"`
	Product  string   `json:"product,omitempty"`
	Message  string   `json:"message"`
}

// CatalogReport lists what is wrong with a catalog that otherwise parsed fine.
type CatalogReport struct {
	Catalog string  `json:"catalog"`
	Path    string  `json:"path"`
	Boxes   int     `json:"boxes"`
	Issues  []Issue `json:"issues"`
}

func (r CatalogReport) count(sev Severity) int {
	n := 0
	for _, is := range r.Issues {
		if is.Severity == sev {
			n++
		}
	}
	return n
}

func (r CatalogReport) Errors() int   { return r.count(SeverityError) }
func (r CatalogReport) Warnings() int { return r.count(SeverityWarning) }

// OK is true when every box can be completed.
func (r CatalogReport) OK() bool { return r.Errors() == 0 }

type ValidateCatalog struct {
	catalogs ports.CatalogLoader
}

func NewValidateCatalog(cl ports.CatalogLoader) *ValidateCatalog {
	return &ValidateCatalog{catalogs: cl}
}

// Execute loads a catalog and checks that each box can actually be completed by a shopper.
func (uc *ValidateCatalog) Execute(path string) (CatalogReport, error) {
	cat, err := uc.catalogs.LoadCatalog(path)
	if err != nil {
		return CatalogReport{}, err
	}

	rep := CatalogReport{
		Catalog: cat.Name,
		Path:    path,
		Boxes:   len(cat.Boxes),
		Issues:  []Issue{},
	}
	for _, b := range cat.Boxes {
		rep.Issues = append(rep.Issues, checkBox(b)...)
	}
	return rep, nil
}

func checkBox(b domain.Box) []Issue {
	var out []Issue
	add := func(sev Severity, c, p, msg string) {
		out = append(out, Issue{Severity: sev, Box: b.Name, Category: c, Product: p, Message: msg})
	}

	if len(b.Categories) == 0 {
		add(SeverityError, "", "", "box has no categories and can never be completed")
		return out
	}

	for _, c := range b.Categories {
		required := !c.Optional && c.Min > 0

		if c.Max < 1 {
			add(SeverityError, c.ID, "", fmt.Sprintf("max is %d; nothing can be selected", c.Max))
		}
		if len(c.Products) == 0 {
			sev := SeverityWarning
			if required {
				sev = SeverityError
			}
			add(sev, c.ID, "", "category has no products")
			continue
		}

		if required {
			if reach := reachable(c); reach < c.Min {
				add(SeverityError, c.ID, "", fmt.Sprintf("needs %d items but only %d can be selected without duplicates", c.Min, reach))
			}
		}

		for _, p := range c.Products {
			if p.VariantID == "" {
				add(SeverityWarning, c.ID, p.ID, "no variant id; the product will be left out of the cart")
			}
		}
	}
	return out
}

// reachable is the largest count a category can hold given its duplicate rules.
func reachable(c domain.Category) int {
	n := 0
	for _, p := range c.Products {
		if p.AllowDuplicates {
			return c.Max
		}
		n++
	}
	if n > c.Max {
		return c.Max
	}
	return n
}
