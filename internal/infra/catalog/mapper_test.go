package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/aalvaropc/byobox/internal/domain"
)

func boolPtr(b bool) *bool { return &b }
func intPtr(n int) *int    { return &n }

func TestMapCatalogRequiresNameAndBoxes(t *testing.T) {
	_, err := MapCatalog("c.yaml", yamlCatalog{})
	if err == nil || !strings.Contains(err.Error(), "field name") {
		t.Fatalf("expected name error, got %v", err)
	}

	_, err = MapCatalog("c.yaml", yamlCatalog{Name: "x"})
	if err == nil || !strings.Contains(err.Error(), "field boxes") {
		t.Fatalf("expected boxes error, got %v", err)
	}
	if !errors.Is(err, domain.ErrInvalidConfig) || !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid config, got %v", err)
	}
}

func TestMapCatalogFieldPaths(t *testing.T) {
	yc := yamlCatalog{
		Name: "x",
		Boxes: []yamlBox{{
			Name: "b",
			Categories: []yamlCategory{
				{ID: "a", Limits: "(min: 1, max: 1)"},
				{ID: "c", Products: []yamlProduct{{ID: "p", Price: "free"}}},
			},
		}},
	}

	_, err := MapCatalog("c.yaml", yc)
	if err == nil || !strings.Contains(err.Error(), "boxes[0].categories[1].products[0].price") {
		t.Fatalf("expected price path, got %v", err)
	}
}

func TestMapCatalogRejectsInvertedLimits(t *testing.T) {
	yc := yamlCatalog{
		Name:  "x",
		Boxes: []yamlBox{{Name: "b", Categories: []yamlCategory{{ID: "a", Min: intPtr(3), Max: intPtr(2)}}}},
	}
	_, err := MapCatalog("c.yaml", yc)
	if err == nil || !strings.Contains(err.Error(), "categories[0].limits") {
		t.Fatalf("expected limits error, got %v", err)
	}
}

func TestMapCatalogRejectsDuplicateIDs(t *testing.T) {
	yc := yamlCatalog{
		Name: "x",
		Boxes: []yamlBox{{Name: "b", Categories: []yamlCategory{
			{ID: "a", Products: []yamlProduct{{ID: "p"}, {ID: "p"}}},
		}}},
	}
	if _, err := MapCatalog("c.yaml", yc); err == nil || !strings.Contains(err.Error(), "duplicate product id") {
		t.Fatalf("expected duplicate product error, got %v", err)
	}

	yc.Boxes = append(yc.Boxes, yamlBox{Name: "B"})
	yc.Boxes[0].Categories[0].Products = nil
	if _, err := MapCatalog("c.yaml", yc); err == nil || !strings.Contains(err.Error(), "duplicate box name") {
		t.Fatalf("expected duplicate box error, got %v", err)
	}
}

func TestMapCatalogDuplicateResolution(t *testing.T) {
	yc := yamlCatalog{
		Name: "x",
		Boxes: []yamlBox{{Name: "b", Categories: []yamlCategory{
			{
				ID: "first-product-wins",
				Products: []yamlProduct{
					{ID: "p1", AllowDuplicates: boolPtr(true)},
					{ID: "p2"},
					{ID: "p3", AllowDuplicates: boolPtr(false)},
				},
			},
			{
				ID:              "category-flag",
				AllowDuplicates: boolPtr(false),
				Products: []yamlProduct{
					{ID: "p1", AllowDuplicates: boolPtr(true)},
					{ID: "p2"},
				},
			},
		}}},
	}

	cat, err := MapCatalog("c.yaml", yc)
	if err != nil {
		t.Fatalf("MapCatalog error: %v", err)
	}

	c0 := cat.Boxes[0].Categories[0]
	if !c0.AllowDuplicates || !c0.Products[0].AllowDuplicates || !c0.Products[1].AllowDuplicates || c0.Products[2].AllowDuplicates {
		t.Fatalf("unexpected duplicate flags: %+v", c0)
	}

	c1 := cat.Boxes[0].Categories[1]
	if c1.AllowDuplicates || !c1.Products[0].AllowDuplicates || c1.Products[1].AllowDuplicates {
		t.Fatalf("unexpected duplicate flags: %+v", c1)
	}
}

func TestMapCatalogDefaults(t *testing.T) {
	yc := yamlCatalog{
		Name: "x",
		Boxes: []yamlBox{{Name: "b", Categories: []yamlCategory{
			{ID: "a", Products: []yamlProduct{{ID: "p"}}},
		}}},
	}
	cat, err := MapCatalog("c.yaml", yc)
	if err != nil {
		t.Fatalf("MapCatalog error: %v", err)
	}

	c := cat.Boxes[0].Categories[0]
	if c.Min != 0 || c.Max != 1 || !c.Optional {
		t.Fatalf("expected 0..1 optional, got %+v", c)
	}
	if c.Name != "a" || c.Products[0].Title != "p" {
		t.Fatalf("expected id fallbacks, got %+v", c)
	}
	if !c.Products[0].Price.IsZero() || !cat.Boxes[0].Fee.IsZero() {
		t.Fatalf("expected zero prices")
	}
}
