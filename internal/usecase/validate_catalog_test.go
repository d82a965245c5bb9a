package usecase

import (
	"errors"
	"testing"

	"github.com/aalvaropc/byobox/internal/domain"
)

func TestValidateCatalog_CleanCatalog(t *testing.T) {
	cat := giftCatalog()
	cat.Boxes[0].Categories[2].Products[0].VariantID = "701"

	rep, err := NewValidateCatalog(fakeCatalogLoader{cat: cat}).Execute("gifts.yaml")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if !rep.OK() || rep.Warnings() != 0 || rep.Boxes != 1 {
		t.Fatalf("expected clean report, got %+v", rep)
	}
}

func TestValidateCatalog_ReportsProblems(t *testing.T) {
	box := giftBox()
	// card needs 2 distinct products without duplicates but has one
	box.Categories[1].Min = 2
	box.Categories[1].Max = 2

	empty := domain.Box{Name: "Empty"}
	cat := domain.Catalog{Name: "gifts", Boxes: []domain.Box{box, empty}}

	rep, err := NewValidateCatalog(fakeCatalogLoader{cat: cat}).Execute("gifts.yaml")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if rep.OK() {
		t.Fatalf("expected errors")
	}
	if rep.Errors() != 2 {
		t.Fatalf("expected 2 errors, got %+v", rep.Issues)
	}
	if rep.Warnings() != 1 {
		t.Fatalf("expected missing variant warning, got %+v", rep.Issues)
	}

	found := false
	for _, is := range rep.Issues {
		if is.Category == "card" && is.Severity == SeverityError {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected card issue, got %+v", rep.Issues)
	}
}

func TestValidateCatalog_LoadError(t *testing.T) {
	loadErr := errors.New("catalog not found")
	_, err := NewValidateCatalog(fakeCatalogLoader{err: loadErr}).Execute("x.yaml")
	if !errors.Is(err, loadErr) {
		t.Fatalf("expected wrapped loadErr, got %v", err)
	}
}

func TestReachable(t *testing.T) {
	c := domain.Category{Max: 3, Products: []domain.Product{{ID: "a"}, {ID: "b"}}}
	if got := reachable(c); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
	c.Products[1].AllowDuplicates = true
	if got := reachable(c); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
}
