package usecase

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/aalvaropc/byobox/internal/domain"
)

// --- fakes shared by the use case tests ---

type fakeCatalogLoader struct {
	cat domain.Catalog
	err error
}

func (f fakeCatalogLoader) LoadCatalog(path string) (domain.Catalog, error) {
	if f.err != nil {
		return domain.Catalog{}, f.err
	}
	c := f.cat
	c.Path = path
	return c, nil
}

func (f fakeCatalogLoader) ListCatalogs(_ string) ([]domain.CatalogRef, error) {
	return nil, nil
}

// recordingSubmitter captures each request and answers with resp/err.
type recordingSubmitter struct {
	mu   sync.Mutex
	reqs []domain.CartRequest
	resp domain.CartResponse
	err  error
}

func (s *recordingSubmitter) Submit(_ context.Context, req domain.CartRequest) (domain.CartResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reqs = append(s.reqs, req)
	return s.resp, s.err
}

type fakeStore struct {
	saved []domain.Receipt
	err   error
}

func (s *fakeStore) SaveReceipt(r domain.Receipt) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.saved = append(s.saved, r)
	return "receipt-1", nil
}

func money(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// giftBox: treats 1..2 (dups ok), card exactly 1, wrap optional.
func giftBox() domain.Box {
	return domain.Box{
		Name: "Gift Box",
		Fee:  money("3.00"),
		Categories: []domain.Category{
			{
				ID: "treats", Name: "Treats", Min: 1, Max: 2, AllowDuplicates: true,
				Products: []domain.Product{
					{ID: "fudge", VariantID: "501", Title: "Fudge", Price: money("6.50"), AllowDuplicates: true},
					{ID: "toffee", VariantID: "502", Title: "Toffee", Price: money("4.00"), AllowDuplicates: true},
				},
			},
			{
				ID: "card", Name: "Card", Min: 1, Max: 1,
				Products: []domain.Product{
					{ID: "thanks", VariantID: "601", Title: "Thank You Card", Price: money("1.25")},
				},
			},
			{
				ID: "wrap", Name: "Wrap", Min: 0, Max: 1, Optional: true,
				Products: []domain.Product{
					{ID: "ribbon", Title: "Ribbon", Price: money("0.50")},
				},
			},
		},
	}
}

func giftCatalog() domain.Catalog {
	return domain.Catalog{Name: "gifts", Boxes: []domain.Box{giftBox()}}
}
