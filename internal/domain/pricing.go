package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

// QuoteLine is the priced view of one selected product.
type QuoteLine struct {
	CategoryID string          `json:"category_id"`
	ProductID  string          `json:"product_id"`
	VariantID  string          `json:"variant_id,omitempty"`
	Title      string          `json:"title"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	LineTotal  decimal.Decimal `json:"line_total"`
}

// Quote is the full price of a box as currently selected.
type Quote struct {
	BoxName       string          `json:"box"`
	Lines         []QuoteLine     `json:"lines"`
	ProductsTotal decimal.Decimal `json:"products_total"`
	Fee           decimal.Decimal `json:"fee"`
	Total         decimal.Decimal `json:"total"`
	Complete      bool            `json:"complete"`
}

// PriceBox recomputes the quote from scratch: Total = Fee + Σ(UnitPrice × Quantity).
func PriceBox(box Box, l Ledger) Quote {
	lines := l.Lines(box)
	q := Quote{
		BoxName:       box.Name,
		Lines:         make([]QuoteLine, 0, len(lines)),
		ProductsTotal: decimal.Zero,
		Fee:           box.Fee,
		Complete:      BundleComplete(box, l),
	}

	for _, ln := range lines {
		lt := ln.LineTotal()
		q.Lines = append(q.Lines, QuoteLine{
			CategoryID: ln.CategoryID,
			ProductID:  ln.ProductID,
			VariantID:  ln.VariantID,
			Title:      ln.Title,
			Quantity:   ln.Quantity,
			UnitPrice:  ln.UnitPrice,
			LineTotal:  lt,
		})
		q.ProductsTotal = q.ProductsTotal.Add(lt)
	}

	q.Total = q.ProductsTotal.Add(box.Fee)
	return q
}

// CategoryProgress is current/max as a percentage capped at 100; 0 when max is 0.
func CategoryProgress(current, max int) float64 {
	if max <= 0 {
		return 0
	}
	return math.Min(float64(current)/float64(max)*100, 100)
}

// OverallProgress averages min-progress across required categories, 100 when none.
func OverallProgress(states []CategoryState) float64 {
	total := 0.0
	required := 0
	for _, s := range states {
		if s.Category.Optional || s.Category.Min <= 0 {
			continue
		}
		total += math.Min(float64(s.Current)/float64(s.Category.Min)*100, 100)
		required++
	}
	if required == 0 {
		return 100
	}
	return total / float64(required)
}
