package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// SelectedProduct is a product currently in the box. It only exists while Quantity > 0.
type SelectedProduct struct {
	ProductID string
	VariantID string
	Quantity  int
	UnitPrice decimal.Decimal
	Title     string
	Image     string
}

// LineTotal is UnitPrice × Quantity.
func (p SelectedProduct) LineTotal() decimal.Decimal {
	return p.UnitPrice.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// LedgerLine is a selected product together with its category.
type LedgerLine struct {
	CategoryID string
	SelectedProduct
}

// Ledger records the current selections: category id -> product id -> selection.
//
// A Ledger is immutable. Set and Remove return a new Ledger and leave the receiver
// untouched; inner maps are shared until written, then copied.
type Ledger struct {
	entries map[string]map[string]SelectedProduct
}

// NewLedger returns an empty ledger.
func NewLedger() Ledger {
	return Ledger{}
}

// Get returns the selection for a product.
func (l Ledger) Get(categoryID, productID string) (SelectedProduct, bool) {
	p, ok := l.entries[categoryID][productID]
	return p, ok
}

// Quantity returns the selected quantity for a product, 0 when absent.
func (l Ledger) Quantity(categoryID, productID string) int {
	return l.entries[categoryID][productID].Quantity
}

// Count is the sum of quantities in a category (the category's current count).
func (l Ledger) Count(categoryID string) int {
	n := 0
	for _, p := range l.entries[categoryID] {
		n += p.Quantity
	}
	return n
}

// Len returns the number of distinct selected products.
func (l Ledger) Len() int {
	n := 0
	for _, products := range l.entries {
		n += len(products)
	}
	return n
}

// Set stores p under the category. A quantity <= 0 removes the entry instead.
func (l Ledger) Set(categoryID string, p SelectedProduct) Ledger {
	if p.Quantity <= 0 {
		return l.Remove(categoryID, p.ProductID)
	}

	out := l.cloneOuter()
	inner := make(map[string]SelectedProduct, len(l.entries[categoryID])+1)
	for k, v := range l.entries[categoryID] {
		inner[k] = v
	}
	inner[p.ProductID] = p
	out.entries[categoryID] = inner
	return out
}

// Remove deletes a product's entry. Empty categories are dropped.
func (l Ledger) Remove(categoryID, productID string) Ledger {
	if _, ok := l.entries[categoryID][productID]; !ok {
		return l
	}

	out := l.cloneOuter()
	inner := make(map[string]SelectedProduct, len(l.entries[categoryID]))
	for k, v := range l.entries[categoryID] {
		if k != productID {
			inner[k] = v
		}
	}
	if len(inner) == 0 {
		delete(out.entries, categoryID)
	} else {
		out.entries[categoryID] = inner
	}
	return out
}

// Lines lists selections in the box's category and product order. Entries the box does
// not know about come last, sorted by id.
func (l Ledger) Lines(box Box) []LedgerLine {
	out := make([]LedgerLine, 0, l.Len())
	seen := map[string]map[string]bool{}

	for _, c := range box.Categories {
		for _, p := range c.Products {
			sp, ok := l.entries[c.ID][p.ID]
			if !ok {
				continue
			}
			out = append(out, LedgerLine{CategoryID: c.ID, SelectedProduct: sp})
			if seen[c.ID] == nil {
				seen[c.ID] = map[string]bool{}
			}
			seen[c.ID][p.ID] = true
		}
	}

	var rest []LedgerLine
	for cid, products := range l.entries {
		for pid, sp := range products {
			if seen[cid][pid] {
				continue
			}
			rest = append(rest, LedgerLine{CategoryID: cid, SelectedProduct: sp})
		}
	}
	sort.Slice(rest, func(i, j int) bool {
		if rest[i].CategoryID != rest[j].CategoryID {
			return rest[i].CategoryID < rest[j].CategoryID
		}
		return rest[i].ProductID < rest[j].ProductID
	})

	return append(out, rest...)
}

func (l Ledger) cloneOuter() Ledger {
	out := Ledger{entries: make(map[string]map[string]SelectedProduct, len(l.entries)+1)}
	for k, v := range l.entries {
		out.entries[k] = v
	}
	return out
}
