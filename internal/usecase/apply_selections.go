package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aalvaropc/byobox/internal/domain"
)

// Selection asks for Quantity units of a product in a category.
type Selection struct {
	CategoryID string
	ProductID  string
	Quantity   int
}

// ParseSelection reads "category/product" or "category/product=qty".
func ParseSelection(s string) (Selection, error) {
	raw := strings.TrimSpace(s)
	ref, qtyText, hasQty := strings.Cut(raw, "=")

	cat, prod, ok := strings.Cut(ref, "/")
	cat, prod = strings.TrimSpace(cat), strings.TrimSpace(prod)
	if !ok || cat == "" || prod == "" {
		return Selection{}, &domain.OpError{
			Op:   "selection.parse",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("selection %q must look like category/product[=qty]: %w", s, domain.ErrInvalidConfig),
		}
	}

	qty := 1
	if hasQty {
		n, err := strconv.Atoi(strings.TrimSpace(qtyText))
		if err != nil || n < 1 {
			return Selection{}, &domain.OpError{
				Op:   "selection.parse",
				Kind: domain.KindInvalidConfig,
				Err:  fmt.Errorf("selection %q: quantity must be a positive integer: %w", s, domain.ErrInvalidConfig),
			}
		}
		qty = n
	}

	return Selection{CategoryID: cat, ProductID: prod, Quantity: qty}, nil
}

// ApplySelections adds each selection one unit at a time. It stops at the first
// rejected unit and returns the session as of the last accepted one.
func ApplySelections(s domain.Session, sels []Selection) (domain.Session, error) {
	for _, sel := range sels {
		qty := sel.Quantity
		if qty <= 0 {
			qty = 1
		}
		for i := 0; i < qty; i++ {
			next, err := s.Increase(sel.CategoryID, sel.ProductID)
			if err != nil {
				return s, err
			}
			s = next
		}
	}
	return s, nil
}
