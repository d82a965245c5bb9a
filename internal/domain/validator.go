package domain

import (
	"fmt"
	"strings"
)

const msgIncomplete = "Please complete all required categories"

// CanIncrease checks whether one more unit of product fits in the category.
// current is the category's count, qty the product's current quantity.
func CanIncrease(c Category, current int, p Product, qty int) error {
	if current >= c.Max {
		return &ConstraintError{
			Kind:     ConstraintMaxReached,
			Category: c.ID,
			Product:  p.ID,
			Message:  fmt.Sprintf("Cannot select more than %d %s", c.Max, strings.ToLower(c.DisplayName())),
		}
	}
	if !p.AllowDuplicates && qty > 0 {
		title := strings.TrimSpace(p.Title)
		if title == "" {
			title = "this product"
		}
		return &ConstraintError{
			Kind:     ConstraintDuplicate,
			Category: c.ID,
			Product:  p.ID,
			Message:  "Duplicates not allowed for " + title,
		}
	}
	return nil
}

// CategoryValid reports whether a category with the given count satisfies its bounds.
// An overfull category is never valid, even when optional.
func CategoryValid(c Category, current int) bool {
	if current > c.Max {
		return false
	}
	return c.Optional || current >= c.Min
}

// BundleComplete is true iff the box has at least one category and all are valid.
func BundleComplete(box Box, l Ledger) bool {
	if len(box.Categories) == 0 {
		return false
	}
	for _, c := range box.Categories {
		if !CategoryValid(c, l.Count(c.ID)) {
			return false
		}
	}
	return true
}

// RequireComplete returns an incomplete ConstraintError when the bundle cannot be submitted.
func RequireComplete(box Box, l Ledger) error {
	if BundleComplete(box, l) {
		return nil
	}
	return &ConstraintError{Kind: ConstraintIncomplete, Message: msgIncomplete}
}
