package domain

import "fmt"

// MaxUndoHistory bounds how many previous ledgers a session remembers.
const MaxUndoHistory = 10

// CategoryState is a category together with its derived selection status.
type CategoryState struct {
	Category Category
	Current  int
	Valid    bool
	Progress float64
}

// Session is one shopper building one box. Every mutation returns a new Session;
// a rejected mutation returns the receiver unchanged together with a ConstraintError.
type Session struct {
	box     Box
	ledger  Ledger
	history []Ledger
	dirty   bool
}

// NewSession opens an empty selection for box.
func NewSession(box Box) Session {
	return Session{box: box, ledger: NewLedger()}
}

func (s Session) Box() Box       { return s.box }
func (s Session) Ledger() Ledger { return s.ledger }
func (s Session) Dirty() bool    { return s.dirty }
func (s Session) CanUndo() bool  { return len(s.history) > 0 }

// Increase adds one unit of a product.
func (s Session) Increase(categoryID, productID string) (Session, error) {
	c, p, err := s.lookup(categoryID, productID)
	if err != nil {
		return s, err
	}

	qty := s.ledger.Quantity(c.ID, p.ID)
	if err := CanIncrease(c, s.ledger.Count(c.ID), p, qty); err != nil {
		return s, err
	}

	return s.apply(c.ID, selectionOf(p, qty+1)), nil
}

// Decrease removes one unit of a product; removing the last unit drops the entry.
func (s Session) Decrease(categoryID, productID string) (Session, error) {
	c, p, err := s.lookup(categoryID, productID)
	if err != nil {
		return s, err
	}

	qty := s.ledger.Quantity(c.ID, p.ID)
	if qty <= 0 {
		return s, &ConstraintError{
			Kind:     ConstraintNoChange,
			Category: c.ID,
			Product:  p.ID,
			Message:  "No change in quantity",
		}
	}

	return s.apply(c.ID, selectionOf(p, qty-1)), nil
}

// Reset drops all selections and the undo history.
func (s Session) Reset() Session {
	return Session{box: s.box, ledger: NewLedger()}
}

// Undo restores the ledger as it was before the last accepted change.
func (s Session) Undo() (Session, bool) {
	if len(s.history) == 0 {
		return s, false
	}
	n := len(s.history)
	out := s
	out.ledger = s.history[n-1]
	out.history = append([]Ledger(nil), s.history[:n-1]...)
	out.dirty = true
	return out, true
}

// MarkSubmitted clears the dirty flag after the box reached the cart.
func (s Session) MarkSubmitted() Session {
	s.dirty = false
	return s
}

// Quantity returns the selected quantity of a product.
func (s Session) Quantity(categoryID, productID string) int {
	return s.ledger.Quantity(categoryID, productID)
}

// CategoryStates derives the status of every category in box order.
func (s Session) CategoryStates() []CategoryState {
	out := make([]CategoryState, 0, len(s.box.Categories))
	for _, c := range s.box.Categories {
		cur := s.ledger.Count(c.ID)
		out = append(out, CategoryState{
			Category: c,
			Current:  cur,
			Valid:    CategoryValid(c, cur),
			Progress: CategoryProgress(cur, c.Max),
		})
	}
	return out
}

func (s Session) Complete() bool { return BundleComplete(s.box, s.ledger) }
func (s Session) Quote() Quote   { return PriceBox(s.box, s.ledger) }

func (s Session) lookup(categoryID, productID string) (Category, Product, error) {
	c, ok := s.box.Category(categoryID)
	if !ok {
		return Category{}, Product{}, &ConstraintError{
			Kind:     ConstraintUnknownCategory,
			Category: categoryID,
			Product:  productID,
			Message:  "Category not found",
		}
	}
	p, ok := c.Product(productID)
	if !ok {
		return Category{}, Product{}, &ConstraintError{
			Kind:     ConstraintUnknownProduct,
			Category: categoryID,
			Product:  productID,
			Message:  fmt.Sprintf("Product %q not found in %s", productID, c.DisplayName()),
		}
	}
	return c, p, nil
}

func (s Session) apply(categoryID string, sp SelectedProduct) Session {
	hist := make([]Ledger, 0, MaxUndoHistory)
	hist = append(hist, s.history...)
	hist = append(hist, s.ledger)
	if len(hist) > MaxUndoHistory {
		hist = hist[len(hist)-MaxUndoHistory:]
	}

	return Session{
		box:     s.box,
		ledger:  s.ledger.Set(categoryID, sp),
		history: hist,
		dirty:   true,
	}
}

func selectionOf(p Product, qty int) SelectedProduct {
	return SelectedProduct{
		ProductID: p.ID,
		VariantID: p.VariantID,
		Quantity:  qty,
		UnitPrice: p.Price,
		Title:     p.Title,
		Image:     p.Image,
	}
}
