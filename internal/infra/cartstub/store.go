package cartstub

import (
	"sync"

	"github.com/google/uuid"

	"github.com/aalvaropc/byobox/internal/domain"
)

type cart struct {
	Token string            `json:"token"`
	Items []domain.CartLine `json:"items"`
}

func (c *cart) itemCount() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

// carts holds every cart in memory, keyed by cookie token.
type carts struct {
	mu     sync.Mutex
	byTok  map[string]*cart
	nextID int64
}

func newCarts() *carts {
	return &carts{byTok: map[string]*cart{}}
}

// get returns the cart for token, creating a fresh one when token is unknown.
func (s *carts) get(token string) (*cart, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.byTok[token]; ok && token != "" {
		return c, false
	}
	c := &cart{Token: uuid.NewString()}
	s.byTok[c.Token] = c
	return c, true
}

// add appends all lines to the cart in one step.
func (s *carts) add(token string, lines []domain.CartLine) []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.byTok[token]
	out := make([]domain.CartLine, 0, len(lines))
	for _, ln := range lines {
		s.nextID++
		ln.ID = s.nextID
		c.Items = append(c.Items, ln)
		out = append(out, ln)
	}
	return out
}

func (s *carts) snapshot(token string) cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.byTok[token]
	return cart{Token: c.Token, Items: append([]domain.CartLine(nil), c.Items...)}
}

func (s *carts) clear(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.byTok[token]; ok {
		c.Items = nil
	}
}
