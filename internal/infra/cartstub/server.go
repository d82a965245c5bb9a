// Package cartstub serves a local stand-in for a storefront cart API so boxes can be
// submitted end to end without a real shop.
package cartstub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/aalvaropc/byobox/internal/domain"
)

const (
	cookieName   = "cart"
	maxBodyBytes = 1 << 20
)

type variant struct {
	Title string
}

type Server struct {
	carts    *carts
	variants map[string]variant
	logger   *slog.Logger
}

type Option func(*Server)

// WithCatalog restricts accepted variant ids to the anchor and the catalog's products.
func WithCatalog(cat domain.Catalog, anchor domain.BundleSettings) Option {
	return func(s *Server) {
		s.variants = map[string]variant{}
		if anchor.AnchorVariantID != "" {
			s.variants[anchor.AnchorVariantID] = variant{Title: anchor.DefaultTitle}
		}
		for _, b := range cat.Boxes {
			for _, c := range b.Categories {
				for _, p := range c.Products {
					if p.VariantID != "" {
						s.variants[p.VariantID] = variant{Title: p.Title}
					}
				}
			}
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.logger = l }
}

func New(opts ...Option) *Server {
	s := &Server{
		carts:  newCarts(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the chi router serving the cart endpoints.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.health)

	r.Get("/cart.js", s.show)
	r.Post("/cart/add.js", s.add)
	r.Post("/cart/clear.js", s.clear)

	return r
}

// ListenAndServe runs the stub until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	s.logger.Info("cartstub.listen", "addr", addr, "restricted", s.variants != nil)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) show(w http.ResponseWriter, r *http.Request) {
	tok := s.cartToken(w, r)
	writeJSON(w, http.StatusOK, cartView(s.carts.snapshot(tok)))
}

func (s *Server) clear(w http.ResponseWriter, r *http.Request) {
	tok := s.cartToken(w, r)
	s.carts.clear(tok)
	s.logger.Info("cartstub.clear", "cart", tok)
	writeJSON(w, http.StatusOK, cartView(s.carts.snapshot(tok)))
}

func (s *Server) add(w http.ResponseWriter, r *http.Request) {
	tok := s.cartToken(w, r)

	var req domain.CartRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		s.reject(w, tok, http.StatusBadRequest, "Request body is not valid JSON")
		return
	}

	lines, problem := s.validate(req)
	if problem != "" {
		s.reject(w, tok, http.StatusUnprocessableEntity, problem)
		return
	}

	added := s.carts.add(tok, lines)
	s.logger.Info("cartstub.add",
		"cart", tok,
		"request_id", middleware.GetReqID(r.Context()),
		"items", len(added),
	)

	writeJSON(w, http.StatusOK, map[string]any{"items": added})
}

// validate checks every item before anything is added. A non-empty problem is the
// shopper-facing reason the whole request was refused.
func (s *Server) validate(req domain.CartRequest) (lines []domain.CartLine, problem string) {
	if len(req.Items) == 0 {
		return nil, "Cart request has no items"
	}

	out := make([]domain.CartLine, 0, len(req.Items))
	for i, it := range req.Items {
		id := strings.TrimSpace(it.ID)
		if id == "" {
			return nil, fmt.Sprintf("Item %d has no variant id", i+1)
		}
		vid, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			return nil, fmt.Sprintf("Variant %s is not a valid id", id)
		}
		if it.Quantity < 1 {
			return nil, fmt.Sprintf("Quantity for variant %s must be at least 1", id)
		}

		title := "Variant " + id
		if s.variants != nil {
			v, ok := s.variants[id]
			if !ok {
				return nil, fmt.Sprintf("Cannot find variant %s", id)
			}
			if v.Title != "" {
				title = v.Title
			}
		}

		out = append(out, domain.CartLine{
			VariantID:  vid,
			Quantity:   it.Quantity,
			Title:      title,
			Properties: it.Properties,
		})
	}
	return out, ""
}

func (s *Server) reject(w http.ResponseWriter, tok string, status int, description string) {
	s.logger.Warn("cartstub.reject", "cart", tok, "status", status, "description", description)
	writeJSON(w, status, map[string]any{
		"status":      status,
		"message":     "Cart Error",
		"description": description,
	})
}

// cartToken resolves the cart cookie, issuing a new cart when missing or unknown.
func (s *Server) cartToken(w http.ResponseWriter, r *http.Request) string {
	tok := ""
	if ck, err := r.Cookie(cookieName); err == nil {
		tok = ck.Value
	}

	c, created := s.carts.get(tok)
	if created {
		http.SetCookie(w, &http.Cookie{
			Name:     cookieName,
			Value:    c.Token,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return c.Token
}

func cartView(c cart) map[string]any {
	items := c.Items
	if items == nil {
		items = []domain.CartLine{}
	}
	return map[string]any{
		"token":      c.Token,
		"item_count": c.itemCount(),
		"items":      items,
	}
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("cartstub.request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
