package domain

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"
)

// Cart line item property keys understood by the storefront theme.
const (
	PropBundleMain      = "_bundle_main"
	PropBundleComponent = "_bundle_component"
	PropBundleTitle     = "_bundle_title"
	PropBundleType      = "_bundle_type"
	PropBundleID        = "_bundle_id"
	PropParentBundle    = "_parent_bundle"
	PropCreatedAt       = "_created_at"
	PropCustomBundle    = "_custom_bundle"
)

// BundleSettings describe the anchor product that represents a box in the cart.
type BundleSettings struct {
	AnchorVariantID string
	Type            string
	DefaultTitle    string
}

func DefaultBundleSettings() BundleSettings {
	return BundleSettings{
		AnchorVariantID: "42153738141780",
		Type:            "byo_custom_box",
		DefaultTitle:    "Custom Box",
	}
}

// CartItem is one entry of a cart add request.
type CartItem struct {
	ID         string            `json:"id"`
	Quantity   int               `json:"quantity"`
	Properties map[string]string `json:"properties,omitempty"`
}

// CartRequest is the JSON body posted to the cart endpoint.
type CartRequest struct {
	Items []CartItem `json:"items"`
}

// SkippedLine is a selection left out of the cart request.
type SkippedLine struct {
	CategoryID string
	ProductID  string
	Title      string
	Reason     string
}

// CartBuild is the result of turning a session into a cart request.
type CartBuild struct {
	Request CartRequest
	Skipped []SkippedLine
	Title   string
}

// BuildCartRequest serializes a complete session into an anchor item followed by one item
// per selected product. Products without a variant id are skipped and reported.
func BuildCartRequest(s Session, settings BundleSettings, bundleID string, now time.Time) (CartBuild, error) {
	if err := RequireComplete(s.box, s.ledger); err != nil {
		return CartBuild{}, err
	}
	if strings.TrimSpace(settings.AnchorVariantID) == "" {
		return CartBuild{}, &OpError{
			Op:   "cart.build",
			Kind: KindInvalidConfig,
			Err:  errors.New("bundle anchor variant id is empty"),
		}
	}

	title := strings.TrimSpace(s.box.Name)
	if title == "" {
		title = settings.DefaultTitle
	}

	anchor := CartItem{
		ID:       settings.AnchorVariantID,
		Quantity: 1,
		Properties: map[string]string{
			PropBundleMain:   "true",
			PropBundleTitle:  title,
			PropBundleType:   settings.Type,
			PropCreatedAt:    now.UTC().Format(time.RFC3339),
			PropCustomBundle: "true",
		},
	}
	if bundleID != "" {
		anchor.Properties[PropBundleID] = bundleID
	}

	out := CartBuild{
		Request: CartRequest{Items: []CartItem{anchor}},
		Title:   title,
	}

	for _, ln := range s.ledger.Lines(s.box) {
		if strings.TrimSpace(ln.VariantID) == "" {
			out.Skipped = append(out.Skipped, SkippedLine{
				CategoryID: ln.CategoryID,
				ProductID:  ln.ProductID,
				Title:      ln.Title,
				Reason:     "missing variant id",
			})
			continue
		}

		item := CartItem{
			ID:       ln.VariantID,
			Quantity: ln.Quantity,
			Properties: map[string]string{
				PropBundleComponent: "true",
				PropBundleTitle:     title,
				PropBundleType:      settings.Type,
				PropParentBundle:    settings.AnchorVariantID,
				PropCustomBundle:    "true",
			},
		}
		if bundleID != "" {
			item.Properties[PropBundleID] = bundleID
		}
		out.Request.Items = append(out.Request.Items, item)
	}

	return out, nil
}

// CartLine is one line returned by the cart endpoint.
type CartLine struct {
	ID         int64             `json:"id"`
	VariantID  int64             `json:"variant_id"`
	Quantity   int               `json:"quantity"`
	Title      string            `json:"title"`
	Properties map[string]string `json:"properties"`
}

// CartResponse is the decoded success response of a cart add.
type CartResponse struct {
	Status  int                 `json:"-"`
	Headers map[string][]string `json:"-"`
	Items   []CartLine          `json:"items"`
	Raw     []byte              `json:"-"`
}

// SubmitErrorKind is a high-level classification of submission failures.
type SubmitErrorKind string

const (
	SubmitErrorUnknown SubmitErrorKind = "unknown"
	SubmitErrorTimeout SubmitErrorKind = "timeout"
	SubmitErrorDNS     SubmitErrorKind = "dns"
	SubmitErrorConn    SubmitErrorKind = "connection"
	SubmitErrorHTTP    SubmitErrorKind = "http"
	SubmitErrorDecode  SubmitErrorKind = "decode"
)

// SubmitError is a failed cart submission. Message is shown to the shopper.
type SubmitError struct {
	Kind    SubmitErrorKind
	Status  int
	Message string
	Err     error
}

func (e *SubmitError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return string(e.Kind) + ": " + e.Message
}

func (e *SubmitError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewSubmitError classifies a transport-level error.
func NewSubmitError(err error) *SubmitError {
	if err == nil {
		return nil
	}

	kind := SubmitErrorUnknown
	var dnsErr *net.DNSError
	var netErr net.Error
	var opErr *net.OpError

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		kind = SubmitErrorTimeout
	case errors.As(err, &dnsErr):
		kind = SubmitErrorDNS
	case errors.As(err, &netErr) && netErr.Timeout():
		kind = SubmitErrorTimeout
	case errors.As(err, &opErr):
		kind = SubmitErrorConn
	}

	return &SubmitError{Kind: kind, Message: err.Error(), Err: err}
}
