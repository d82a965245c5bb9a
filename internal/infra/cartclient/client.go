package cartclient

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/aalvaropc/byobox/internal/domain"
	"github.com/aalvaropc/byobox/internal/infra/httpclient"
	"github.com/aalvaropc/byobox/internal/ports"
)

// FallbackMessage is shown when an error response carries no readable message.
const FallbackMessage = "Failed to add items to cart"

type Client struct {
	endpoint   string
	exec       *httpclient.Executor
	errorPaths []string
}

type Option func(*Client)

func WithExecutor(e *httpclient.Executor) Option {
	return func(c *Client) { c.exec = e }
}

// WithErrorMessagePaths sets the JSONPath expressions tried against an error body.
func WithErrorMessagePaths(paths []string) Option {
	return func(c *Client) {
		c.errorPaths = append([]string(nil), paths...)
	}
}

// New builds a client posting to endpoint, e.g. "https://shop.example/cart/add.js".
func New(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint:   endpoint,
		errorPaths: []string{"$.description", "$.message"},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.exec == nil {
		c.exec = httpclient.NewExecutor()
	}
	return c
}

// NewFromStore wires a client from the workspace store settings.
func NewFromStore(s domain.StoreConfig) *Client {
	cfg := httpclient.ConfigFromStore(s)
	exec := httpclient.NewExecutor(
		httpclient.WithClient(httpclient.New(cfg)),
		httpclient.WithTimeout(cfg.Timeout),
	)

	opts := []Option{WithExecutor(exec)}
	if len(s.ErrorMessagePaths) > 0 {
		opts = append(opts, WithErrorMessagePaths(s.ErrorMessagePaths))
	}
	return New(s.CartURL(), opts...)
}

func (c *Client) Endpoint() string { return c.endpoint }

var _ ports.CartSubmitter = (*Client)(nil)

// Submit posts the whole batch in a single request. It never retries.
func (c *Client) Submit(ctx context.Context, req domain.CartRequest) (domain.CartResponse, error) {
	httpReq, err := httpclient.BuildCartRequest(ctx, c.endpoint, req)
	if err != nil {
		return domain.CartResponse{}, err
	}

	resp, err := c.exec.Do(ctx, httpReq)
	if err != nil {
		se := domain.NewSubmitError(err)
		se.Status = resp.Status
		return domain.CartResponse{Status: resp.Status}, se
	}

	out := domain.CartResponse{
		Status:  resp.Status,
		Headers: cloneHeaders(resp.Headers),
		Raw:     resp.BodyBytes,
	}

	if resp.Status < 200 || resp.Status > 299 {
		return out, &domain.SubmitError{
			Kind:    domain.SubmitErrorHTTP,
			Status:  resp.Status,
			Message: c.errorMessage(resp.BodyBytes),
		}
	}

	if len(strings.TrimSpace(string(resp.BodyBytes))) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(resp.BodyBytes, &out); err != nil {
		return out, &domain.SubmitError{
			Kind:    domain.SubmitErrorDecode,
			Status:  resp.Status,
			Message: "cart response is not valid JSON",
			Err:     err,
		}
	}
	return out, nil
}

// errorMessage returns the first non-empty string found at the configured paths.
func (c *Client) errorMessage(body []byte) string {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return FallbackMessage
	}

	for _, expr := range c.errorPaths {
		expr = strings.TrimSpace(expr)
		if expr == "" {
			continue
		}
		v, err := jsonpath.Get(expr, doc)
		if err != nil {
			continue
		}
		if s := messageString(v); s != "" {
			return s
		}
	}
	return FallbackMessage
}

func messageString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case []any:
		parts := make([]string, 0, len(t))
		for _, e := range t {
			if s := messageString(e); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "; ")
	case map[string]any:
		return ""
	default:
		return fmt.Sprint(t)
	}
}

func cloneHeaders(h map[string][]string) map[string][]string {
	out := make(map[string][]string, len(h))
	for k, v := range h {
		cp := make([]string, len(v))
		copy(cp, v)
		out[k] = cp
	}
	return out
}
