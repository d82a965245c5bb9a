package receiptstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aalvaropc/byobox/internal/domain"
	"github.com/aalvaropc/byobox/internal/ports"
)

const defaultReceiptsDir = "receipts"
const maskValue = "********"

type JSONStore struct {
	rootDir        string
	dirName        string
	maskingEnabled bool
	writeIndex     bool
	now            func() time.Time
}

type Option func(*JSONStore)

// WithIndex enables a JSONL index: receipts/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	dir := cfg.Paths.ReceiptsDir
	if strings.TrimSpace(dir) == "" {
		dir = defaultReceiptsDir
	}

	s := &JSONStore{
		rootDir:        root,
		dirName:        dir,
		maskingEnabled: cfg.Masking.Enabled,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ReceiptStore = (*JSONStore)(nil)

func (s *JSONStore) SaveReceipt(r domain.Receipt) (string, error) {
	dir := filepath.Join(s.rootDir, s.dirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "receiptstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	ts := r.SubmittedAt
	if ts.IsZero() {
		ts = s.now()
	}
	ts = ts.UTC()

	slug := slugify(r.BoxName)
	if slug == "" {
		slug = "box"
	}

	id := fmt.Sprintf("%s_%s", ts.Format("20060102T150405Z"), slug)
	if _, err := os.Stat(filepath.Join(dir, id+".json")); err == nil {
		suffix := slugify(r.BundleID)
		if len(suffix) > 8 {
			suffix = suffix[:8]
		}
		if suffix == "" {
			suffix = fmt.Sprintf("%d", ts.UnixNano()%1e6)
		}
		id += "_" + suffix
	}
	filename := id + ".json"
	path := filepath.Join(dir, filename)

	toSave := r
	toSave.ID = id
	toSave.SubmittedAt = ts
	if s.maskingEnabled {
		toSave = maskReceipt(toSave)
	}

	b, err := json.MarshalIndent(toSave, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "receiptstore.marshal",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return "", &domain.OpError{
			Op:   "receiptstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "receiptstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		_ = s.appendIndex(dir, filename, toSave)
	}

	return id, nil
}

func (s *JSONStore) appendIndex(dir, filename string, r domain.Receipt) error {
	type idx struct {
		ID          string    `json:"id"`
		File        string    `json:"file"`
		BundleID    string    `json:"bundle_id"`
		Catalog     string    `json:"catalog,omitempty"`
		Box         string    `json:"box"`
		Total       string    `json:"total"`
		SubmittedAt time.Time `json:"submitted_at"`
	}
	line, err := json.Marshal(idx{
		ID:          r.ID,
		File:        filename,
		BundleID:    r.BundleID,
		Catalog:     r.CatalogName,
		Box:         r.BoxName,
		Total:       r.Quote.Total.StringFixed(2),
		SubmittedAt: r.SubmittedAt,
	})
	if err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(dir, "index.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}

// maskReceipt returns a copy with sensitive response headers replaced.
func maskReceipt(r domain.Receipt) domain.Receipt {
	out := r
	if r.ResponseHeaders == nil {
		return out
	}

	out.ResponseHeaders = make(map[string][]string, len(r.ResponseHeaders))
	for k, v := range r.ResponseHeaders {
		cp := make([]string, len(v))
		copy(cp, v)
		if isSensitiveHeaderKey(k) {
			for i := range cp {
				cp[i] = maskValue
			}
		}
		out.ResponseHeaders[k] = cp
	}
	return out
}

func isSensitiveHeaderKey(k string) bool {
	kk := strings.ToLower(strings.TrimSpace(k))
	switch kk {
	case "authorization", "proxy-authorization", "cookie", "set-cookie", "x-api-key", "x-auth-token":
		return true
	}

	return strings.Contains(kk, "token") ||
		strings.Contains(kk, "secret") ||
		strings.Contains(kk, "api-key")
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	b.Grow(len(s))

	lastDash := true
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastDash = false
			continue
		}
		if !lastDash {
			b.WriteByte('-')
			lastDash = true
		}
	}

	return strings.TrimRight(b.String(), "-")
}
