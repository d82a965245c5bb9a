package domain

import "time"

// Receipt records a successful cart submission.
type Receipt struct {
	ID          string    `json:"id,omitempty"`
	BundleID    string    `json:"bundle_id"`
	CatalogName string    `json:"catalog,omitempty"`
	BoxName     string    `json:"box"`
	SubmittedAt time.Time `json:"submitted_at"`
	Endpoint    string    `json:"endpoint,omitempty"`

	Request CartRequest   `json:"request"`
	Quote   Quote         `json:"quote"`
	Skipped []SkippedLine `json:"skipped,omitempty"`

	ResponseStatus  int                 `json:"response_status"`
	ResponseHeaders map[string][]string `json:"response_headers,omitempty"`
}
