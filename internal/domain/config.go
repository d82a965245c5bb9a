package domain

import "time"

// Config represents the byobox workspace configuration loaded from byobox.yaml.
type Config struct {
	Masking  MaskingConfig
	Defaults DefaultsConfig
	Paths    PathsConfig
	Store    StoreConfig
	Bundle   BundleSettings
}

type MaskingConfig struct {
	Enabled bool
}

type DefaultsConfig struct {
	Catalog string
}

type PathsConfig struct {
	CatalogsDir string
	ReceiptsDir string
}

// StoreConfig points at the storefront cart API.
type StoreConfig struct {
	BaseURL  string
	CartPath string
	Timeout  time.Duration

	// ErrorMessagePaths are JSONPath expressions tried in order against an error body.
	ErrorMessagePaths []string
}

// CartURL joins BaseURL and CartPath.
func (s StoreConfig) CartURL() string {
	base := s.BaseURL
	for len(base) > 0 && base[len(base)-1] == '/' {
		base = base[:len(base)-1]
	}
	path := s.CartPath
	if path != "" && path[0] != '/' {
		path = "/" + path
	}
	return base + path
}

// WorkspaceSpec describes where a workspace should be created.
type WorkspaceSpec struct {
	Root string
}

// DefaultConfig provides sane defaults if byobox.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Masking: MaskingConfig{Enabled: true},
		Defaults: DefaultsConfig{
			Catalog: "boxes",
		},
		Paths: PathsConfig{
			CatalogsDir: "catalogs",
			ReceiptsDir: "receipts",
		},
		Store: StoreConfig{
			BaseURL:           "http://127.0.0.1:8787",
			CartPath:          "/cart/add.js",
			Timeout:           30 * time.Second,
			ErrorMessagePaths: []string{"$.description", "$.message"},
		},
		Bundle: DefaultBundleSettings(),
	}
}
