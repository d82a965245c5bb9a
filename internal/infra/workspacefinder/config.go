package workspacefinder

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/byobox/internal/domain"
)

// LoadConfig reads byobox.yaml from the workspace root and layers it over the defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFileName)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspace.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspace.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	bx := y.Byobox
	if bx.Masking.Enabled != nil {
		cfg.Masking.Enabled = *bx.Masking.Enabled
	}
	setString(&cfg.Defaults.Catalog, bx.Defaults.Catalog)
	setString(&cfg.Paths.CatalogsDir, bx.Paths.CatalogsDir)
	setString(&cfg.Paths.ReceiptsDir, bx.Paths.ReceiptsDir)

	setString(&cfg.Store.BaseURL, bx.Store.BaseURL)
	setString(&cfg.Store.CartPath, bx.Store.CartPath)
	if s := strings.TrimSpace(bx.Store.Timeout); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil || d <= 0 {
			if err == nil {
				err = fmt.Errorf("must be positive")
			}
			return cfg, &domain.OpError{
				Op:   "workspace.loadconfig",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  fmt.Errorf("field byobox.store.timeout: %w", err),
			}
		}
		cfg.Store.Timeout = d
	}
	if len(bx.Store.ErrorMessagePaths) > 0 {
		cfg.Store.ErrorMessagePaths = append([]string(nil), bx.Store.ErrorMessagePaths...)
	}

	setString(&cfg.Bundle.AnchorVariantID, bx.Bundle.AnchorVariantID)
	setString(&cfg.Bundle.Type, bx.Bundle.Type)
	setString(&cfg.Bundle.DefaultTitle, bx.Bundle.DefaultTitle)

	return cfg, nil
}

func setString(dst *string, v string) {
	if s := strings.TrimSpace(v); s != "" {
		*dst = s
	}
}

type yamlConfig struct {
	Byobox struct {
		Masking struct {
			Enabled *bool `yaml:"enabled"`
		} `yaml:"masking"`

		Defaults struct {
			Catalog string `yaml:"catalog"`
		} `yaml:"defaults"`

		Paths struct {
			CatalogsDir string `yaml:"catalogs_dir"`
			ReceiptsDir string `yaml:"receipts_dir"`
		} `yaml:"paths"`

		Store struct {
			BaseURL           string   `yaml:"base_url"`
			CartPath          string   `yaml:"cart_path"`
			Timeout           string   `yaml:"timeout"`
			ErrorMessagePaths []string `yaml:"error_message_paths"`
		} `yaml:"store"`

		Bundle struct {
			AnchorVariantID string `yaml:"anchor_variant_id"`
			Type            string `yaml:"type"`
			DefaultTitle    string `yaml:"default_title"`
		} `yaml:"bundle"`
	} `yaml:"byobox"`
}
