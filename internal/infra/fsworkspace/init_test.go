package fsworkspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/byobox/internal/domain"
	"github.com/aalvaropc/byobox/internal/infra/catalog"
	"github.com/aalvaropc/byobox/internal/infra/workspacefinder"
)

func TestInitializer_Init_CreatesWorkspaceFiles(t *testing.T) {
	tmp := t.TempDir()

	if err := NewInitializer().Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	assertFileExists(t, filepath.Join(tmp, "byobox.yaml"))
	assertFileExists(t, filepath.Join(tmp, "catalogs", "boxes.yaml"))
	assertFileExists(t, filepath.Join(tmp, "receipts"))
	assertFileExists(t, filepath.Join(tmp, ".byobox", "logs"))
}

func TestInitializer_TemplatesLoad(t *testing.T) {
	tmp := t.TempDir()
	if err := NewInitializer().Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	cfg, err := workspacefinder.LoadConfig(tmp)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Defaults.Catalog != "boxes" {
		t.Fatalf("expected default catalog boxes, got %s", cfg.Defaults.Catalog)
	}

	cat, err := catalog.NewLoader().LoadCatalog(filepath.Join(tmp, "catalogs", "boxes.yaml"))
	if err != nil {
		t.Fatalf("template catalog does not load: %v", err)
	}
	if len(cat.Boxes) != 2 {
		t.Fatalf("expected 2 boxes, got %d", len(cat.Boxes))
	}
}

func TestInitializer_Init_SkipsExistingFilesUnlessForce(t *testing.T) {
	tmp := t.TempDir()

	cfgPath := filepath.Join(tmp, "byobox.yaml")
	if err := os.WriteFile(cfgPath, []byte("custom\n"), 0o644); err != nil {
		t.Fatalf("write existing byobox.yaml: %v", err)
	}

	i := NewInitializer()
	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init (force=false) error: %v", err)
	}

	b, err := os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("read byobox.yaml: %v", err)
	}
	if string(b) != "custom\n" {
		t.Fatalf("expected byobox.yaml preserved, got %q", string(b))
	}

	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, true); err != nil {
		t.Fatalf("Init (force=true) error: %v", err)
	}

	b, err = os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("read byobox.yaml after force: %v", err)
	}
	if !strings.Contains(string(b), "byobox:") {
		t.Fatalf("expected byobox.yaml overwritten with template, got %q", string(b))
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file %s, stat err=%v", path, err)
	}
}
