package logger

import (
	"encoding/json"
	"os"
	"strings"
	"testing"
)

func TestSetupWritesJSONLines(t *testing.T) {
	root := t.TempDir()

	cleanup, err := Setup(Config{Root: root, Debug: true})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}

	L().Debug("submit.start", "box", "Snack Box")
	path := Path()
	if !strings.HasSuffix(path, "byobox.log") {
		t.Fatalf("unexpected log path: %s", path)
	}

	if err := cleanup(); err != nil {
		t.Fatalf("cleanup error: %v", err)
	}
	if Path() != "" {
		t.Fatalf("expected path reset after cleanup")
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d:\n%s", len(lines), b)
	}

	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &rec); err != nil {
		t.Fatalf("log line is not json: %v", err)
	}
	if rec["msg"] != "submit.start" || rec["box"] != "Snack Box" || rec["app"] != "byobox" {
		t.Fatalf("unexpected record: %v", rec)
	}
	if _, ok := rec["source"]; !ok {
		t.Fatalf("expected source in debug mode")
	}
}

func TestLBeforeSetupDiscards(t *testing.T) {
	L().Info("nobody.listens")
	if Path() != "" {
		t.Fatalf("expected empty path before setup")
	}
}
