package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/witvcs/wit/internal/vcserr"
)

func TestFindRootFromNestedDir(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, ControlDir), 0o755); err != nil {
		t.Fatalf("mkdir control: %v", err)
	}
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir nested: %v", err)
	}

	got, err := FindRoot(nested)
	if err != nil {
		t.Fatalf("find root: %v", err)
	}
	// the temp dir may be behind a symlink, compare resolved paths
	wantResolved, _ := filepath.EvalSymlinks(root)
	gotResolved, _ := filepath.EvalSymlinks(got)
	if gotResolved != wantResolved {
		t.Errorf("got %q, want %q", gotResolved, wantResolved)
	}
}

func TestFindRootOutsideRepository(t *testing.T) {
	dir := t.TempDir()
	if _, err := FindRoot(dir); !errors.Is(err, vcserr.ErrNoRepository) {
		t.Errorf("got %v, want ErrNoRepository", err)
	}
}

func TestSelectedHashDefaultsAndOverride(t *testing.T) {
	root := t.TempDir()
	cfg := New(root)
	if err := os.MkdirAll(cfg.ControlPath(), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if got := cfg.SelectedHash(); got != DefaultHash {
		t.Errorf("fresh repo: got %q, want %q", got, DefaultHash)
	}

	if err := os.WriteFile(cfg.ConfigFile(), []byte(`{"hash":"sha256"}`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if got := cfg.SelectedHash(); got != HashSHA256 {
		t.Errorf("got %q, want sha256", got)
	}

	if err := os.WriteFile(cfg.ConfigFile(), []byte("not json"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if got := cfg.SelectedHash(); got != DefaultHash {
		t.Errorf("malformed config: got %q, want default", got)
	}
}
