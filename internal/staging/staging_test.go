package staging

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/witvcs/wit/internal/config"
	"github.com/witvcs/wit/internal/fs"
	"github.com/witvcs/wit/internal/vcserr"
)

func newTestArea(t *testing.T) (*Area, *fs.MemoryFS, *config.Config) {
	t.Helper()
	fsys := fs.NewMemoryFS()
	cfg := config.New("repo")
	if err := fsys.MkdirAll(cfg.Root, 0o755); err != nil {
		t.Fatalf("mkdir root: %v", err)
	}
	area := NewArea(cfg, fsys)
	if err := area.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	return area, fsys, cfg
}

func write(t *testing.T, fsys fs.FS, path, content string) {
	t.Helper()
	if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := fsys.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestStageFile(t *testing.T) {
	area, fsys, cfg := newTestArea(t)
	write(t, fsys, filepath.Join(cfg.Root, "a.txt"), "one")

	if err := area.Stage("a.txt"); err != nil {
		t.Fatalf("stage: %v", err)
	}
	if data, _ := fsys.ReadFile(filepath.Join(area.Dir(), "a.txt")); string(data) != "one" {
		t.Errorf("staged content: %q", data)
	}

	// restaging overwrites
	write(t, fsys, filepath.Join(cfg.Root, "a.txt"), "two")
	if err := area.Stage("a.txt"); err != nil {
		t.Fatalf("restage: %v", err)
	}
	if data, _ := fsys.ReadFile(filepath.Join(area.Dir(), "a.txt")); string(data) != "two" {
		t.Errorf("restaged content: %q", data)
	}
}

func TestStageDirectorySkipsControlDir(t *testing.T) {
	area, fsys, cfg := newTestArea(t)
	write(t, fsys, filepath.Join(cfg.Root, "sub", "b.txt"), "b")
	write(t, fsys, filepath.Join(cfg.Root, "top.txt"), "t")

	if err := area.Stage("."); err != nil {
		t.Fatalf("stage all: %v", err)
	}
	if !fsys.Exists(filepath.Join(area.Dir(), "sub", "b.txt")) {
		t.Error("nested file not staged")
	}
	if !fsys.Exists(filepath.Join(area.Dir(), "top.txt")) {
		t.Error("top-level file not staged")
	}
	if fsys.Exists(filepath.Join(area.Dir(), config.ControlDir)) {
		t.Error("control directory leaked into staging")
	}
}

func TestStageMissingPath(t *testing.T) {
	area, _, _ := newTestArea(t)
	if err := area.Stage("nope.txt"); !errors.Is(err, vcserr.ErrPathNotFound) {
		t.Errorf("got %v, want ErrPathNotFound", err)
	}
}

func TestResetTo(t *testing.T) {
	area, fsys, cfg := newTestArea(t)
	write(t, fsys, filepath.Join(cfg.Root, "old.txt"), "old")
	if err := area.Stage("old.txt"); err != nil {
		t.Fatalf("stage: %v", err)
	}

	write(t, fsys, "snap/new.txt", "new")
	if err := area.ResetTo("snap"); err != nil {
		t.Fatalf("reset: %v", err)
	}

	if fsys.Exists(filepath.Join(area.Dir(), "old.txt")) {
		t.Error("stale staged file survived reset")
	}
	if data, _ := fsys.ReadFile(filepath.Join(area.Dir(), "new.txt")); string(data) != "new" {
		t.Errorf("reset content: %q", data)
	}
}
