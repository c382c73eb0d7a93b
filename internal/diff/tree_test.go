package diff

import (
	"path/filepath"
	"testing"

	"github.com/witvcs/wit/internal/fs"
)

func write(t *testing.T, fsys fs.FS, path, content string) {
	t.Helper()
	if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := fsys.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestTreesClassification(t *testing.T) {
	fsys := fs.NewMemoryFS()
	write(t, fsys, "left/same.txt", "same")
	write(t, fsys, "left/gone.txt", "gone")
	write(t, fsys, "left/changed.txt", "before")
	write(t, fsys, "right/same.txt", "same")
	write(t, fsys, "right/new.txt", "new")
	write(t, fsys, "right/changed.txt", "after")

	records, err := Trees(fsys, "left", "right", nil)
	if err != nil {
		t.Fatalf("trees: %v", err)
	}

	want := map[string]Kind{
		"changed.txt": Modified,
		"gone.txt":    Removed,
		"new.txt":     Added,
	}
	if len(records) != len(want) {
		t.Fatalf("got %d records, want %d: %v", len(records), len(want), records)
	}
	for _, rec := range records {
		if want[rec.Path] != rec.Kind {
			t.Errorf("%s: got %s, want %s", rec.Path, rec.Kind, want[rec.Path])
		}
	}
}

func TestTreesSortedByPath(t *testing.T) {
	fsys := fs.NewMemoryFS()
	write(t, fsys, "right/z.txt", "z")
	write(t, fsys, "right/a.txt", "a")
	write(t, fsys, "right/m/n.txt", "n")
	if err := fsys.MkdirAll("left", 0o755); err != nil {
		t.Fatal(err)
	}

	records, err := Trees(fsys, "left", "right", nil)
	if err != nil {
		t.Fatalf("trees: %v", err)
	}
	for i := 1; i < len(records); i++ {
		if records[i-1].Path >= records[i].Path {
			t.Errorf("records out of order: %q before %q", records[i-1].Path, records[i].Path)
		}
	}
}

func TestTreesMissingRootIsEmpty(t *testing.T) {
	fsys := fs.NewMemoryFS()
	write(t, fsys, "right/a.txt", "a")

	records, err := Trees(fsys, "does-not-exist", "right", nil)
	if err != nil {
		t.Fatalf("trees: %v", err)
	}
	if len(records) != 1 || records[0].Kind != Added {
		t.Errorf("got %v, want one Added record", records)
	}
}

func TestTreesIgnore(t *testing.T) {
	fsys := fs.NewMemoryFS()
	write(t, fsys, "right/a.txt", "a")
	write(t, fsys, "right/.wit/refs", "x")
	if err := fsys.MkdirAll("left", 0o755); err != nil {
		t.Fatal(err)
	}

	records, err := Trees(fsys, "left", "right", map[string]struct{}{".wit": {}})
	if err != nil {
		t.Fatalf("trees: %v", err)
	}
	for _, rec := range records {
		if rec.Path != "a.txt" {
			t.Errorf("ignored path leaked: %v", rec)
		}
	}
}
