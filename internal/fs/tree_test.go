package fs

import (
	"testing"
)

func writeFile(t *testing.T, fsys FS, path, content string) {
	t.Helper()
	if err := fsys.MkdirAll(dirOf(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := fsys.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func dirOf(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[:i]
		}
	}
	return "."
}

func TestWalkFilesDeterministicOrder(t *testing.T) {
	fsys := NewMemoryFS()
	writeFile(t, fsys, "src/b.txt", "b")
	writeFile(t, fsys, "src/a/z.txt", "z")
	writeFile(t, fsys, "src/a/x.txt", "x")

	var got []string
	err := WalkFiles(fsys, "src", nil, func(rel string) error {
		got = append(got, rel)
		return nil
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}

	want := []string{"a/x.txt", "a/z.txt", "b.txt"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWalkFilesSkip(t *testing.T) {
	fsys := NewMemoryFS()
	writeFile(t, fsys, "src/keep.txt", "k")
	writeFile(t, fsys, "src/.wit/internal.txt", "i")

	var got []string
	skip := map[string]struct{}{".wit": {}}
	err := WalkFiles(fsys, "src", skip, func(rel string) error {
		got = append(got, rel)
		return nil
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
	if len(got) != 1 || got[0] != "keep.txt" {
		t.Errorf("got %v, want [keep.txt]", got)
	}
}

func TestCopyTreeOverlay(t *testing.T) {
	fsys := NewMemoryFS()
	writeFile(t, fsys, "src/a.txt", "new")
	writeFile(t, fsys, "dst/a.txt", "old")
	writeFile(t, fsys, "dst/keep.txt", "keep")

	if err := CopyTree(fsys, "src", "dst", nil); err != nil {
		t.Fatalf("copy tree: %v", err)
	}

	if data, _ := fsys.ReadFile("dst/a.txt"); string(data) != "new" {
		t.Errorf("a.txt not overwritten: %q", data)
	}
	if data, _ := fsys.ReadFile("dst/keep.txt"); string(data) != "keep" {
		t.Errorf("keep.txt was touched: %q", data)
	}
}

func TestClearDir(t *testing.T) {
	fsys := NewMemoryFS()
	writeFile(t, fsys, "dir/a.txt", "a")
	writeFile(t, fsys, "dir/sub/b.txt", "b")

	if err := ClearDir(fsys, "dir"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if !fsys.IsDir("dir") {
		t.Error("dir itself was removed")
	}
	if fsys.Exists("dir/a.txt") || fsys.Exists("dir/sub/b.txt") {
		t.Error("dir contents survived")
	}
}
