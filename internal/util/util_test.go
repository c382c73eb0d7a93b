package util

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/witvcs/wit/internal/fs"
)

func TestWriteFileAtomic(t *testing.T) {
	fsys := fs.NewMemoryFS()
	if err := fsys.MkdirAll("dir", 0o755); err != nil {
		t.Fatal(err)
	}

	if err := WriteFileAtomic(fsys, "dir/out.txt", []byte("v1")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := WriteFileAtomic(fsys, "dir/out.txt", []byte("v2")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	data, err := fsys.ReadFile("dir/out.txt")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "v2" {
		t.Errorf("got %q, want v2", data)
	}

	entries, _ := fsys.ReadDir("dir")
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %v", entries)
	}
}

func TestJSONRoundtrip(t *testing.T) {
	fsys := fs.NewMemoryFS()
	if err := fsys.MkdirAll("dir", 0o755); err != nil {
		t.Fatal(err)
	}

	in := map[string]int{"a": 1, "b": 2}
	if err := WriteJSON(fsys, "dir/data.json", in); err != nil {
		t.Fatalf("write: %v", err)
	}
	var out map[string]int
	if err := ReadJSON(fsys, "dir/data.json", &out); err != nil {
		t.Fatalf("read: %v", err)
	}
	if out["a"] != 1 || out["b"] != 2 {
		t.Errorf("got %v", out)
	}
}

func TestSortedKeys(t *testing.T) {
	keys := SortedKeys(map[string]int{"z": 1, "a": 2, "m": 3})
	want := []string{"a", "m", "z"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("got %v, want %v", keys, want)
		}
	}
}

func TestParallelRunsAll(t *testing.T) {
	var n int64
	inputs := make([]int, 100)
	err := Parallel(inputs, 4, func(int) error {
		atomic.AddInt64(&n, 1)
		return nil
	})
	if err != nil {
		t.Fatalf("parallel: %v", err)
	}
	if n != 100 {
		t.Errorf("ran %d times, want 100", n)
	}
}

func TestParallelPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	i := 0
	err := Parallel([]int{1, 2, 3}, 1, func(int) error {
		i++
		if i == 2 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Errorf("got %v, want boom", err)
	}
}
