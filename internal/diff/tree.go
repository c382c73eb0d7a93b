// Package diff computes structural differences between directory trees and
// textual differences between files.
package diff

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/witvcs/wit/internal/fs"
)

// Kind classifies a path in a tree comparison. The classification is
// directional: Removed means present only under the left tree, Added only
// under the right.
type Kind int

const (
	Added Kind = iota
	Removed
	Modified
)

func (k Kind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Modified:
		return "modified"
	}
	return "unknown"
}

// Record is one differing path from a tree comparison. Unchanged paths are
// omitted.
type Record struct {
	Path string // slash-separated, relative to the compared roots
	Kind Kind
}

// Trees walks left and right in lock-step by relative path and classifies
// every difference. A tree that does not exist on disk compares as empty.
// Relative paths in ignore (and everything beneath them) are excluded.
func Trees(fsys fs.FS, left, right string, ignore map[string]struct{}) ([]Record, error) {
	leftFiles, err := listFiles(fsys, left, ignore)
	if err != nil {
		return nil, err
	}
	rightFiles, err := listFiles(fsys, right, ignore)
	if err != nil {
		return nil, err
	}

	paths := map[string]struct{}{}
	for p := range leftFiles {
		paths[p] = struct{}{}
	}
	for p := range rightFiles {
		paths[p] = struct{}{}
	}
	sorted := make([]string, 0, len(paths))
	for p := range paths {
		sorted = append(sorted, p)
	}
	sort.Strings(sorted)

	var records []Record
	for _, p := range sorted {
		_, inLeft := leftFiles[p]
		_, inRight := rightFiles[p]
		switch {
		case inLeft && !inRight:
			records = append(records, Record{Path: p, Kind: Removed})
		case !inLeft && inRight:
			records = append(records, Record{Path: p, Kind: Added})
		default:
			same, err := sameContent(fsys, filepath.Join(left, filepath.FromSlash(p)), filepath.Join(right, filepath.FromSlash(p)))
			if err != nil {
				return nil, err
			}
			if !same {
				records = append(records, Record{Path: p, Kind: Modified})
			}
		}
	}
	return records, nil
}

func listFiles(fsys fs.FS, root string, ignore map[string]struct{}) (map[string]struct{}, error) {
	files := map[string]struct{}{}
	if root == "" || !fsys.IsDir(root) {
		return files, nil
	}
	err := fs.WalkFiles(fsys, root, ignore, func(rel string) error {
		files[rel] = struct{}{}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func sameContent(fsys fs.FS, a, b string) (bool, error) {
	if fa, err := fsys.Stat(a); err == nil {
		if fb, err := fsys.Stat(b); err == nil && fa.Size() != fb.Size() {
			return false, nil
		}
	}
	da, err := fsys.ReadFile(a)
	if err != nil {
		return false, fmt.Errorf("read %q: %w", a, err)
	}
	db, err := fsys.ReadFile(b)
	if err != nil {
		return false, fmt.Errorf("read %q: %w", b, err)
	}
	return bytes.Equal(da, db), nil
}
