package fs

import (
	"fmt"
	"path"
	"path/filepath"
	"sort"
)

// WalkFiles calls fn for every regular file under root, passing its
// slash-separated path relative to root. Relative paths (or their leading
// directories) found in skip are not visited. Traversal order is
// deterministic.
func WalkFiles(fsys FS, root string, skip map[string]struct{}, fn func(rel string) error) error {
	var walk func(dir, rel string) error
	walk = func(dir, rel string) error {
		entries, err := fsys.ReadDir(dir)
		if err != nil {
			return fmt.Errorf("read dir %q: %w", dir, err)
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
		for _, e := range entries {
			childRel := path.Join(rel, e.Name())
			if skipped(childRel, skip) {
				continue
			}
			childAbs := filepath.Join(dir, e.Name())
			if e.IsDir() {
				if err := walk(childAbs, childRel); err != nil {
					return err
				}
				continue
			}
			if err := fn(childRel); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(root, "")
}

// CopyFile copies a single file, creating parent directories of dst.
func CopyFile(fsys FS, src, dst string) error {
	data, err := fsys.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read %q: %w", src, err)
	}
	if err := fsys.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create dir for %q: %w", dst, err)
	}
	if err := fsys.WriteFile(dst, data, 0o644); err != nil {
		return fmt.Errorf("write %q: %w", dst, err)
	}
	return nil
}

// CopyTree copies every file under src into dst, overwriting files that
// already exist there and leaving everything else in dst untouched.
// Relative paths in skip are excluded.
func CopyTree(fsys FS, src, dst string, skip map[string]struct{}) error {
	if err := fsys.MkdirAll(dst, 0o755); err != nil {
		return fmt.Errorf("create dir %q: %w", dst, err)
	}
	return WalkFiles(fsys, src, skip, func(rel string) error {
		return CopyFile(fsys, filepath.Join(src, filepath.FromSlash(rel)), filepath.Join(dst, filepath.FromSlash(rel)))
	})
}

// ClearDir removes every entry inside dir while keeping dir itself.
func ClearDir(fsys FS, dir string) error {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read dir %q: %w", dir, err)
	}
	for _, e := range entries {
		if err := fsys.RemoveAll(filepath.Join(dir, e.Name())); err != nil {
			return fmt.Errorf("remove %q: %w", e.Name(), err)
		}
	}
	return nil
}

// skipped reports whether rel or one of its ancestors is present in skip.
func skipped(rel string, skip map[string]struct{}) bool {
	if len(skip) == 0 {
		return false
	}
	for p := rel; p != "." && p != ""; p = path.Dir(p) {
		if _, ok := skip[p]; ok {
			return true
		}
	}
	return false
}
