// Package snapshot stores one immutable directory tree per commit, together
// with the commit's metadata record.
package snapshot

import (
	"fmt"
	"sort"

	"github.com/witvcs/wit/internal/config"
	"github.com/witvcs/wit/internal/fs"
	"github.com/witvcs/wit/internal/vcserr"
)

// Store manages the snapshot slots under the control directory.
type Store struct {
	cfg  *config.Config
	fsys fs.FS
	algo string
}

func NewStore(cfg *config.Config, fsys fs.FS) *Store {
	return &Store{cfg: cfg, fsys: fsys, algo: cfg.SelectedHash()}
}

// Create copies srcDir recursively into the slot keyed by id. A snapshot is
// never written twice: an occupied slot is an error, not an overwrite.
func (s *Store) Create(id, srcDir string) error {
	slot := s.cfg.SnapshotDir(id)
	if s.fsys.Exists(slot) {
		return fmt.Errorf("snapshot %q: %w", id, vcserr.ErrDuplicateID)
	}
	if err := fs.CopyTree(s.fsys, srcDir, slot, nil); err != nil {
		return fmt.Errorf("materialize snapshot %q: %w", id, err)
	}
	return nil
}

// Exists reports whether a snapshot slot is present for id.
func (s *Store) Exists(id string) bool {
	return s.fsys.IsDir(s.cfg.SnapshotDir(id))
}

// PathOf returns the directory holding the snapshot for id. Callers must
// treat the returned tree as read-only.
func (s *Store) PathOf(id string) string {
	return s.cfg.SnapshotDir(id)
}

// List returns every commit id that has a snapshot slot, sorted.
func (s *Store) List() ([]string, error) {
	entries, err := s.fsys.ReadDir(s.cfg.SnapshotsDir())
	if err != nil {
		return nil, fmt.Errorf("read snapshots dir: %w", err)
	}
	var ids []string
	for _, e := range entries {
		if e.IsDir() {
			ids = append(ids, e.Name())
		}
	}
	sort.Strings(ids)
	return ids, nil
}
