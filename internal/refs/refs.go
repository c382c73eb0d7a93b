// Package refs persists the mapping from reference names (HEAD, branch
// names) to commit ids, and the active branch pointer.
package refs

import (
	"fmt"
	"strings"

	"github.com/witvcs/wit/internal/config"
	"github.com/witvcs/wit/internal/fs"
	"github.com/witvcs/wit/internal/util"
	"github.com/witvcs/wit/internal/vcserr"
)

// RefSet maps reference names to commit ids.
type RefSet map[string]string

// Store reads and writes the references file and the active branch pointer.
type Store struct {
	cfg  *config.Config
	fsys fs.FS
}

func NewStore(cfg *config.Config, fsys fs.FS) *Store {
	return &Store{cfg: cfg, fsys: fsys}
}

// Read returns all references. A repository with no commits yet has no
// references file; that reads as an empty set, not an error.
func (s *Store) Read() (RefSet, error) {
	data, err := s.fsys.ReadFile(s.cfg.ReferencesFile())
	if err != nil {
		if !s.fsys.Exists(s.cfg.ReferencesFile()) {
			return RefSet{}, nil
		}
		return nil, fmt.Errorf("read references: %w", err)
	}
	set, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("references file: %w", err)
	}
	return set, nil
}

// Write upserts a single reference and persists the whole set atomically.
func (s *Store) Write(name, commitID string) error {
	set, err := s.Read()
	if err != nil {
		return err
	}
	set[name] = commitID
	return s.writeAll(set)
}

// AppendBranch creates a new branch reference. The name must not be taken.
func (s *Store) AppendBranch(name, commitID string) error {
	set, err := s.Read()
	if err != nil {
		return err
	}
	if _, taken := set[name]; taken {
		return fmt.Errorf("%q: %w", name, vcserr.ErrBranchExists)
	}
	set[name] = commitID
	return s.writeAll(set)
}

// ActiveBranch returns the branch HEAD currently tracks, or "" when
// detached.
func (s *Store) ActiveBranch() (string, error) {
	data, err := s.fsys.ReadFile(s.cfg.ActiveBranchFile())
	if err != nil {
		if !s.fsys.Exists(s.cfg.ActiveBranchFile()) {
			return "", nil
		}
		return "", fmt.Errorf("read active branch: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// SetActiveBranch records which branch HEAD tracks. Pass "" to detach.
func (s *Store) SetActiveBranch(name string) error {
	if err := util.WriteFileAtomic(s.fsys, s.cfg.ActiveBranchFile(), []byte(name)); err != nil {
		return fmt.Errorf("write active branch: %w", err)
	}
	return nil
}

func (s *Store) writeAll(set RefSet) error {
	if err := util.WriteFileAtomic(s.fsys, s.cfg.ReferencesFile(), encode(set)); err != nil {
		return fmt.Errorf("write references: %w", err)
	}
	return nil
}

// encode and decode are the only two places that know the on-disk line
// format of the references file.

func encode(set RefSet) []byte {
	var b strings.Builder
	for _, name := range util.SortedKeys(set) {
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(set[name])
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

func decode(data []byte) (RefSet, error) {
	set := RefSet{}
	for _, line := range strings.Split(string(data), "\n") {
		if line == "" {
			continue
		}
		name, id, ok := strings.Cut(line, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("malformed line %q: %w", line, vcserr.ErrCorruptStore)
		}
		set[name] = id
	}
	return set, nil
}
