// Package staging maintains the mutable snapshot of what the next commit
// will contain.
package staging

import (
	"fmt"
	"path/filepath"

	"github.com/witvcs/wit/internal/config"
	"github.com/witvcs/wit/internal/fs"
	"github.com/witvcs/wit/internal/vcserr"
)

// Area is the staging snapshot under the control directory. It exists from
// initialization on and is only ever mutated through Stage and ResetTo.
type Area struct {
	cfg  *config.Config
	fsys fs.FS
}

func NewArea(cfg *config.Config, fsys fs.FS) *Area {
	return &Area{cfg: cfg, fsys: fsys}
}

// Dir returns the staging snapshot directory.
func (a *Area) Dir() string {
	return a.cfg.StagingDir()
}

// Init seeds an empty staging snapshot. Idempotent.
func (a *Area) Init() error {
	if err := a.fsys.MkdirAll(a.cfg.StagingDir(), 0o755); err != nil {
		return fmt.Errorf("create staging dir: %w", err)
	}
	return nil
}

// Stage copies a file or directory tree from the working directory into the
// staging snapshot, creating parent directories as needed. Re-staging an
// already-staged path overwrites it.
func (a *Area) Stage(rel string) error {
	rel = filepath.Clean(rel)
	src := filepath.Join(a.cfg.Root, rel)
	dst := filepath.Join(a.cfg.StagingDir(), rel)

	if !a.fsys.Exists(src) {
		return fmt.Errorf("%q: %w", rel, vcserr.ErrPathNotFound)
	}

	if a.fsys.IsDir(src) {
		skip := map[string]struct{}{config.ControlDir: {}}
		if err := fs.CopyTree(a.fsys, src, dst, skip); err != nil {
			return fmt.Errorf("stage %q: %w", rel, err)
		}
		return nil
	}

	if err := fs.CopyFile(a.fsys, src, dst); err != nil {
		return fmt.Errorf("stage %q: %w", rel, err)
	}
	return nil
}

// ResetTo replaces the entire staging snapshot with a copy of the given
// snapshot directory.
func (a *Area) ResetTo(snapshotDir string) error {
	if err := fs.ClearDir(a.fsys, a.cfg.StagingDir()); err != nil {
		return fmt.Errorf("clear staging: %w", err)
	}
	if err := fs.CopyTree(a.fsys, snapshotDir, a.cfg.StagingDir(), nil); err != nil {
		return fmt.Errorf("reset staging: %w", err)
	}
	return nil
}
