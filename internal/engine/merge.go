package engine

import (
	"fmt"
	"path/filepath"

	"github.com/witvcs/wit/internal/diff"
	"github.com/witvcs/wit/internal/fs"
	"github.com/witvcs/wit/internal/log"
	"github.com/witvcs/wit/internal/vcserr"
)

// Merge folds another branch into the active branch and records a merge
// commit with two parents. The merge is take-theirs over the common
// ancestor: every path the other branch added or changed since the ancestor
// replaces the current version in both staging and the working tree.
// Deletions on the other branch are not propagated.
func (e *Engine) Merge(other string) (string, error) {
	active, err := e.refs.ActiveBranch()
	if err != nil {
		return "", err
	}
	if active == "" {
		return "", vcserr.ErrDetachedHead
	}

	set, err := e.refs.Read()
	if err != nil {
		return "", err
	}
	ours, ok := set[active]
	if !ok {
		return "", vcserr.ErrNoCommits
	}
	theirs, ok := set[other]
	if !ok {
		return "", fmt.Errorf("%q: %w", other, vcserr.ErrUnknownCommit)
	}
	if ours == theirs {
		return "", vcserr.ErrNothingToMerge
	}

	base, err := e.hist.CommonAncestor(ours, theirs)
	if err != nil {
		return "", err
	}
	if base == "" {
		return "", vcserr.ErrNoCommonAncestor
	}

	// the staging snapshot must mirror the current commit exactly
	pending, err := diff.Trees(e.fsys, e.snaps.PathOf(ours), e.stage.Dir(), nil)
	if err != nil {
		return "", err
	}
	if len(pending) > 0 {
		return "", vcserr.ErrDirtyForMerge
	}

	changed, err := diff.Trees(e.fsys, e.snaps.PathOf(base), e.snaps.PathOf(theirs), nil)
	if err != nil {
		return "", err
	}
	for _, rec := range changed {
		if rec.Kind == diff.Removed {
			continue
		}
		src := filepath.Join(e.snaps.PathOf(theirs), filepath.FromSlash(rec.Path))
		for _, dstRoot := range []string{e.stage.Dir(), e.cfg.Root} {
			dst := filepath.Join(dstRoot, filepath.FromSlash(rec.Path))
			if err := fs.CopyFile(e.fsys, src, dst); err != nil {
				return "", fmt.Errorf("merge %q: %w", rec.Path, err)
			}
		}
	}

	message := fmt.Sprintf("Merge branch '%s' into '%s'", other, active)
	id, err := e.Commit(message, theirs)
	if err != nil {
		return "", err
	}

	log.L().Infow("merged", "from", other, "into", active, "base", base, "id", id)
	return id, nil
}
