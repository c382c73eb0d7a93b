package engine

import (
	"bytes"
	"fmt"
	"path/filepath"
	"time"

	"github.com/witvcs/wit/internal/config"
	"github.com/witvcs/wit/internal/diff"
	"github.com/witvcs/wit/internal/log"
	"github.com/witvcs/wit/internal/snapshot"
	"github.com/witvcs/wit/internal/vcserr"
)

// Add stages a file or directory tree for the next commit. Paths may be
// absolute or relative to the repository root. Staging a path that is
// already staged with identical content is a no-op.
func (e *Engine) Add(path string) error {
	rel := path
	if filepath.IsAbs(path) {
		var err error
		rel, err = filepath.Rel(e.cfg.Root, path)
		if err != nil {
			return fmt.Errorf("%q is outside the repository: %w", path, vcserr.ErrPathNotFound)
		}
	}
	rel = filepath.Clean(rel)

	if e.alreadyStaged(rel) {
		log.L().Infow("already staged", "path", rel)
		return nil
	}

	if err := e.stage.Stage(rel); err != nil {
		return err
	}
	log.L().Debugw("staged", "path", rel)
	return nil
}

func (e *Engine) alreadyStaged(rel string) bool {
	src := filepath.Join(e.cfg.Root, rel)
	dst := filepath.Join(e.stage.Dir(), rel)
	if e.fsys.IsDir(src) || !e.fsys.Exists(dst) {
		return false
	}
	a, err := e.fsys.ReadFile(src)
	if err != nil {
		return false
	}
	b, err := e.fsys.ReadFile(dst)
	if err != nil {
		return false
	}
	return bytes.Equal(a, b)
}

// Commit freezes the staging snapshot into a new commit and advances the
// references. The snapshot and its metadata are fully written before any
// reference moves, so a failure partway through never leaves HEAD pointing
// at a missing commit. Committing with nothing changed against HEAD fails
// with ErrNoChanges unless this is a merge commit.
func (e *Engine) Commit(message, secondParent string) (string, error) {
	set, err := e.refs.Read()
	if err != nil {
		return "", err
	}
	head, hasHead := set[config.HeadRef]

	if hasHead && secondParent == "" {
		records, err := diff.Trees(e.fsys, e.snaps.PathOf(head), e.stage.Dir(), nil)
		if err != nil {
			return "", err
		}
		if len(records) == 0 {
			return "", vcserr.ErrNoChanges
		}
	}

	treeHash, err := e.snaps.TreeHash(e.stage.Dir())
	if err != nil {
		return "", err
	}

	var parents []string
	if hasHead {
		parents = append(parents, head)
	}
	if secondParent != "" {
		parents = append(parents, secondParent)
	}

	now := time.Now()
	id := e.snaps.CommitID(treeHash, parents, now, message)

	if err := e.snaps.Create(id, e.stage.Dir()); err != nil {
		return "", err
	}
	meta := &snapshot.Meta{Parents: parents, Date: now, Message: message, Tree: treeHash}
	if err := e.snaps.WriteMeta(id, meta); err != nil {
		return "", err
	}

	// the active branch follows HEAD only when it pointed at the old HEAD
	active, err := e.refs.ActiveBranch()
	if err != nil {
		return "", err
	}
	if active != "" && (!hasHead || set[active] == head) {
		if err := e.refs.Write(active, id); err != nil {
			return "", err
		}
	}
	if err := e.refs.Write(config.HeadRef, id); err != nil {
		return "", err
	}

	log.L().Infow("committed", "id", id, "branch", active, "parents", parents)
	return id, nil
}
