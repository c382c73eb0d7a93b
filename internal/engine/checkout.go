package engine

import (
	"fmt"

	"github.com/witvcs/wit/internal/config"
	"github.com/witvcs/wit/internal/fs"
	"github.com/witvcs/wit/internal/log"
	"github.com/witvcs/wit/internal/util"
	"github.com/witvcs/wit/internal/vcserr"
)

// resolve maps a user-supplied reference to a commit id: branch names take
// precedence, then raw commit ids.
func (e *Engine) resolve(ref string) (string, error) {
	set, err := e.refs.Read()
	if err != nil {
		return "", err
	}
	if id, ok := set[ref]; ok && ref != config.HeadRef {
		return id, nil
	}
	if ref == config.HeadRef {
		if id, ok := set[config.HeadRef]; ok {
			return id, nil
		}
		return "", vcserr.ErrNoCommits
	}
	if e.snaps.Exists(ref) {
		return ref, nil
	}
	return "", fmt.Errorf("%q: %w", ref, vcserr.ErrUnknownCommit)
}

// Checkout restores the working tree and staging snapshot to the given
// branch or commit id. The checkout overlays the snapshot onto the working
// tree; untracked files are left alone. Refused while staged or unstaged
// changes exist.
func (e *Engine) Checkout(ref string) (string, error) {
	set, err := e.refs.Read()
	if err != nil {
		return "", err
	}
	id, isBranch := "", false
	if v, ok := set[ref]; ok && ref != config.HeadRef {
		id, isBranch = v, true
	} else if e.snaps.Exists(ref) {
		id = ref
	} else {
		return "", fmt.Errorf("%q: %w", ref, vcserr.ErrUnknownCommit)
	}

	st, err := e.Status()
	if err != nil {
		return "", err
	}
	if !st.Clean() {
		return "", vcserr.ErrDirtyWorkingTree
	}

	if err := fs.CopyTree(e.fsys, e.snaps.PathOf(id), e.cfg.Root, nil); err != nil {
		return "", fmt.Errorf("restore working tree: %w", err)
	}
	if err := e.stage.ResetTo(e.snaps.PathOf(id)); err != nil {
		return "", err
	}

	if err := e.refs.Write(config.HeadRef, id); err != nil {
		return "", err
	}
	if isBranch {
		err = e.refs.SetActiveBranch(ref)
	} else {
		err = e.refs.SetActiveBranch("")
	}
	if err != nil {
		return "", err
	}

	log.L().Infow("checked out", "ref", ref, "id", id, "branch", isBranch)
	return id, nil
}

// Branch creates a new branch pointing at HEAD. The branch is not checked
// out.
func (e *Engine) Branch(name string) error {
	set, err := e.refs.Read()
	if err != nil {
		return err
	}
	head, ok := set[config.HeadRef]
	if !ok {
		return vcserr.ErrNoCommits
	}
	if err := e.refs.AppendBranch(name, head); err != nil {
		return err
	}
	log.L().Infow("branch created", "name", name, "at", head)
	return nil
}

// BranchInfo is one row of the branch listing.
type BranchInfo struct {
	Name   string
	Commit string
	Active bool
}

// Branches lists all branches sorted by name, flagging the active one.
func (e *Engine) Branches() ([]BranchInfo, error) {
	set, err := e.refs.Read()
	if err != nil {
		return nil, err
	}
	active, err := e.refs.ActiveBranch()
	if err != nil {
		return nil, err
	}

	var out []BranchInfo
	for _, name := range util.SortedKeys(set) {
		if name == config.HeadRef {
			continue
		}
		out = append(out, BranchInfo{Name: name, Commit: set[name], Active: name == active})
	}
	return out, nil
}
