package engine

import (
	"github.com/witvcs/wit/internal/config"
	"github.com/witvcs/wit/internal/diff"
	"github.com/witvcs/wit/internal/vcserr"
)

// Status is the three-way classification of the repository's current state:
// staged changes (staging vs HEAD), unstaged modifications (working tree vs
// staging) and untracked files.
type Status struct {
	Head      string
	Branch    string // "" when HEAD is detached
	Staged    []diff.Record
	NotStaged []string
	Untracked []string
}

// Clean reports whether a checkout may proceed: nothing staged and nothing
// modified. Untracked files never block.
func (s *Status) Clean() bool {
	return len(s.Staged) == 0 && len(s.NotStaged) == 0
}

// Status computes the repository status. Requires at least one commit.
func (e *Engine) Status() (*Status, error) {
	set, err := e.refs.Read()
	if err != nil {
		return nil, err
	}
	head, ok := set[config.HeadRef]
	if !ok {
		return nil, vcserr.ErrNoCommits
	}
	branch, err := e.refs.ActiveBranch()
	if err != nil {
		return nil, err
	}

	st := &Status{Head: head, Branch: branch}

	cached, err := diff.Trees(e.fsys, e.snaps.PathOf(head), e.stage.Dir(), nil)
	if err != nil {
		return nil, err
	}
	for _, rec := range cached {
		if rec.Kind == diff.Removed {
			// a path present in HEAD but absent from staging only happens
			// through manual tampering; it is not a pending change
			continue
		}
		st.Staged = append(st.Staged, rec)
	}

	work, err := diff.Trees(e.fsys, e.stage.Dir(), e.cfg.Root, e.ignoreSet())
	if err != nil {
		return nil, err
	}
	for _, rec := range work {
		switch rec.Kind {
		case diff.Modified:
			st.NotStaged = append(st.NotStaged, rec.Path)
		case diff.Added:
			st.Untracked = append(st.Untracked, rec.Path)
		}
	}

	return st, nil
}
