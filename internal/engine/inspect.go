package engine

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/witvcs/wit/internal/config"
	"github.com/witvcs/wit/internal/diff"
	"github.com/witvcs/wit/internal/history"
	"github.com/witvcs/wit/internal/progress"
	"github.com/witvcs/wit/internal/snapshot"
	"github.com/witvcs/wit/internal/vcserr"
)

// LogEntry pairs a commit id with its metadata for history listings.
type LogEntry struct {
	ID   string
	Meta *snapshot.Meta
}

// Log returns the first-parent history of HEAD, newest first.
func (e *Engine) Log() ([]LogEntry, error) {
	set, err := e.refs.Read()
	if err != nil {
		return nil, err
	}
	head, ok := set[config.HeadRef]
	if !ok {
		return nil, vcserr.ErrNoCommits
	}

	ids, err := e.hist.Ancestors(head)
	if err != nil {
		return nil, err
	}
	entries := make([]LogEntry, 0, len(ids))
	for _, id := range ids {
		m, err := e.snaps.ReadMeta(id)
		if err != nil {
			return nil, err
		}
		entries = append(entries, LogEntry{ID: id, Meta: m})
	}
	return entries, nil
}

// FileDiff is the textual diff of one path between two trees.
type FileDiff struct {
	Path  string
	Kind  diff.Kind
	Lines []diff.Line
}

// DiffWork diffs the staging snapshot against the working tree: the changes
// that are not yet staged.
func (e *Engine) DiffWork() ([]FileDiff, error) {
	return e.diffTrees(e.stage.Dir(), e.cfg.Root, e.ignoreSet())
}

// DiffCached diffs HEAD against the staging snapshot: the changes that the
// next commit would record.
func (e *Engine) DiffCached() ([]FileDiff, error) {
	set, err := e.refs.Read()
	if err != nil {
		return nil, err
	}
	head, ok := set[config.HeadRef]
	if !ok {
		return nil, vcserr.ErrNoCommits
	}
	return e.diffTrees(e.snaps.PathOf(head), e.stage.Dir(), nil)
}

// DiffCommits diffs two commits or branches, left to right.
func (e *Engine) DiffCommits(aRef, bRef string) ([]FileDiff, error) {
	a, err := e.resolve(aRef)
	if err != nil {
		return nil, err
	}
	b, err := e.resolve(bRef)
	if err != nil {
		return nil, err
	}
	return e.diffTrees(e.snaps.PathOf(a), e.snaps.PathOf(b), nil)
}

func (e *Engine) diffTrees(left, right string, ignore map[string]struct{}) ([]FileDiff, error) {
	records, err := diff.Trees(e.fsys, left, right, ignore)
	if err != nil {
		return nil, err
	}

	var out []FileDiff
	for _, rec := range records {
		fd := FileDiff{Path: rec.Path, Kind: rec.Kind}
		lp := filepath.Join(left, filepath.FromSlash(rec.Path))
		rp := filepath.Join(right, filepath.FromSlash(rec.Path))
		switch rec.Kind {
		case diff.Modified:
			fd.Lines, err = diff.Files(e.fsys, lp, rp)
		case diff.Added:
			fd.Lines, err = e.wholeFile(rp, diff.TagAdded)
		case diff.Removed:
			fd.Lines, err = e.wholeFile(lp, diff.TagRemoved)
		}
		if err != nil {
			return nil, err
		}
		out = append(out, fd)
	}
	return out, nil
}

// wholeFile renders a file absent on one side as one hunk of all-added or
// all-removed lines.
func (e *Engine) wholeFile(path string, tag diff.Tag) ([]diff.Line, error) {
	data, err := e.fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}
	text := strings.TrimSuffix(string(data), "\n")
	if text == "" {
		return nil, nil
	}
	split := strings.Split(text, "\n")

	header := fmt.Sprintf("@@ -0,0 +1,%d @@", len(split))
	if tag == diff.TagRemoved {
		header = fmt.Sprintf("@@ -1,%d +0,0 @@", len(split))
	}
	lines := []diff.Line{{Tag: diff.TagHunk, Text: header}}
	for _, s := range split {
		lines = append(lines, diff.Line{Tag: tag, Text: s})
	}
	return lines, nil
}

// GraphNodes returns every commit reachable from HEAD, root-first, for the
// graph renderer.
func (e *Engine) GraphNodes() ([]history.Node, error) {
	set, err := e.refs.Read()
	if err != nil {
		return nil, err
	}
	head, ok := set[config.HeadRef]
	if !ok {
		return nil, vcserr.ErrNoCommits
	}
	return e.hist.Graph(head)
}

// Verify rehashes every snapshot tree and compares it against the tree hash
// recorded in the commit metadata. Returns the ids that fail.
func (e *Engine) Verify() ([]string, error) {
	ids, err := e.snaps.List()
	if err != nil {
		return nil, err
	}

	bar := progress.New(len(ids), "Verifying snapshots")
	defer bar.Finish()

	var bad []string
	for _, id := range ids {
		m, err := e.snaps.ReadMeta(id)
		if err != nil {
			return nil, err
		}
		got, err := e.snaps.TreeHash(e.snaps.PathOf(id))
		if err != nil {
			return nil, err
		}
		if got != m.Tree {
			bad = append(bad, id)
		}
		bar.Increment()
	}
	return bad, nil
}
