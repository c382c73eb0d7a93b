package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/witvcs/wit/internal/fs"
	"github.com/witvcs/wit/internal/vcserr"
)

// Tag labels one line of textual diff output.
type Tag int

const (
	TagUnchanged Tag = iota
	TagAdded
	TagRemoved
	TagHunk
)

// Line is one element of the tagged-line sequence consumed by the diff
// presenter.
type Line struct {
	Tag  Tag
	Text string
}

// context lines shown around each change, unified-diff style
const hunkContext = 3

// Files computes a line-based textual diff between two files and returns it
// as tagged lines grouped into context hunks. Comparing against a path that
// does not exist fails with ErrMissingCounterpart; callers treat that as
// "file absent on one side."
func Files(fsys fs.FS, left, right string) ([]Line, error) {
	leftData, err := fsys.ReadFile(left)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", left, vcserr.ErrMissingCounterpart)
	}
	rightData, err := fsys.ReadFile(right)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", right, vcserr.ErrMissingCounterpart)
	}

	dmp := diffmatchpatch.New()
	c1, c2, lineArr := dmp.DiffLinesToChars(string(leftData), string(rightData))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(c1, c2, false), lineArr)

	ops := flatten(diffs)
	return buildHunks(ops), nil
}

// op is a single line of the flattened diff with its position on each side.
type op struct {
	tag  Tag
	text string
	oldN int // 1-based line number on the left, 0 when added
	newN int // 1-based line number on the right, 0 when removed
}

func flatten(diffs []diffmatchpatch.Diff) []op {
	var ops []op
	oldN, newN := 1, 1
	for _, d := range diffs {
		for _, text := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				ops = append(ops, op{tag: TagUnchanged, text: text, oldN: oldN, newN: newN})
				oldN++
				newN++
			case diffmatchpatch.DiffDelete:
				ops = append(ops, op{tag: TagRemoved, text: text, oldN: oldN})
				oldN++
			case diffmatchpatch.DiffInsert:
				ops = append(ops, op{tag: TagAdded, text: text, newN: newN})
				newN++
			}
		}
	}
	return ops
}

// buildHunks groups changed lines into hunks with surrounding context and
// prefixes each hunk with its @@ header.
func buildHunks(ops []op) []Line {
	type span struct{ start, end int } // half-open index range into ops

	var spans []span
	for i := 0; i < len(ops); i++ {
		if ops[i].tag == TagUnchanged {
			continue
		}
		start := i - hunkContext
		if start < 0 {
			start = 0
		}
		end := i + hunkContext + 1
		if end > len(ops) {
			end = len(ops)
		}
		if n := len(spans); n > 0 && start <= spans[n-1].end {
			spans[n-1].end = end
		} else {
			spans = append(spans, span{start, end})
		}
	}

	var lines []Line
	for _, sp := range spans {
		lines = append(lines, Line{Tag: TagHunk, Text: hunkHeader(ops[sp.start:sp.end])})
		for _, o := range ops[sp.start:sp.end] {
			lines = append(lines, Line{Tag: o.tag, Text: o.text})
		}
	}
	return lines
}

func hunkHeader(ops []op) string {
	oldStart, oldCount := 0, 0
	newStart, newCount := 0, 0
	for _, o := range ops {
		if o.oldN > 0 {
			if oldStart == 0 {
				oldStart = o.oldN
			}
			oldCount++
		}
		if o.newN > 0 {
			if newStart == 0 {
				newStart = o.newN
			}
			newCount++
		}
	}
	return fmt.Sprintf("@@ -%d,%d +%d,%d @@", oldStart, oldCount, newStart, newCount)
}

// splitLines splits a diff segment into lines without their trailing
// newlines; segments normally end with one.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
