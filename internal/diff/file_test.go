package diff

import (
	"errors"
	"strings"
	"testing"

	"github.com/witvcs/wit/internal/fs"
	"github.com/witvcs/wit/internal/vcserr"
)

func TestFilesModifiedLine(t *testing.T) {
	fsys := fs.NewMemoryFS()
	write(t, fsys, "left.txt", "one\ntwo\nthree\n")
	write(t, fsys, "right.txt", "one\n2\nthree\n")

	lines, err := Files(fsys, "left.txt", "right.txt")
	if err != nil {
		t.Fatalf("files: %v", err)
	}

	var removed, added []string
	sawHunk := false
	for _, l := range lines {
		switch l.Tag {
		case TagRemoved:
			removed = append(removed, l.Text)
		case TagAdded:
			added = append(added, l.Text)
		case TagHunk:
			sawHunk = true
			if !strings.HasPrefix(l.Text, "@@ -") {
				t.Errorf("malformed hunk header: %q", l.Text)
			}
		}
	}
	if !sawHunk {
		t.Error("no hunk header emitted")
	}
	if len(removed) != 1 || removed[0] != "two" {
		t.Errorf("removed: %v", removed)
	}
	if len(added) != 1 || added[0] != "2" {
		t.Errorf("added: %v", added)
	}
}

func TestFilesIdentical(t *testing.T) {
	fsys := fs.NewMemoryFS()
	write(t, fsys, "left.txt", "same\ncontent\n")
	write(t, fsys, "right.txt", "same\ncontent\n")

	lines, err := Files(fsys, "left.txt", "right.txt")
	if err != nil {
		t.Fatalf("files: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("identical files produced %d lines", len(lines))
	}
}

func TestFilesDistantChangesSplitIntoHunks(t *testing.T) {
	fsys := fs.NewMemoryFS()
	var left, right strings.Builder
	for i := 0; i < 30; i++ {
		left.WriteString("line\n")
		right.WriteString("line\n")
		if i == 0 {
			left.WriteString("only-left-top\n")
		}
		if i == 29 {
			right.WriteString("only-right-bottom\n")
		}
	}
	write(t, fsys, "left.txt", left.String())
	write(t, fsys, "right.txt", right.String())

	lines, err := Files(fsys, "left.txt", "right.txt")
	if err != nil {
		t.Fatalf("files: %v", err)
	}

	hunks := 0
	for _, l := range lines {
		if l.Tag == TagHunk {
			hunks++
		}
	}
	if hunks != 2 {
		t.Errorf("got %d hunks, want 2", hunks)
	}
}

func TestFilesMissingCounterpart(t *testing.T) {
	fsys := fs.NewMemoryFS()
	write(t, fsys, "left.txt", "content\n")

	if _, err := Files(fsys, "left.txt", "missing.txt"); !errors.Is(err, vcserr.ErrMissingCounterpart) {
		t.Errorf("got %v, want ErrMissingCounterpart", err)
	}
	if _, err := Files(fsys, "missing.txt", "left.txt"); !errors.Is(err, vcserr.ErrMissingCounterpart) {
		t.Errorf("got %v, want ErrMissingCounterpart", err)
	}
}
