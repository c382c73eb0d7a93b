// Package present renders engine results for the terminal.
package present

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/witvcs/wit/internal/diff"
	"github.com/witvcs/wit/internal/engine"
)

var (
	styleAdded   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Dark: "#63AC67", Light: "#5B8537"})
	styleRemoved = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Dark: "#D93337", Light: "#54121B"})
	styleHunk    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Dark: "#679FE1", Light: "#1D2A3A"})
	styleHeader  = lipgloss.NewStyle().Bold(true)
	styleDimmed  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Dark: "#8A887D", Light: "#68675F"})
	styleBranch  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Dark: "#FBE331", Light: "#C0A802"}).Bold(true)
)

// RenderDiff writes a colorized unified diff.
func RenderDiff(w io.Writer, diffs []engine.FileDiff) {
	for _, fd := range diffs {
		fmt.Fprintln(w, styleHeader.Render(fmt.Sprintf("%s (%s)", fd.Path, fd.Kind)))
		for _, line := range fd.Lines {
			switch line.Tag {
			case diff.TagAdded:
				fmt.Fprintln(w, styleAdded.Render("+"+line.Text))
			case diff.TagRemoved:
				fmt.Fprintln(w, styleRemoved.Render("-"+line.Text))
			case diff.TagHunk:
				fmt.Fprintln(w, styleHunk.Render(line.Text))
			default:
				fmt.Fprintln(w, " "+line.Text)
			}
		}
	}
}

// RenderStatus writes the three status sections. Empty sections are
// omitted.
func RenderStatus(w io.Writer, st *engine.Status) {
	if st.Branch != "" {
		fmt.Fprintf(w, "On branch %s\n", styleBranch.Render(st.Branch))
	} else {
		fmt.Fprintf(w, "HEAD detached at %s\n", shortID(st.Head))
	}
	fmt.Fprintf(w, "Current commit: %s\n", shortID(st.Head))

	if len(st.Staged) > 0 {
		fmt.Fprintln(w, "\nChanges to be committed:")
		for _, rec := range st.Staged {
			fmt.Fprintf(w, "  %s  %s\n", styleAdded.Render(rec.Kind.String()), rec.Path)
		}
	}
	if len(st.NotStaged) > 0 {
		fmt.Fprintln(w, "\nChanges not staged for commit:")
		for _, p := range st.NotStaged {
			fmt.Fprintf(w, "  %s  %s\n", styleRemoved.Render("modified"), p)
		}
	}
	if len(st.Untracked) > 0 {
		fmt.Fprintln(w, "\nUntracked files:")
		for _, p := range st.Untracked {
			fmt.Fprintf(w, "  %s\n", styleDimmed.Render(p))
		}
	}
	if st.Clean() && len(st.Untracked) == 0 {
		fmt.Fprintln(w, "\nnothing to commit, working tree clean")
	}
}

// RenderLog writes the commit history, newest first.
func RenderLog(w io.Writer, entries []engine.LogEntry) {
	for i, entry := range entries {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, styleBranch.Render("commit "+entry.ID))
		if len(entry.Meta.Parents) > 1 {
			fmt.Fprintf(w, "Merge: %s\n", strings.Join(shortIDs(entry.Meta.Parents), " "))
		}
		fmt.Fprintf(w, "Date: %s\n", entry.Meta.Date.Format("Mon Jan 02 15:04:05 2006 -0700"))
		fmt.Fprintln(w)
		for _, line := range strings.Split(entry.Meta.Message, "\n") {
			fmt.Fprintf(w, "    %s\n", line)
		}
	}
}

// RenderBranches writes the branch listing with the active branch starred.
func RenderBranches(w io.Writer, branches []engine.BranchInfo) {
	for _, b := range branches {
		marker := " "
		name := b.Name
		if b.Active {
			marker = "*"
			name = styleBranch.Render(name)
		}
		fmt.Fprintf(w, "%s %s %s\n", marker, name, styleDimmed.Render(shortID(b.Commit)))
	}
}

func shortID(id string) string {
	if len(id) > 10 {
		return id[:10]
	}
	return id
}

func shortIDs(ids []string) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = shortID(id)
	}
	return out
}
