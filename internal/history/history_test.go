package history

import (
	"testing"
	"time"

	"github.com/witvcs/wit/internal/config"
	"github.com/witvcs/wit/internal/fs"
	"github.com/witvcs/wit/internal/snapshot"
)

// buildHistory writes commit metadata for a small graph:
//
//	c1 <- c2 <- c3 <- m (merge of c3 and f2)
//	        \
//	         f1 <- f2
func buildHistory(t *testing.T) *Resolver {
	t.Helper()
	fsys := fs.NewMemoryFS()
	cfg := config.New("repo")
	if err := fsys.MkdirAll(cfg.SnapshotsDir(), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	store := snapshot.NewStore(cfg, fsys)

	commits := []struct {
		id      string
		parents []string
	}{
		{"c1", nil},
		{"c2", []string{"c1"}},
		{"c3", []string{"c2"}},
		{"f1", []string{"c2"}},
		{"f2", []string{"f1"}},
		{"m", []string{"c3", "f2"}},
	}
	for _, c := range commits {
		m := &snapshot.Meta{Parents: c.parents, Date: time.Now(), Message: c.id}
		if err := store.WriteMeta(c.id, m); err != nil {
			t.Fatalf("write meta %s: %v", c.id, err)
		}
	}
	return NewResolver(store)
}

func equalIDs(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestAncestorsFirstParentChain(t *testing.T) {
	r := buildHistory(t)

	got, err := r.Ancestors("m")
	if err != nil {
		t.Fatalf("ancestors: %v", err)
	}
	equalIDs(t, got, []string{"m", "c3", "c2", "c1"})
}

func TestAncestorsFlatIncludesMergeParents(t *testing.T) {
	r := buildHistory(t)

	got, err := r.AncestorsFlat("m")
	if err != nil {
		t.Fatalf("ancestors flat: %v", err)
	}
	equalIDs(t, got, []string{"m", "f2", "c3", "c2", "c1"})
}

func TestCommonAncestor(t *testing.T) {
	r := buildHistory(t)

	base, err := r.CommonAncestor("c3", "f2")
	if err != nil {
		t.Fatalf("common ancestor: %v", err)
	}
	if base != "c2" {
		t.Errorf("got %q, want c2", base)
	}

	// symmetric
	base, err = r.CommonAncestor("f2", "c3")
	if err != nil {
		t.Fatalf("common ancestor: %v", err)
	}
	if base != "c2" {
		t.Errorf("swapped args: got %q, want c2", base)
	}

	// an ancestor of the other side is its own base
	base, err = r.CommonAncestor("c3", "c1")
	if err != nil {
		t.Fatalf("common ancestor: %v", err)
	}
	if base != "c1" {
		t.Errorf("descendant case: got %q, want c1", base)
	}
}

func TestCommonAncestorDisjoint(t *testing.T) {
	fsys := fs.NewMemoryFS()
	cfg := config.New("repo")
	if err := fsys.MkdirAll(cfg.SnapshotsDir(), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	store := snapshot.NewStore(cfg, fsys)
	for _, id := range []string{"a", "b"} {
		if err := store.WriteMeta(id, &snapshot.Meta{Date: time.Now(), Message: id}); err != nil {
			t.Fatalf("write meta: %v", err)
		}
	}

	base, err := NewResolver(store).CommonAncestor("a", "b")
	if err != nil {
		t.Fatalf("common ancestor: %v", err)
	}
	if base != "" {
		t.Errorf("disjoint histories share %q", base)
	}
}

func TestGraphRootFirst(t *testing.T) {
	r := buildHistory(t)

	nodes, err := r.Graph("m")
	if err != nil {
		t.Fatalf("graph: %v", err)
	}

	seen := map[string]bool{}
	for _, n := range nodes {
		for _, p := range n.Parents {
			if !seen[p] {
				t.Errorf("node %s listed before its parent %s", n.ID, p)
			}
		}
		seen[n.ID] = true
	}
	if len(nodes) != 6 {
		t.Errorf("got %d nodes, want 6", len(nodes))
	}
}
