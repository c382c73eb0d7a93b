// Package history walks the parent links of the commit graph.
package history

import (
	"fmt"

	"github.com/witvcs/wit/internal/snapshot"
)

// Resolver answers ancestry questions by reading commit metadata from the
// snapshot store.
type Resolver struct {
	snaps *snapshot.Store
}

func NewResolver(snaps *snapshot.Store) *Resolver {
	return &Resolver{snaps: snaps}
}

// Ancestors returns the first-parent chain starting at id (inclusive),
// newest first. Merge commits contribute only their first parent.
func (r *Resolver) Ancestors(id string) ([]string, error) {
	return r.walk(id, false)
}

// AncestorsFlat walks the same first-parent chain but additionally yields
// the second parent of every merge commit encountered. The result is a
// reachable-ancestor listing for common-ancestor search, not a total order.
func (r *Resolver) AncestorsFlat(id string) ([]string, error) {
	return r.walk(id, true)
}

func (r *Resolver) walk(id string, flatten bool) ([]string, error) {
	var out []string
	seen := map[string]bool{}
	for cur := id; cur != "" && !seen[cur]; {
		seen[cur] = true
		out = append(out, cur)

		m, err := r.snaps.ReadMeta(cur)
		if err != nil {
			return nil, fmt.Errorf("walk ancestors of %q: %w", id, err)
		}
		if flatten && len(m.Parents) > 1 {
			for _, p := range m.Parents[1:] {
				if !seen[p] {
					seen[p] = true
					out = append(out, p)
				}
			}
		}
		if len(m.Parents) == 0 {
			break
		}
		cur = m.Parents[0]
	}
	return out, nil
}

// CommonAncestor returns the first commit reachable from both a and b,
// scanning a's flattened ancestry in order against b's. With multiple
// candidates the traversal order decides; for linear histories this is the
// nearest shared commit. Returns "" when nothing is shared.
func (r *Resolver) CommonAncestor(a, b string) (string, error) {
	ancA, err := r.AncestorsFlat(a)
	if err != nil {
		return "", err
	}
	ancB, err := r.AncestorsFlat(b)
	if err != nil {
		return "", err
	}

	inB := make(map[string]bool, len(ancB))
	for _, id := range ancB {
		inB[id] = true
	}
	for _, id := range ancA {
		if inB[id] {
			return id, nil
		}
	}
	return "", nil
}

// Node pairs a commit id with its parents, in the order the graph renderer
// wants them: root first, so edges always point at already-seen nodes.
type Node struct {
	ID      string
	Parents []string
}

// Graph collects every commit reachable from head. Parents are emitted
// before their children, so edges always point at already-listed nodes.
func (r *Resolver) Graph(head string) ([]Node, error) {
	var nodes []Node
	seen := map[string]bool{}

	var visit func(id string) error
	visit = func(id string) error {
		if id == "" || seen[id] {
			return nil
		}
		seen[id] = true

		m, err := r.snaps.ReadMeta(id)
		if err != nil {
			return fmt.Errorf("graph from %q: %w", head, err)
		}
		for _, p := range m.Parents {
			if err := visit(p); err != nil {
				return err
			}
		}
		nodes = append(nodes, Node{ID: id, Parents: m.Parents})
		return nil
	}

	if err := visit(head); err != nil {
		return nil, err
	}
	return nodes, nil
}
