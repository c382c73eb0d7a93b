package present

import (
	"fmt"
	"strings"

	"github.com/witvcs/wit/internal/history"
)

// DOT renders the commit graph in Graphviz dot format, root at the top and
// edges pointing from child to parent.
func DOT(nodes []history.Node) []byte {
	var b strings.Builder
	b.WriteString("digraph history {\n")
	b.WriteString("\trankdir=BT;\n")
	b.WriteString("\tnode [shape=box, fontname=\"monospace\"];\n")
	for _, n := range nodes {
		fmt.Fprintf(&b, "\t%q [label=%q];\n", n.ID, shortID(n.ID))
		for _, p := range n.Parents {
			fmt.Fprintf(&b, "\t%q -> %q;\n", n.ID, p)
		}
	}
	b.WriteString("}\n")
	return []byte(b.String())
}
