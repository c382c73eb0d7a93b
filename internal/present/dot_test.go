package present

import (
	"strings"
	"testing"

	"github.com/witvcs/wit/internal/history"
)

func TestDOT(t *testing.T) {
	nodes := []history.Node{
		{ID: "rootcommit0000"},
		{ID: "childcommit000", Parents: []string{"rootcommit0000"}},
	}

	out := string(DOT(nodes))
	if !strings.HasPrefix(out, "digraph history {") {
		t.Errorf("missing digraph header: %q", out)
	}
	if !strings.Contains(out, `"childcommit000" -> "rootcommit0000";`) {
		t.Errorf("missing edge: %q", out)
	}
	if !strings.Contains(out, `label="rootcommit"`) {
		t.Errorf("missing shortened label: %q", out)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "}") {
		t.Errorf("unterminated graph: %q", out)
	}
}
