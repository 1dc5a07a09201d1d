package testutil

import (
	"strings"
	"testing"

	"github.com/specialistvlad/treegrid/internal/config"
	"github.com/specialistvlad/treegrid/internal/tree"
	"github.com/stretchr/testify/require"
)

// AssertLogged checks that every fragment appears in the captured log output.
func AssertLogged(t *testing.T, logs *SafeBuffer, fragments ...string) {
	t.Helper()
	out := logs.String()
	for _, f := range fragments {
		require.True(t, strings.Contains(out, f), "expected log output to contain %q, got:\n%s", f, out)
	}
}

// IDs returns the record ids of nodes in slice order.
func IDs(nodes []*tree.Node[*config.Record]) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Value().ID)
	}
	return out
}
