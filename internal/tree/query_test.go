package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleTree builds
//
//	A
//	├── B
//	│   ├── D
//	│   └── E
//	│       └── G
//	└── C
//	    └── F
func sampleTree(t *testing.T) map[string]*Node[string] {
	t.Helper()
	nodes := map[string]*Node[string]{}
	nodes["A"] = New("A")
	nodes["B"] = nodes["A"].AddValue("B")
	nodes["C"] = nodes["A"].AddValue("C")
	nodes["D"] = nodes["B"].AddValue("D")
	nodes["E"] = nodes["B"].AddValue("E")
	nodes["F"] = nodes["C"].AddValue("F")
	nodes["G"] = nodes["E"].AddValue("G")
	return nodes
}

func TestRoot(t *testing.T) {
	nodes := sampleTree(t)
	for name, n := range nodes {
		assert.Same(t, nodes["A"], n.Root(), name)
	}
}

func TestAncestors(t *testing.T) {
	nodes := sampleTree(t)

	assert.Empty(t, nodes["A"].Ancestors())
	assert.Equal(t, []string{"E", "B", "A"}, values(nodes["G"].Ancestors()))
	assert.Equal(t, []string{"G", "E", "B", "A"}, values(nodes["G"].SelfAndAncestors()))
	assert.Equal(t, []string{"A"}, values(nodes["A"].SelfAndAncestors()))
	assert.Equal(t, []string{"A", "B", "E", "G"}, values(nodes["G"].Path()))
}

func TestDescendants(t *testing.T) {
	nodes := sampleTree(t)

	assert.Equal(t, []string{"A", "B", "D", "E", "G", "C", "F"}, values(nodes["A"].SelfAndDescendants()))
	assert.Equal(t, []string{"B", "D", "E", "G", "C", "F"}, values(nodes["A"].Descendants()))
	assert.Equal(t, []string{"D", "E", "G"}, values(nodes["B"].Descendants()))
	assert.Empty(t, nodes["G"].Descendants())
	assert.Equal(t, []string{"G"}, values(nodes["G"].SelfAndDescendants()))
}

func TestWalk_StopsEarly(t *testing.T) {
	nodes := sampleTree(t)

	var seen []string
	nodes["A"].Walk(func(n *Node[string]) bool {
		seen = append(seen, n.Value())
		return n.Value() != "E"
	})
	assert.Equal(t, []string{"A", "B", "D", "E"}, seen)
}

func TestSizeAndHeight(t *testing.T) {
	nodes := sampleTree(t)

	assert.Equal(t, 7, nodes["A"].Size())
	assert.Equal(t, 3, nodes["A"].Height())
	assert.Equal(t, 2, nodes["B"].Height())
	assert.Equal(t, 0, nodes["F"].Height())
	assert.Equal(t, 1, nodes["F"].Size())
}

func TestSiblings(t *testing.T) {
	nodes := sampleTree(t)

	assert.Equal(t, []string{"E"}, values(nodes["D"].Siblings()))
	assert.Equal(t, []string{"D", "E"}, values(nodes["D"].SelfAndSiblings()))
	assert.Empty(t, nodes["F"].Siblings())
	assert.Equal(t, []string{"F"}, values(nodes["F"].SelfAndSiblings()))

	assert.Empty(t, nodes["A"].Siblings())
	assert.Equal(t, []string{"A"}, values(nodes["A"].SelfAndSiblings()))
}

func TestLevel_MatchesAncestorCount(t *testing.T) {
	nodes := sampleTree(t)

	assert.Equal(t, 0, nodes["A"].Level())
	assert.Equal(t, 3, nodes["G"].Level())
	for name, n := range nodes {
		assert.Equal(t, len(n.Ancestors()), n.Level(), name)
		if !n.IsRoot() {
			assert.Equal(t, n.Parent().Level()+1, n.Level(), name)
		}
	}
}

func TestNodesAtLevel(t *testing.T) {
	nodes := sampleTree(t)

	testCases := []struct {
		level    int
		expected []string
	}{
		{level: 0, expected: []string{"A"}},
		{level: 1, expected: []string{"B", "C"}},
		{level: 2, expected: []string{"D", "E", "F"}},
		{level: 3, expected: []string{"G"}},
		{level: 4, expected: []string{}},
		{level: -1, expected: []string{}},
	}

	for _, tc := range testCases {
		// Any node in the tree answers for the whole tree.
		for _, from := range []string{"A", "F", "G"} {
			got := nodes[from].NodesAtLevel(tc.level)
			assert.Equal(t, tc.expected, values(got), "level %d from %s", tc.level, from)
		}
	}

	// Cross-check against a full scan.
	for level := 0; level <= nodes["A"].Height(); level++ {
		var expected []*Node[string]
		for _, n := range nodes["A"].SelfAndDescendants() {
			if n.Level() == level {
				expected = append(expected, n)
			}
		}
		assert.Equal(t, expected, nodes["D"].NodesAtLevel(level))
	}
}

func TestDeepChainIsIterative(t *testing.T) {
	const depth = 100_000
	root := New(0)
	cur := root
	for i := 1; i < depth; i++ {
		cur = cur.AddValue(i)
	}

	require.Equal(t, depth-1, cur.Level())
	assert.Equal(t, depth, root.Size())
	assert.Equal(t, depth-1, root.Height())
	assert.Len(t, cur.Ancestors(), depth-1)
	assert.Equal(t, []*Node[int]{cur}, root.NodesAtLevel(depth-1))
}
