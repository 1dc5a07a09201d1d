package tree

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	id     int
	parent int // 0 means no parent
	name   string
}

func itemID(it item) int { return it.id }

func itemParent(it item) (int, bool) { return it.parent, it.parent != 0 }

func names(nodes []*Node[item]) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Value().name)
	}
	return out
}

func TestBuildForest_WorkedExample(t *testing.T) {
	items := []item{
		{1, 0, "A"},
		{2, 1, "B"},
		{3, 1, "C"},
		{4, 2, "D"},
	}

	roots, err := BuildForest(items, itemID, itemParent)
	require.NoError(t, err)
	require.Len(t, roots, 1)

	a := roots[0]
	assert.Equal(t, "A", a.Value().name)
	assert.Equal(t, []string{"B", "C"}, names(a.Children()))
	b := a.Children()[0]
	assert.Equal(t, []string{"D"}, names(b.Children()))
	d := b.Children()[0]
	assert.Equal(t, 2, d.Level())
	assert.Equal(t, []string{"A", "B", "D", "C"}, names(a.SelfAndDescendants()))
}

func TestBuildForest_UnorderedInput(t *testing.T) {
	// Children listed before their parents, two separate roots.
	items := []item{
		{4, 2, "D"},
		{10, 0, "X"},
		{3, 1, "C"},
		{2, 1, "B"},
		{11, 10, "Y"},
		{1, 0, "A"},
	}

	roots, err := BuildForest(items, itemID, itemParent)
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "A"}, names(roots))
	assert.Equal(t, []string{"C", "B"}, names(roots[1].Children()))
	assert.Equal(t, []string{"Y"}, names(roots[0].Children()))
	assert.Equal(t, []string{"D"}, names(roots[1].Children()[1].Children()))
}

func TestBuildForest_VisitsEveryNodeOnce(t *testing.T) {
	var items []item
	id := 1
	for r := 0; r < 5; r++ {
		rootID := id
		items = append(items, item{rootID, 0, fmt.Sprintf("r%d", r)})
		id++
		for c := 0; c < 20; c++ {
			// Alternate between the root and the previous item as parent.
			parent := rootID
			if c%2 == 1 {
				parent = id - 1
			}
			items = append(items, item{id, parent, fmt.Sprintf("n%d", id)})
			id++
		}
	}

	roots, err := BuildForest(items, itemID, itemParent)
	require.NoError(t, err)
	require.Len(t, roots, 5)

	seen := map[*Node[item]]int{}
	for _, root := range roots {
		assert.True(t, root.IsRoot())
		for _, n := range root.SelfAndDescendants() {
			seen[n]++
			assert.Equal(t, len(n.Ancestors()), n.Level())
		}
	}
	assert.Len(t, seen, len(items))
	for n, count := range seen {
		assert.Equal(t, 1, count, n.Value().name)
	}
}

func TestBuildForest_Empty(t *testing.T) {
	roots, err := BuildForest(nil, itemID, itemParent)
	require.NoError(t, err)
	assert.Empty(t, roots)
}

func TestBuildForest_SelfParent(t *testing.T) {
	items := []item{{1, 0, "A"}, {2, 2, "B"}, {3, 3, "C"}}

	_, err := BuildForest(items, itemID, itemParent)
	require.ErrorIs(t, err, ErrSelfParent)
	assert.ErrorIs(t, err, ErrConstructionViolation)

	var spErr *SelfParentError[int]
	require.True(t, errors.As(err, &spErr))
	assert.Equal(t, 2, spErr.ID)
	assert.Equal(t, 1, spErr.Index)
}

func TestBuildForest_DuplicateID(t *testing.T) {
	items := []item{{1, 0, "A"}, {1, 0, "B"}}

	roots, err := BuildForest(items, itemID, itemParent)
	require.ErrorIs(t, err, ErrDuplicateID)
	assert.Nil(t, roots)

	var dupErr *DuplicateIDError[int]
	require.True(t, errors.As(err, &dupErr))
	assert.Equal(t, 1, dupErr.ID)
	assert.Equal(t, 2, dupErr.Count)
	assert.Equal(t, 1, dupErr.Index)
}

func TestBuildForest_DuplicateByExtractedIDOnly(t *testing.T) {
	// Equal payloads with distinct ids are fine.
	type rec struct{ ID, Name string }
	items := []rec{{"a", "same"}, {"b", "same"}}
	roots, err := BuildForest(items,
		func(r rec) string { return r.ID },
		func(r rec) (string, bool) { return "", false })
	require.NoError(t, err)
	assert.Len(t, roots, 2)

	// Distinct payloads sharing an id are not.
	items = []rec{{"a", "x"}, {"b", "y"}, {"a", "z"}, {"a", "w"}}
	_, err = BuildForest(items,
		func(r rec) string { return r.ID },
		func(r rec) (string, bool) { return "", false })
	var dupErr *DuplicateIDError[string]
	require.True(t, errors.As(err, &dupErr))
	assert.Equal(t, "a", dupErr.ID)
	assert.Equal(t, 3, dupErr.Count)
	assert.Equal(t, 2, dupErr.Index)
}

func TestBuildForest_IndexPointsAtOffendingRecord(t *testing.T) {
	// Both records share id 1; only the second one names itself as parent.
	items := []item{{1, 0, "A"}, {1, 1, "B"}}

	_, err := BuildForest(items, itemID, itemParent)
	var spErr *SelfParentError[int]
	require.True(t, errors.As(err, &spErr))
	assert.Equal(t, 1, spErr.Index)
	assert.Equal(t, "B", items[spErr.Index].name)
}

func TestBuildForest_DanglingParent(t *testing.T) {
	items := []item{{1, 0, "A"}, {2, 1, "B"}, {3, 99, "C"}}

	roots, err := BuildForest(items, itemID, itemParent)
	require.ErrorIs(t, err, ErrDanglingParent)
	assert.Nil(t, roots)

	var dErr *DanglingParentError[int]
	require.True(t, errors.As(err, &dErr))
	assert.Equal(t, 3, dErr.ID)
	assert.Equal(t, 99, dErr.ParentID)
	assert.Equal(t, 2, dErr.Index)
}

func TestBuildForest_NoPartialLinkingOnError(t *testing.T) {
	// The wrapped values are plain structs, so the only way to observe a
	// half-built forest would be through returned nodes; there must be none.
	items := []item{{1, 0, "A"}, {2, 1, "B"}, {3, 42, "C"}}
	roots, err := BuildForest(items, itemID, itemParent)
	assert.Error(t, err)
	assert.Nil(t, roots)
}

func TestBuildForest_MutualParentsAreRejected(t *testing.T) {
	items := []item{{1, 2, "A"}, {2, 1, "B"}}

	roots, err := BuildForest(items, itemID, itemParent)
	require.ErrorIs(t, err, ErrCycle)
	assert.Nil(t, roots)

	var cErr *CycleError[int]
	require.True(t, errors.As(err, &cErr))
	assert.Equal(t, []int{1, 2}, cErr.IDs)
	assert.Equal(t, []int{0, 1}, cErr.Indexes)
	assert.Equal(t, "cycle detected in parent ids: 1 -> 2 -> 1", cErr.Error())
}

func TestBuildForest_CycleBehindValidChain(t *testing.T) {
	// 5 hangs off a three-node loop 2 -> 3 -> 4 -> 2; 1 is a normal root.
	items := []item{
		{1, 0, "A"},
		{5, 2, "E"},
		{2, 3, "B"},
		{3, 4, "C"},
		{4, 2, "D"},
	}

	_, err := BuildForest(items, itemID, itemParent)
	var cErr *CycleError[int]
	require.True(t, errors.As(err, &cErr))
	assert.Equal(t, []int{2, 3, 4}, cErr.IDs)
	assert.Equal(t, []int{2, 3, 4}, cErr.Indexes)
}

func TestFlatten_RoundTrip(t *testing.T) {
	items := []item{
		{1, 0, "A"},
		{2, 1, "B"},
		{3, 1, "C"},
		{4, 2, "D"},
		{5, 0, "E"},
	}
	roots, err := BuildForest(items, itemID, itemParent)
	require.NoError(t, err)

	flat := Flatten(roots, itemID)
	expected := []Record[item, int]{
		{ID: 1, Value: items[0]},
		{ID: 2, ParentID: 1, HasParent: true, Value: items[1]},
		{ID: 4, ParentID: 2, HasParent: true, Value: items[3]},
		{ID: 3, ParentID: 1, HasParent: true, Value: items[2]},
		{ID: 5, Value: items[4]},
	}
	if diff := cmp.Diff(expected, flat, cmp.AllowUnexported(item{})); diff != "" {
		t.Errorf("Flatten() mismatch (-want +got):\n%s", diff)
	}

	rebuilt, err := BuildForest(flat,
		func(r Record[item, int]) int { return r.ID },
		func(r Record[item, int]) (int, bool) { return r.ParentID, r.HasParent })
	require.NoError(t, err)
	require.Len(t, rebuilt, 2)
	assert.Equal(t, roots[0].Size(), rebuilt[0].Size())
	assert.Equal(t, roots[1].Size(), rebuilt[1].Size())
}

func TestBuildForest_ThenMutate(t *testing.T) {
	items := []item{{1, 0, "A"}, {2, 1, "B"}, {3, 2, "C"}}
	roots, err := BuildForest(items, itemID, itemParent)
	require.NoError(t, err)

	a := roots[0]
	c := a.Children()[0].Children()[0]

	_, err = c.Add(a)
	assert.ErrorIs(t, err, ErrCircularReference)

	require.NoError(t, c.Disconnect())
	_, err = a.Add(c)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, names(a.Children()))
	assert.Equal(t, 1, c.Level())
}
