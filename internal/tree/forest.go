package tree

import "slices"

// BuildForest wraps every item in a node and links the nodes by id, returning
// the roots in input order. Children keep the input order of their records.
//
// idOf extracts the record id. parentIDOf extracts the parent id and reports
// false for records without a parent.
//
// The input is fully validated before the first link is made, so on error no
// node has been attached anywhere. Checks run in this order, each reporting
// the first offending record in input order together with its position:
//   - SelfParentError: a record names itself as its parent
//   - DuplicateIDError: two or more records share an extracted id
//   - DanglingParentError: a parent id matches no record
//   - CycleError: a chain of parent ids never reaches a parent-less record
func BuildForest[V any, K comparable](items []V, idOf func(V) K, parentIDOf func(V) (K, bool)) ([]*Node[V], error) {
	ids := make([]K, len(items))
	parentIDs := make([]K, len(items))
	hasParent := make([]bool, len(items))

	for i, item := range items {
		ids[i] = idOf(item)
		parentIDs[i], hasParent[i] = parentIDOf(item)
		if hasParent[i] && parentIDs[i] == ids[i] {
			return nil, &SelfParentError[K]{ID: ids[i], Index: i}
		}
	}

	// Lookup from id to input position, keyed strictly by extracted id.
	index := make(map[K]int, len(items))
	counts := make(map[K]int, len(items))
	for i, id := range ids {
		counts[id]++
		if _, seen := index[id]; !seen {
			index[id] = i
		}
	}
	if len(index) != len(ids) {
		for i, id := range ids {
			if counts[id] > 1 {
				second := i + 1 + slices.Index(ids[i+1:], id)
				return nil, &DuplicateIDError[K]{ID: id, Count: counts[id], Index: second}
			}
		}
	}

	parentPos := make([]int, len(items))
	for i := range items {
		parentPos[i] = -1
		if !hasParent[i] {
			continue
		}
		pos, ok := index[parentIDs[i]]
		if !ok {
			return nil, &DanglingParentError[K]{ID: ids[i], ParentID: parentIDs[i], Index: i}
		}
		parentPos[i] = pos
	}

	if cycle := findCycle(parentPos); cycle != nil {
		err := &CycleError[K]{IDs: make([]K, len(cycle)), Indexes: cycle}
		for i, pos := range cycle {
			err.IDs[i] = ids[pos]
		}
		return nil, err
	}

	nodes := make([]*Node[V], len(items))
	for i, item := range items {
		nodes[i] = New(item)
	}

	var roots []*Node[V]
	for i, n := range nodes {
		if parentPos[i] < 0 {
			roots = append(roots, n)
			continue
		}
		parent := nodes[parentPos[i]]
		parent.children = append(parent.children, n)
		n.parent = parent
	}
	return roots, nil
}

// findCycle walks each parent chain once and returns the positions of the
// first cycle found, ordered from child to parent, or nil.
func findCycle(parentPos []int) []int {
	const (
		unvisited = iota
		inPath
		done
	)
	state := make([]int, len(parentPos))

	for start := range parentPos {
		if state[start] != unvisited {
			continue
		}
		var path []int
		cur := start
		for cur >= 0 && state[cur] == unvisited {
			state[cur] = inPath
			path = append(path, cur)
			cur = parentPos[cur]
		}
		if cur >= 0 && state[cur] == inPath {
			for i, pos := range path {
				if pos == cur {
					return path[i:]
				}
			}
		}
		for _, pos := range path {
			state[pos] = done
		}
	}
	return nil
}

// Record is the flat form of one node: its id, its parent's id and its value.
type Record[V any, K comparable] struct {
	ID        K
	ParentID  K
	HasParent bool
	Value     V
}

// Flatten turns a forest back into flat records in pre-order, root by root.
// Feeding the result to BuildForest with matching extractors rebuilds an
// equivalent forest.
func Flatten[V any, K comparable](roots []*Node[V], idOf func(V) K) []Record[V, K] {
	var out []Record[V, K]
	for _, root := range roots {
		for n := range root.All() {
			rec := Record[V, K]{ID: idOf(n.value), Value: n.value}
			if n.parent != nil {
				rec.ParentID = idOf(n.parent.value)
				rec.HasParent = true
			}
			out = append(out, rec)
		}
	}
	return out
}
