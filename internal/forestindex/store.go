package forestindex

import (
	"fmt"

	"github.com/specialistvlad/treegrid/internal/tree"
)

// Store maps ids to the nodes of a forest. It is filled once by New and
// never changes afterwards.
type Store[K comparable, V any] struct {
	roots []*tree.Node[V]
	nodes map[K]*tree.Node[V]
	order []K // pre-order across roots
}

// New indexes every node reachable from roots. It fails if two nodes share
// an id.
func New[K comparable, V any](roots []*tree.Node[V], idOf func(V) K) (*Store[K, V], error) {
	s := &Store[K, V]{
		roots: append([]*tree.Node[V](nil), roots...),
		nodes: make(map[K]*tree.Node[V]),
	}
	for _, root := range roots {
		for n := range root.All() {
			id := idOf(n.Value())
			if _, exists := s.nodes[id]; exists {
				return nil, fmt.Errorf("node id '%v' is indexed twice", id)
			}
			s.nodes[id] = n
			s.order = append(s.order, id)
		}
	}
	return s, nil
}

// Get retrieves a node by id.
func (s *Store[K, V]) Get(id K) (*tree.Node[V], bool) {
	n, ok := s.nodes[id]
	return n, ok
}

// MustGet is Get that returns an error naming the missing id.
func (s *Store[K, V]) MustGet(id K) (*tree.Node[V], error) {
	n, ok := s.Get(id)
	if !ok {
		return nil, fmt.Errorf("node '%v' not found in forest", id)
	}
	return n, nil
}

// Roots returns the indexed roots in their original order.
func (s *Store[K, V]) Roots() []*tree.Node[V] {
	return append([]*tree.Node[V](nil), s.roots...)
}

// IDs returns every indexed id, in pre-order root by root.
func (s *Store[K, V]) IDs() []K {
	return append([]K(nil), s.order...)
}

// Len returns the number of indexed nodes.
func (s *Store[K, V]) Len() int {
	return len(s.nodes)
}
