package tree

import (
	"fmt"
	"slices"
)

// Node is a single element of a hierarchy. It holds a caller-supplied value,
// owns an ordered list of children and points back at its parent.
type Node[T any] struct {
	// value is opaque to the tree.
	value T
	// parent is nil iff the node is a root.
	parent *Node[T]
	// children is kept in sibling order.
	children []*Node[T]
}

// New creates a detached root node holding value.
func New[T any](value T) *Node[T] {
	return &Node[T]{value: value}
}

// Value returns the payload.
func (n *Node[T]) Value() T {
	return n.value
}

// SetValue replaces the payload. The structure is not affected.
func (n *Node[T]) SetValue(value T) {
	n.value = value
}

// Parent returns the parent node, or nil for a root.
func (n *Node[T]) Parent() *Node[T] {
	return n.parent
}

// IsRoot reports whether the node has no parent.
func (n *Node[T]) IsRoot() bool {
	return n.parent == nil
}

// IsLeaf reports whether the node has no children.
func (n *Node[T]) IsLeaf() bool {
	return len(n.children) == 0
}

// Add appends child to the end of the child list and returns it.
func (n *Node[T]) Add(child *Node[T]) (*Node[T], error) {
	return n.AddAt(len(n.children), child)
}

// AddAt inserts child at position index. index may equal the current number
// of children, which appends. The call fails without changing either node
// when index is out of range, when child is the receiver or one of its
// ancestors, or when child already has a parent.
func (n *Node[T]) AddAt(index int, child *Node[T]) (*Node[T], error) {
	if child == nil {
		return nil, ErrNilNode
	}
	if index < 0 || index > len(n.children) {
		return nil, fmt.Errorf("%w: %d not in [0, %d]", ErrIndexOutOfRange, index, len(n.children))
	}
	if n.hasSelfOrAncestor(child) {
		return nil, ErrCircularReference
	}
	if child.parent != nil {
		return nil, ErrParentAlreadyAssigned
	}

	n.children = slices.Insert(n.children, index, child)
	child.parent = n
	return child, nil
}

// AddValue wraps value in a new node and appends it as the last child.
func (n *Node[T]) AddValue(value T) *Node[T] {
	child := New(value)
	n.children = append(n.children, child)
	child.parent = n
	return child
}

// AddValueAt wraps value in a new node and inserts it at position index.
func (n *Node[T]) AddValueAt(index int, value T) (*Node[T], error) {
	return n.AddAt(index, New(value))
}

// AddFirstChild inserts child before all existing children.
func (n *Node[T]) AddFirstChild(child *Node[T]) (*Node[T], error) {
	return n.AddAt(0, child)
}

// AddFirstChildValue wraps value in a new node and makes it the first child.
func (n *Node[T]) AddFirstChildValue(value T) *Node[T] {
	child := New(value)
	n.children = slices.Insert(n.children, 0, child)
	child.parent = n
	return child
}

// AddFirstSibling inserts sibling as the first child of the receiver's parent.
// It fails with ErrNoParent on a root.
func (n *Node[T]) AddFirstSibling(sibling *Node[T]) (*Node[T], error) {
	if n.parent == nil {
		return nil, ErrNoParent
	}
	return n.parent.AddFirstChild(sibling)
}

// AddFirstSiblingValue is AddFirstSibling for a new node holding value.
func (n *Node[T]) AddFirstSiblingValue(value T) (*Node[T], error) {
	return n.AddFirstSibling(New(value))
}

// AddLastSibling appends sibling to the receiver's parent.
// It fails with ErrNoParent on a root.
func (n *Node[T]) AddLastSibling(sibling *Node[T]) (*Node[T], error) {
	if n.parent == nil {
		return nil, ErrNoParent
	}
	return n.parent.Add(sibling)
}

// AddLastSiblingValue is AddLastSibling for a new node holding value.
func (n *Node[T]) AddLastSiblingValue(value T) (*Node[T], error) {
	return n.AddLastSibling(New(value))
}

// AddParent makes parent the new parent of the receiver by appending the
// receiver to parent's children. The receiver must be a root.
func (n *Node[T]) AddParent(parent *Node[T]) (*Node[T], error) {
	if parent == nil {
		return nil, ErrNilNode
	}
	if n.parent != nil {
		return nil, ErrParentAlreadyAssigned
	}
	if _, err := parent.Add(n); err != nil {
		return nil, err
	}
	return parent, nil
}

// AddParentValue wraps value in a new node and makes it the receiver's parent.
func (n *Node[T]) AddParentValue(value T) (*Node[T], error) {
	return n.AddParent(New(value))
}

// Disconnect detaches the node from its parent. The node keeps its children
// and becomes a root.
func (n *Node[T]) Disconnect() error {
	if n.parent == nil {
		return ErrCannotDisconnectRoot
	}

	siblings := n.parent.children
	idx := slices.Index(siblings, n)
	if idx < 0 {
		// parent and child lists disagree; only reachable through a bug in this package.
		panic("tree: node missing from its parent's children")
	}
	n.parent.children = slices.Delete(siblings, idx, idx+1)
	n.parent = nil
	return nil
}

// hasSelfOrAncestor reports whether candidate is the receiver or lies on its
// parent chain, which includes the receiver's root.
func (n *Node[T]) hasSelfOrAncestor(candidate *Node[T]) bool {
	for cur := n; cur != nil; cur = cur.parent {
		if cur == candidate {
			return true
		}
	}
	return false
}

// ValueEqual compares the payloads of two nodes with eq. It never looks at
// structure; use == for node identity.
func ValueEqual[T any](a, b *Node[T], eq func(x, y T) bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	return eq(a.value, b.value)
}
