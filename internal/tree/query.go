package tree

import (
	"iter"
	"slices"
)

// Root walks the parent chain and returns its last node.
func (n *Node[T]) Root() *Node[T] {
	cur := n
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}

// Level returns the number of ancestors. Roots are at level 0.
func (n *Node[T]) Level() int {
	level := 0
	for cur := n.parent; cur != nil; cur = cur.parent {
		level++
	}
	return level
}

// Children returns a copy of the child list in sibling order.
func (n *Node[T]) Children() []*Node[T] {
	return slices.Clone(n.children)
}

// Ancestors returns the parent chain, nearest first.
func (n *Node[T]) Ancestors() []*Node[T] {
	var out []*Node[T]
	for cur := n.parent; cur != nil; cur = cur.parent {
		out = append(out, cur)
	}
	return out
}

// SelfAndAncestors returns the receiver followed by Ancestors.
func (n *Node[T]) SelfAndAncestors() []*Node[T] {
	return append([]*Node[T]{n}, n.Ancestors()...)
}

// Path returns the nodes from the root down to the receiver.
func (n *Node[T]) Path() []*Node[T] {
	path := n.SelfAndAncestors()
	slices.Reverse(path)
	return path
}

// All yields the receiver and its descendants in pre-order. The tree must not
// be mutated while iterating.
func (n *Node[T]) All() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		stack := []*Node[T]{n}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(cur) {
				return
			}
			// Push in reverse so the first child is popped next.
			for i := len(cur.children) - 1; i >= 0; i-- {
				stack = append(stack, cur.children[i])
			}
		}
	}
}

// Walk calls fn for the receiver and each descendant in pre-order until fn
// returns false.
func (n *Node[T]) Walk(fn func(*Node[T]) bool) {
	for cur := range n.All() {
		if !fn(cur) {
			return
		}
	}
}

// SelfAndDescendants returns the receiver and its whole subtree in pre-order.
func (n *Node[T]) SelfAndDescendants() []*Node[T] {
	return slices.Collect(n.All())
}

// Descendants returns the subtree below the receiver in pre-order.
func (n *Node[T]) Descendants() []*Node[T] {
	all := n.SelfAndDescendants()
	return all[1:]
}

// Size counts the receiver and all its descendants.
func (n *Node[T]) Size() int {
	size := 0
	for range n.All() {
		size++
	}
	return size
}

// Height returns the depth of the deepest descendant relative to the
// receiver. A leaf has height 0.
func (n *Node[T]) Height() int {
	type frame struct {
		node  *Node[T]
		depth int
	}
	height := 0
	stack := []frame{{n, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		height = max(height, f.depth)
		for _, c := range f.node.children {
			stack = append(stack, frame{c, f.depth + 1})
		}
	}
	return height
}

// Siblings returns the other children of the receiver's parent. A root has
// no siblings.
func (n *Node[T]) Siblings() []*Node[T] {
	if n.parent == nil {
		return nil
	}
	out := make([]*Node[T], 0, len(n.parent.children)-1)
	for _, c := range n.parent.children {
		if c != n {
			out = append(out, c)
		}
	}
	return out
}

// SelfAndSiblings returns the parent's children, or just the receiver when
// it is a root.
func (n *Node[T]) SelfAndSiblings() []*Node[T] {
	if n.parent == nil {
		return []*Node[T]{n}
	}
	return slices.Clone(n.parent.children)
}

// NodesAtLevel returns every node at the given level of the whole tree that
// contains the receiver, in pre-order. Levels are counted from Root.
func (n *Node[T]) NodesAtLevel(level int) []*Node[T] {
	if level < 0 {
		return nil
	}
	type frame struct {
		node  *Node[T]
		level int
	}
	var out []*Node[T]
	stack := []frame{{n.Root(), 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.level == level {
			out = append(out, f.node)
			continue
		}
		for i := len(f.node.children) - 1; i >= 0; i-- {
			stack = append(stack, frame{f.node.children[i], f.level + 1})
		}
	}
	return out
}
