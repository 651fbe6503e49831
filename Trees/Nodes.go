package Trees

// Node in a BSTree. Each node is owned by exactly one parent, or by the tree
// for the root. nil is the empty subtree.
type Node[T any] struct {
	v    T
	l, r *Node[T]
}

// Value held by n.
func (n *Node[T]) Value() T {
	return n.v
}

// Left child of n, nil if there's none.
func (n *Node[T]) Left() *Node[T] {
	return n.l
}

// Right child of n, nil if there's none.
func (n *Node[T]) Right() *Node[T] {
	return n.r
}

// IsLeaf reports whether n has no children.
func (n *Node[T]) IsLeaf() bool {
	return n.l == nil && n.r == nil
}

// height of the subtree rooting at n. nil has height -1. Recursive.
// Time: O(size of subtree)
func (n *Node[T]) height() int {
	if n == nil {
		return -1
	}
	return max(n.l.height(), n.r.height()) + 1
}

// min is the leftmost node of the non empty subtree rooting at n.
func (n *Node[T]) min() *Node[T] {
	for n.l != nil {
		n = n.l
	}
	return n
}

func (n *Node[T]) max() *Node[T] {
	for n.r != nil {
		n = n.r
	}
	return n
}
