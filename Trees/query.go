package Trees

// Find [Tree.Find]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Find(v T) *Node[T] {
	for cur := u.root; cur != nil; {
		if v < cur.v {
			cur = cur.l
		} else if v > cur.v {
			cur = cur.r
		} else {
			return cur
		}
	}
	return nil
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Has(v T) bool {
	return u.Find(v) != nil
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Minimum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return u.root.min().v, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Maximum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return u.root.max().v, true
}

// Height [Tree.Height]. Recursive.
// n needn't belong to u.
// Time: O(size of subtree)
func (u *BSTree[T]) Height(n *Node[T]) int {
	return n.height()
}

// TreeHeight is the height of the root, -1 for an empty tree.
func (u *BSTree[T]) TreeHeight() int {
	return u.root.height()
}

// Depth [Tree.Depth]
// Only the value of n is used: the walk from the root compares it against
// each visited node and stops at the first equal value. Returns (0, false)
// when n is nil or its value isn't in the tree.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Depth(n *Node[T]) (int, bool) {
	if n == nil {
		return 0, false
	}
	d := 0
	for cur := u.root; cur != nil; d++ {
		if n.v < cur.v {
			cur = cur.l
		} else if n.v > cur.v {
			cur = cur.r
		} else {
			return d, true
		}
	}
	return 0, false
}
