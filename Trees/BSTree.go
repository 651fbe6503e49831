package Trees

import (
	"github.com/Osama3511/Binary-Search-Tree/Sets/OrderedSet"
	"golang.org/x/exp/constraints"
)

// BSTree is a binary search tree with no repeated values. Insert keeps it
// roughly balanced: whenever the heights of the two subtrees of the root
// differ by more than one after an insertion, the whole tree is rebuilt
// from its sorted values. Only the root is checked, so deeper subtrees can
// still be lopsided. Delete never rebuilds.
// The zero value is an empty tree ready to use.
type BSTree[T constraints.Ordered] struct {
	root *Node[T]
	sz   uint
}

// New returns an empty BSTree.
func New[T constraints.Ordered]() *BSTree[T] {
	return &BSTree[T]{}
}

// Build a BSTree from the values in sli, which needn't be sorted or distinct.
// sli isn't modified. Values not equal to themselves, like NaN, are skipped
// the same way Insert rejects them. The height of the result is floor(log2(n)) for n distinct
// values. The root of every subtree is the element at index len/2 of its
// sorted values.
// Time: O(n log n).
func Build[T constraints.Ordered](sli []T) *BSTree[T] {
	s := OrderedSet.From(sli).Sorted()
	return &BSTree[T]{build(s), uint(len(s))}
}

// build the subtree over the sorted, distinct values in s. Recursive.
func build[T any](s []T) *Node[T] {
	if len(s) > 0 {
		mid := len(s) >> 1
		return &Node[T]{s[mid], build(s[:mid]), build(s[mid+1:])}
	}
	return nil
}

// Size returns the number of values in the tree.
// Time: O(1); Space: O(1)
func (u *BSTree[T]) Size() uint {
	return u.sz
}

// Root of the tree, nil when the tree is empty.
func (u *BSTree[T]) Root() *Node[T] {
	return u.root
}

// Values in ascending order.
// Time: O(n); Space: O(n)
func (u *BSTree[T]) Values() []T {
	s := make([]T, 0, u.sz)
	inOrder(u.root, func(v T) {
		s = append(s, v)
	})
	return s
}

// IsBalanced reports whether the heights of the left and right subtrees of
// the root differ by at most one. Subtrees below the root's children aren't
// checked. An empty tree is balanced.
// Time: O(n)
func (u *BSTree[T]) IsBalanced() bool {
	if u.root == nil {
		return true
	}
	d := u.root.l.height() - u.root.r.height()
	return d >= -1 && d <= 1
}

// Rebalance rebuilds the tree from its in-order values, the same way Build does.
// Time: O(n); Space: O(n)
func (u *BSTree[T]) Rebalance() {
	s := u.Values()
	u.root, u.sz = build(s), uint(len(s))
}
