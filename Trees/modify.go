package Trees

import "golang.org/x/exp/constraints"

// Insert [Tree.Insert].
// v is attached as a new leaf. Inserting into an empty tree makes v the
// root. If the root is no longer balanced afterwards, the tree is rebuilt
// with Rebalance. Inserting a present value changes nothing and doesn't
// check the balance. Values that compare neither less nor greater than a
// node's value, like NaN, are treated as present.
// Time: O(D), O(n) when the balance check runs.
func (u *BSTree[T]) Insert(v T) bool {
	curPtr := &u.root
	for cur := *curPtr; cur != nil; cur = *curPtr {
		if v < cur.v {
			curPtr = &cur.l
		} else if v > cur.v {
			curPtr = &cur.r
		} else {
			return false
		}
	}
	*curPtr = &Node[T]{v: v}
	u.sz++
	if !u.IsBalanced() {
		u.Rebalance()
	}
	return true
}

// remove v from the subtree rooting at cur recursively, returning the new root
// of the subtree so the caller can relink it. A node with two children takes
// the value of its in-order successor, whose node is then removed from the
// right subtree instead.
// Time: O(D)
func remove[T constraints.Ordered](cur *Node[T], v T) (*Node[T], bool) {
	if cur == nil {
		return nil, false
	}
	deleted := false
	if v < cur.v {
		cur.l, deleted = remove(cur.l, v)
	} else if v > cur.v {
		cur.r, deleted = remove(cur.r, v)
	} else {
		if cur.l == nil {
			return cur.r, true
		} else if cur.r == nil {
			return cur.l, true
		}
		cur.v = cur.r.min().v
		cur.r, _ = remove(cur.r, cur.v)
		deleted = true
	}
	return cur, deleted
}

// Delete [Tree.Delete]. Recursive.
// Delete never rebalances the tree.
// Time: O(D)
func (u *BSTree[T]) Delete(v T) bool {
	var deleted bool
	if u.root, deleted = remove(u.root, v); deleted {
		u.sz--
	}
	return deleted
}
