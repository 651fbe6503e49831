package Trees

import (
	"github.com/Osama3511/Binary-Search-Tree/Queues"
	"github.com/pkg/errors"
)

// ErrNilVisitor is returned by the traversals when called with a nil visitor.
var ErrNilVisitor = errors.New("Trees: visitor callback is required")

// LevelOrder [Tree.LevelOrder]
// f gets each node once. The tree mustn't be modified during the traversal.
// Time: O(n); Space: O(width of the tree)
func (u *BSTree[T]) LevelOrder(f func(*Node[T])) error {
	if f == nil {
		return errors.WithStack(ErrNilVisitor)
	}
	if u.root == nil {
		return nil
	}
	q := Queues.MakeArrayQueue[*Node[T]](u.sz>>1 + 1)
	for q.Push(u.root); !q.Empty(); {
		cur, _ := q.Pop()
		f(cur)
		if cur.l != nil {
			q.Push(cur.l)
		}
		if cur.r != nil {
			q.Push(cur.r)
		}
	}
	return nil
}

// InOrder [Tree.InOrder]. Recursive.
// Time: O(n); Space: O(D)
func (u *BSTree[T]) InOrder(f func(T)) error {
	if f == nil {
		return errors.WithStack(ErrNilVisitor)
	}
	inOrder(u.root, f)
	return nil
}

// PreOrder [Tree.PreOrder]. Recursive.
// Time: O(n); Space: O(D)
func (u *BSTree[T]) PreOrder(f func(T)) error {
	if f == nil {
		return errors.WithStack(ErrNilVisitor)
	}
	preOrder(u.root, f)
	return nil
}

// PostOrder [Tree.PostOrder]. Recursive.
// Time: O(n); Space: O(D)
func (u *BSTree[T]) PostOrder(f func(T)) error {
	if f == nil {
		return errors.WithStack(ErrNilVisitor)
	}
	postOrder(u.root, f)
	return nil
}

func inOrder[T any](n *Node[T], f func(T)) {
	if n != nil {
		inOrder(n.l, f)
		f(n.v)
		inOrder(n.r, f)
	}
}

func preOrder[T any](n *Node[T], f func(T)) {
	if n != nil {
		f(n.v)
		preOrder(n.l, f)
		preOrder(n.r, f)
	}
}

func postOrder[T any](n *Node[T], f func(T)) {
	if n != nil {
		postOrder(n.l, f)
		postOrder(n.r, f)
		f(n.v)
	}
}
