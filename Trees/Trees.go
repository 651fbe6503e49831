package Trees

// Tree represents a binary search tree over unique values, where values
// act as their own keys.
// Operations on absent values don't fail: they return false, nil, or
// leave the tree untouched. The only error is ErrNilVisitor, returned by
// the traversals when no visitor is given. Methods implemented recursively
// are noted, otherwise they are implemented iteratively.
// Implementations aren't safe for concurrent use.
type Tree[T any] interface {
	//Insert v to the Tree. Returning true if a node was created, false
	//if v was already present.
	Insert(v T) bool
	//Delete v from the Tree. Returning true if a node was removed, false
	//if v wasn't present.
	Delete(v T) bool
	//Find the node holding v, nil if there's none.
	Find(v T) *Node[T]
	//Has element v.
	Has(v T) bool
	//Size of the tree.
	Size() uint
	//Minimum element of the tree. The second return value is false if the
	//tree is empty.
	Minimum() (T, bool)
	//Maximum element of the tree. The second return value is false if the
	//tree is empty.
	Maximum() (T, bool)
	//LevelOrder visits the nodes breadth first, left child before right child.
	LevelOrder(f func(*Node[T])) error
	//InOrder visits the values in ascending order.
	InOrder(f func(T)) error
	//PreOrder visits a value before the values of its subtrees.
	PreOrder(f func(T)) error
	//PostOrder visits a value after the values of its subtrees.
	PostOrder(f func(T)) error
	//Height of the subtree rooted at n. An empty subtree has height -1, a leaf 0.
	Height(n *Node[T]) int
	//Depth of the node holding the value of n, counted in edges from the root.
	//The second return value is false if no such node is in the tree.
	Depth(n *Node[T]) (int, bool)
}
