package OrderedSet

import (
	"github.com/google/btree"
	"golang.org/x/exp/constraints"
)

// degree of the underlying B-tree. 32 is the value google/btree suggests
// for in memory sets of small items.
const degree = 32

// OrderedSet is a set whose elements are kept in ascending order. It is
// backed by a B-tree.
// The zero value is not usable, create one with New or From.
type OrderedSet[E constraints.Ordered] struct {
	t *btree.BTreeG[E]
}

func less[E constraints.Ordered](a, b E) bool {
	return a < b
}

// New returns an empty set.
func New[E constraints.Ordered]() *OrderedSet[E] {
	return &OrderedSet[E]{btree.NewG[E](degree, less[E])}
}

// From returns a set holding the distinct elements of sli. sli isn't modified.
// Time: O(n log n)
func From[E constraints.Ordered](sli []E) *OrderedSet[E] {
	u := New[E]()
	for _, e := range sli {
		u.Put(e)
	}
	return u
}

// Put e into the set. Returns false if e was already present.
// Elements not equal to themselves, like NaN, are never put: they compare
// equal to everything and would replace an element in the B-tree.
func (u *OrderedSet[E]) Put(e E) bool {
	if e != e {
		return false
	}
	_, replaced := u.t.ReplaceOrInsert(e)
	return !replaced
}

func (u *OrderedSet[E]) Size() uint {
	return uint(u.t.Len())
}

// Sorted returns the elements in ascending order.
func (u *OrderedSet[E]) Sorted() []E {
	s := make([]E, 0, u.t.Len())
	u.t.Ascend(func(e E) bool {
		s = append(s, e)
		return true
	})
	return s
}
