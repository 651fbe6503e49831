package Trees

import (
	"fmt"
	"io"
	"strings"
)

// printer writes the tree sideways, remembering the first write error.
type printer[T any] struct {
	w   io.Writer
	err error
}

// print the subtree rooting at n. The right subtree goes above n and the
// left subtree below, both indented one level deeper. Recursive.
func (p *printer[T]) print(n *Node[T], prefix string, isLeft bool) {
	if n == nil || p.err != nil {
		return
	}
	if n.r != nil {
		if isLeft {
			p.print(n.r, prefix+"│   ", false)
		} else {
			p.print(n.r, prefix+"    ", false)
		}
	}
	if p.err == nil {
		if isLeft {
			_, p.err = fmt.Fprintf(p.w, "%s└── %v\n", prefix, n.v)
		} else {
			_, p.err = fmt.Fprintf(p.w, "%s┌── %v\n", prefix, n.v)
		}
	}
	if n.l != nil {
		if isLeft {
			p.print(n.l, prefix+"    ", true)
		} else {
			p.print(n.l, prefix+"│   ", true)
		}
	}
}

// PrettyPrint writes a drawing of the tree to w, one value per line, with
// the root on the left and larger values on top. Nothing is written for an
// empty tree.
func (u *BSTree[T]) PrettyPrint(w io.Writer) error {
	p := printer[T]{w: w}
	p.print(u.root, "", true)
	return p.err
}

func (u *BSTree[T]) String() string {
	var b strings.Builder
	_ = u.PrettyPrint(&b)
	return b.String()
}
