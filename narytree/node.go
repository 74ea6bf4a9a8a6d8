package narytree

import (
	"fmt"
	"strings"

	"github.com/hideo55/go-popcount"

	"github.com/aglyzov/go-dfs/tagptr"
)

// Node is a tree node with a value and exactly arity child slots.
//
// A Node must belong to at most one tree at a time: every non-null child slot
// is an exclusive reference to that child's subtree.
type Node[T any] struct {
	val      T
	children []tagptr.Ptr[Node[T]]
}

// NewNode returns a node with the given value and arity null child slots.
func NewNode[T any](arity int, val T) *Node[T] {
	if arity < 0 {
		panic("narytree: negative arity")
	}
	return &Node[T]{
		val:      val,
		children: make([]tagptr.Ptr[Node[T]], arity),
	}
}

// Arity returns the number of child slots.
func (n *Node[T]) Arity() int {
	return len(n.children)
}

// Value returns a mutable reference to the node's value.
func (n *Node[T]) Value() *T {
	return &n.val
}

// Child returns the child at the given slot, or nil. It must not be called
// while an iterator is live - a converted slot holds a back-link, not a
// child.
func (n *Node[T]) Child(idx int) *Node[T] {
	return n.children[idx].Get()
}

// SetChild places a child subtree into the given slot, transferring
// ownership of the subtree to n. The child may be nil.
func (n *Node[T]) SetChild(idx int, child *Node[T]) {
	n.children[idx] = tagptr.From(child)
}

// firstUnseen returns the index of the leftmost slot not marked seen,
// or arity if all slots are converted.
func (n *Node[T]) firstUnseen() int {
	for i, child := range n.children {
		if !child.IsSeen() {
			return i
		}
	}
	return len(n.children)
}

// seenCount returns the number of slots currently converted to back-links.
func (n *Node[T]) seenCount() int {
	var (
		count  uint64
		bitmap uint64
	)

	for i, child := range n.children {
		if child.IsSeen() {
			bitmap |= uint64(1) << (i % 64)
		}
		if i%64 == 63 {
			count += popcount.Count(bitmap)
			bitmap = 0
		}
	}

	return int(count + popcount.Count(bitmap))
}

// String renders the node as <nary|v:<value>|seen:<converted>/<arity>|...>
// where ... is one flag per slot.
func (n *Node[T]) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "<nary|v:%v|seen:%d/%d|", n.val, n.seenCount(), len(n.children))

	for _, child := range n.children {
		if child.IsSeen() {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	b.WriteByte('>')

	return b.String()
}

// detach severs the node from everything it references.
func (n *Node[T]) detach() {
	for i := range n.children {
		n.children[i] = tagptr.Null[Node[T]]()
	}
}
