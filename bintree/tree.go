package bintree

import (
	"fmt"

	"github.com/aglyzov/go-dfs/tagptr"
)

// Node is a binary tree node. A Node must belong to at most one tree at a
// time: each non-null side is an exclusive reference to that subtree.
type Node[T any] struct {
	val   T
	left  tagptr.Ptr[Node[T]]
	right tagptr.Ptr[Node[T]]
}

// NewNode returns a node with the given value and children. Either child
// may be nil. Ownership of both subtrees transfers to the node.
func NewNode[T any](val T, left, right *Node[T]) *Node[T] {
	return &Node[T]{
		val:   val,
		left:  tagptr.From(left),
		right: tagptr.From(right),
	}
}

// NewLeaf returns a node with the given value and no children.
func NewLeaf[T any](val T) *Node[T] {
	return NewNode[T](val, nil, nil)
}

// Value returns a mutable reference to the node's value.
func (n *Node[T]) Value() *T {
	return &n.val
}

// Left returns the left child, or nil. It must not be called while an
// iterator is live.
func (n *Node[T]) Left() *Node[T] {
	return n.left.Get()
}

// Right returns the right child, or nil. It must not be called while an
// iterator is live.
func (n *Node[T]) Right() *Node[T] {
	return n.right.Get()
}

// String renders the node as <bin|v:<value>|<left-flag><right-flag>>.
func (n *Node[T]) String() string {
	var flags [2]byte

	for i, side := range [2]tagptr.Ptr[Node[T]]{n.left, n.right} {
		flags[i] = '0'
		if side.IsSeen() {
			flags[i] = '1'
		}
	}

	return fmt.Sprintf("<bin|v:%v|%s>", n.val, flags)
}

// detach severs the node from everything it references.
func (n *Node[T]) detach() {
	n.left = tagptr.Null[Node[T]]()
	n.right = tagptr.Null[Node[T]]()
}

// Tree owns a binary tree of nodes. A Tree value must not be copied: it is
// the single exclusive owner of the whole reachable node graph.
type Tree[T any] struct {
	root *Node[T]
}

// New returns a tree rooted at root, which may be nil for an empty tree.
// Ownership of the root's subtree transfers to the tree.
func New[T any](root *Node[T]) *Tree[T] {
	return &Tree[T]{root: root}
}

// Empty reports whether the tree has no nodes.
func (t *Tree[T]) Empty() bool {
	return t.root == nil
}

// Root returns the root node, or nil. It must not be used to detach or
// re-attach subtrees while an iterator is live.
func (t *Tree[T]) Root() *Node[T] {
	return t.root
}

// Release detaches every reachable node, leaves first, and empties the
// tree. It returns the number of nodes detached. A node is never detached
// before all of its descendants have been.
//
// As in narytree, nodes hidden behind the back-links of an iterator that
// was abandoned without Close are not reached and not counted.
func (t *Tree[T]) Release() int {
	var (
		it    = nodeIter[T]{cur: t.root, returnAt: PostOrder}
		count int
	)

	for node := it.next(); node != nil; node = it.next() {
		node.detach()
		count++
	}
	t.root = nil

	return count
}
