package narytree

// Tree owns a fixed-arity tree of nodes. The arity is set once at
// construction and every node in the tree must have the same arity.
//
// A Tree value must not be copied: it is the single exclusive owner of the
// whole reachable node graph.
type Tree[T any] struct {
	arity int
	root  *Node[T]
}

// New returns a tree of the given arity rooted at root. The root may be nil
// for an empty tree. Ownership of the root's subtree transfers to the tree.
func New[T any](arity int, root *Node[T]) *Tree[T] {
	if arity < 0 {
		panic("narytree: negative arity")
	}
	if root != nil && root.Arity() != arity {
		panic("narytree: root arity does not match the tree")
	}
	return &Tree[T]{arity: arity, root: root}
}

// Arity returns the tree's fixed arity.
func (t *Tree[T]) Arity() int {
	return t.arity
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

// Release detaches every reachable node, leaves first, and empties the tree.
// It returns the number of nodes detached. A node is never detached before
// all of its descendants have been.
//
// If a previous iterator was abandoned without Close, the nodes hidden
// behind its unresolved back-links are unreachable and stay attached to each
// other; they are not detached and not counted.
func (t *Tree[T]) Release() int {
	var (
		it    = nodeIter[T]{cur: t.root, returnAt: t.arity}
		count int
	)

	for node := it.next(); node != nil; node = it.next() {
		node.detach()
		count++
	}
	t.root = nil

	return count
}
