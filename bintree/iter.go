package bintree

import (
	"github.com/aglyzov/go-dfs/tagptr"
)

// Order selects the point in a node's visitation lifecycle at which the
// iterator yields it.
type Order int

const (
	// PreOrder yields a node before its left subtree.
	PreOrder Order = iota
	// InOrder yields a node after its left subtree, before the right.
	InOrder
	// PostOrder yields a node after both subtrees.
	PostOrder
)

// nodeIter is the binary traversal engine, the two-sided rendition of the
// narytree engine. The per-node state is the pair of seen flags:
//
//	(unseen, unseen) - first visit, convert left, descend left
//	(seen,   unseen) - left finished, convert right, descend right
//	(seen,   seen)   - both finished, restore the slots, ascend
//	(unseen, seen)   - impossible, the right side is never entered first
type nodeIter[T any] struct {
	prev, cur *Node[T]
	returnAt  Order
}

func (it *nodeIter[T]) next() *Node[T] {
	for cur := it.cur; cur != nil; cur = it.cur {
		var at Order

		switch {
		case !cur.left.IsSeen() && !cur.right.IsSeen():
			at = PreOrder
			oldLeft := cur.left.Get()
			cur.left = tagptr.From(it.prev).Seen()

			if oldLeft == nil {
				// an absent left child counts as already finished
				it.prev = nil
			} else {
				it.prev = cur
				it.cur = oldLeft
			}

		case cur.left.IsSeen() && !cur.right.IsSeen():
			at = InOrder
			oldRight := cur.right.Get()
			cur.right = tagptr.From(it.prev).Seen()

			if oldRight == nil {
				it.prev = nil
			} else {
				it.prev = cur
				it.cur = oldRight
			}

		case !cur.left.IsSeen() && cur.right.IsSeen():
			panic("bintree: right side seen before left")

		default:
			at = PostOrder
			it.ascend(cur)
		}

		if at == it.returnAt {
			return cur
		}
	}

	return nil
}

// ascend restores cur's sides and moves the engine to cur's parent. The
// parent was saved in the left slot, the real left child in the right slot,
// and the real right child rose to prev when its subtree finished.
func (it *nodeIter[T]) ascend(cur *Node[T]) {
	parent := cur.left
	cur.left = cur.right.Unseen()
	cur.right = tagptr.From(it.prev)

	it.cur = parent.Get()
	it.prev = cur
}

// close ascends from wherever the traversal stopped up to the root without
// yielding, restoring every converted slot on the way.
func (it *nodeIter[T]) close() {
	for cur := it.cur; cur != nil; cur = it.cur {
		switch {
		case !cur.left.IsSeen():
			// nothing converted here yet, prev is the parent
			it.cur = it.prev
			it.prev = cur

		case !cur.right.IsSeen():
			// only the left slot was converted; its subtree rose to
			// prev, the parent was saved in the slot itself
			parent := cur.left
			cur.left = tagptr.From(it.prev)
			it.cur = parent.Get()
			it.prev = cur

		default:
			it.ascend(cur)
		}
	}
}

// Iter is a mutable depth-first iterator over a binary tree.
//
// The iterator borrows the tree exclusively: it rewires node internals
// while it runs, so the tree must not be read, mutated or iterated again
// until the iterator is exhausted or closed. Close must be called if the
// iteration stops early; an abandoned iterator leaves the tree safe but
// partially unreachable.
type Iter[T any] struct {
	it nodeIter[T]
}

// DFS returns a depth-first iterator yielding mutable references to the
// node values in the given order.
func (t *Tree[T]) DFS(order Order) *Iter[T] {
	return &Iter[T]{nodeIter[T]{cur: t.root, returnAt: order}}
}

// Next returns a mutable reference to the next value, or false when the
// traversal is exhausted. Exhaustion restores the tree exactly.
func (it *Iter[T]) Next() (*T, bool) {
	node := it.it.next()
	if node == nil {
		return nil, false
	}
	return &node.val, true
}

// Close restores the tree after a partial iteration by ascending to the
// root without yielding. It is a no-op on an exhausted or already closed
// iterator.
func (it *Iter[T]) Close() {
	it.it.close()
}

// Walk calls fn for every value in the given order until fn returns false.
// The tree is fully restored by the time Walk returns, even on early stop.
func (t *Tree[T]) Walk(order Order, fn func(*T) bool) {
	iter := t.DFS(order)
	defer iter.Close()

	for val, ok := iter.Next(); ok; val, ok = iter.Next() {
		if !fn(val) {
			return
		}
	}
}
