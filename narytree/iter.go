package narytree

import (
	"github.com/aglyzov/go-dfs/tagptr"
)

// Order selects the point in a node's visitation lifecycle at which the
// iterator yields it.
type Order int

const (
	// PreOrder yields a node on its first visit, before any child.
	PreOrder Order = iota
	// PostOrder yields a node after all of its children are finished.
	PostOrder
)

// nodeIter is the traversal engine. Its whole state is two node references:
// the stack lives in the tree's own child slots (see the package comment).
//
// returnAt is the visitation count at which a node is yielded: 0 yields on
// the first visit (pre-order), arity yields after the last child
// (post-order, leaves first). Intermediate values generalize cleanly but
// have no named order for arity > 2.
type nodeIter[T any] struct {
	prev, cur *Node[T]
	returnAt  int
}

// next advances the engine by zero or more steps until a node reaches its
// returnAt visitation count, and yields it. It returns nil once the
// traversal is exhausted; at that point every slot in the tree has been
// restored to its original untagged child reference.
func (it *nodeIter[T]) next() *Node[T] {
	for cur := it.cur; cur != nil; cur = it.cur {
		k := cur.firstUnseen()

		if k < len(cur.children) {
			// descend: convert slot k into a back-link and enter the
			// child it used to hold
			target := cur.children[k].Get()
			cur.children[k] = tagptr.From(it.prev).Seen()

			if target == nil {
				// an absent child counts as an already-finished subtree
				it.prev = nil
			} else {
				it.prev = cur
				it.cur = target
			}
		} else {
			it.ascend(cur, k)
		}

		if k == it.returnAt {
			return cur
		}
	}

	return nil
}

// ascend restores cur's child slots and moves the engine to cur's parent.
// k is the number of slots currently converted to back-links.
func (it *nodeIter[T]) ascend(cur *Node[T], k int) {
	if k == 0 {
		// no slot was ever converted (arity 0), so the previous node
		// is the parent
		it.cur = it.prev
		it.prev = cur
		return
	}

	// The parent reference was saved in slot 0 on the first descend.
	// Slot i's back-link was only needed to locate slot i+1's content,
	// so sliding each later back-link one slot down reconstructs the
	// real children; the last child rose to prev when its subtree
	// finished.
	parent := cur.children[0]
	for i := 0; i < k-1; i++ {
		cur.children[i] = cur.children[i+1].Unseen()
	}
	cur.children[k-1] = tagptr.From(it.prev)

	it.cur = parent.Get()
	it.prev = cur
}

// close ascends from wherever the traversal stopped up to the root without
// yielding, restoring every converted slot on the way.
func (it *nodeIter[T]) close() {
	for cur := it.cur; cur != nil; cur = it.cur {
		it.ascend(cur, cur.firstUnseen())
	}
}

// Iter is a mutable depth-first iterator over a tree.
//
// The iterator borrows the tree exclusively: it rewires node internals while
// it runs, so the tree must not be read, mutated or iterated again until the
// iterator is exhausted or closed. Close must be called if the iteration
// stops early; an abandoned iterator leaves the tree safe but partially
// unreachable (see the package comment).
type Iter[T any] struct {
	it nodeIter[T]
}

// DFS returns a depth-first iterator yielding mutable references to the
// node values in the given order.
func (t *Tree[T]) DFS(order Order) *Iter[T] {
	returnAt := 0
	if order == PostOrder {
		returnAt = t.arity
	}
	return &Iter[T]{nodeIter[T]{cur: t.root, returnAt: returnAt}}
}

// Next returns a mutable reference to the next value, or false when the
// traversal is exhausted. Exhaustion restores the tree exactly: values may
// have been mutated through the yielded references, structure has not.
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
