// Package narytree implements a fixed-arity tree with a depth-first iterator
// that needs no stack: the traversal threads itself through the tree's own
// child slots, using constant auxiliary space.
//
// Every node holds exactly arity child slots, each a tagptr.Ptr carrying one
// "seen" flag. A slot is overloaded to hold either structure or traversal
// bookkeeping:
//
//	<child|0>  - an owned child subtree (or null), not visited yet
//	<back|1>   - a back-link to the node to return to, child identity
//	             temporarily displaced into the slots to its right
//
// At rest every slot is an unseen owned child. While an iterator is live,
// exactly the slots along the path from the current node up to the root hold
// seen back-links. Descending into slot k saves the previous node there;
// ascending recovers the parent from slot 0 and slides the remaining
// back-links one slot down, which puts every real child back in place:
//
//	       descend k=1                 ascend
//	[a b c] --------------> [<p|1> b c] ------> [a b c]
//	                          back-link         restored
//
// Driving an iterator to exhaustion, or closing it early, restores the tree
// exactly. Abandoning an iterator without Close is safe but leaves back-links
// behind: a later Release cannot reach the nodes hidden inside the unresolved
// chain, so they are simply never detached.
//
// A tree and its iterator form a single logical resource. At most one live
// iterator may exist per tree, there is no locking, and concurrent use of the
// same tree is not safe.
package narytree
