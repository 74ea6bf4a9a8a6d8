// Package bintree implements a binary tree with a stackless depth-first
// iterator, the arity-2 case of package narytree written out with two named
// sides instead of a slot array.
//
// The two slots give a node exactly three visitation points, so the iterator
// supports all three classic orders: pre-order (before the left subtree),
// in-order (between the subtrees) and post-order (after both).
//
// The technique is the same slot-overloading as in narytree: while an
// iterator is live, the left and then the right slot of every node on the
// path to the root are converted into seen back-links, and ascending puts
// the real children back:
//
//	at rest      left converted    both converted     restored
//	[L R]     ->  [<p|1> R]     ->  [<p|1> <L|1>]  ->  [L R]
//
// See the narytree package comment for the ownership and restoration rules;
// they apply here unchanged.
package bintree
