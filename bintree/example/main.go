package main

import (
	"fmt"

	"github.com/aglyzov/go-dfs/bintree"
)

func main() {
	//        0
	//       / \
	//      1   3
	//     /   / \
	//    2   4   5
	tree := bintree.New(bintree.NewNode(0,
		bintree.NewNode(1, bintree.NewLeaf(2), nil),
		bintree.NewNode(3, bintree.NewLeaf(4), bintree.NewLeaf(5)),
	))

	fmt.Println("pre-order, first three values only:")

	iter := tree.DFS(bintree.PreOrder)
	for i := 0; i < 3; i++ {
		if val, ok := iter.Next(); ok {
			fmt.Println(*val)
		}
	}
	iter.Close() // restores the tree after the partial walk

	for _, order := range []struct {
		name string
		ord  bintree.Order
	}{
		{"pre-order", bintree.PreOrder},
		{"in-order", bintree.InOrder},
		{"post-order", bintree.PostOrder},
	} {
		fmt.Printf("%s: ", order.name)
		tree.Walk(order.ord, func(v *int) bool {
			fmt.Printf("%d ", *v)
			return true
		})
		fmt.Println()
	}

	fmt.Println("released:", tree.Release(), "nodes")
}
