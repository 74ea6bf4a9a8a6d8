package bintree

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// refOrder is an independent recursive reference traversal.
func refOrder(n *Node[int], order Order, out []int) []int {
	if n == nil {
		return out
	}

	switch order {
	case PreOrder:
		out = append(out, *n.Value())
		out = refOrder(n.Left(), order, out)
		out = refOrder(n.Right(), order, out)
	case InOrder:
		out = refOrder(n.Left(), order, out)
		out = append(out, *n.Value())
		out = refOrder(n.Right(), order, out)
	case PostOrder:
		out = refOrder(n.Left(), order, out)
		out = refOrder(n.Right(), order, out)
		out = append(out, *n.Value())
	}

	return out
}

func TestDFS_ThreeOrders(t *testing.T) {
	t.Parallel()

	for _, tcase := range []*struct {
		Name  string
		Order Order
		Exp   []int
	}{
		{"pre-order", PreOrder, []int{0, 1, 2, 3, 4, 5}},
		{"in-order", InOrder, []int{2, 1, 0, 4, 3, 5}},
		{"post-order", PostOrder, []int{2, 1, 4, 5, 3, 0}},
	} {
		tcase := tcase

		t.Run(tcase.Name, func(t *testing.T) {
			tr := scenarioTree()

			assert.Equal(t, tcase.Exp, collect(tr, tcase.Order))
			assert.Equal(t, tcase.Exp, refOrder(tr.Root(), tcase.Order, []int{}))
		})
	}
}

func TestDFS_EmptyTree(t *testing.T) {
	t.Parallel()

	tr := New[int](nil)

	for _, order := range []Order{PreOrder, InOrder, PostOrder} {
		assert.Empty(t, collect(tr, order))
	}
}

func TestDFS_SingleLeaf(t *testing.T) {
	t.Parallel()

	tr := New(NewLeaf(42))

	for _, order := range []Order{PreOrder, InOrder, PostOrder} {
		assert.Equal(t, []int{42}, collect(tr, order))
	}
}

func TestDFS_LeftOnlyAndRightOnly(t *testing.T) {
	t.Parallel()

	for _, tcase := range []*struct {
		Name  string
		Tree  func() *Tree[int]
		Order Order
		Exp   []int
	}{
		{"left-chain-pre", func() *Tree[int] {
			return New(NewNode(0, NewNode(1, NewLeaf(2), nil), nil))
		}, PreOrder, []int{0, 1, 2}},
		{"left-chain-in", func() *Tree[int] {
			return New(NewNode(0, NewNode(1, NewLeaf(2), nil), nil))
		}, InOrder, []int{2, 1, 0}},
		{"right-chain-pre", func() *Tree[int] {
			return New(NewNode(0, nil, NewNode(1, nil, NewLeaf(2))))
		}, PreOrder, []int{0, 1, 2}},
		{"right-chain-in", func() *Tree[int] {
			return New(NewNode(0, nil, NewNode(1, nil, NewLeaf(2))))
		}, InOrder, []int{0, 1, 2}},
	} {
		tcase := tcase

		t.Run(tcase.Name, func(t *testing.T) {
			tr := tcase.Tree()

			assert.Equal(t, tcase.Exp, collect(tr, tcase.Order))
		})
	}
}

func TestDFS_Reiterate(t *testing.T) {
	t.Parallel()

	tr := scenarioTree()

	for _, order := range []Order{PreOrder, InOrder, PostOrder} {
		first := collect(tr, order)
		second := collect(tr, order)

		assert.Equal(t, first, second, "exhaustion must restore the structure exactly")
	}
}

func TestDFS_Mutate(t *testing.T) {
	t.Parallel()

	tr := scenarioTree()

	tr.Walk(InOrder, func(v *int) bool {
		*v++
		return true
	})

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, collect(tr, PreOrder))
}

func TestDFS_StopAfterThreeAndRetraverse(t *testing.T) {
	t.Parallel()

	var (
		tr = scenarioTree()
		it = tr.DFS(PreOrder)
	)

	for _, exp := range []int{0, 1, 2} {
		val, ok := it.Next()

		require.True(t, ok)
		assert.Equal(t, exp, *val)
	}
	it.Close()

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, collect(tr, PreOrder))
}

func TestDFS_AbandonAnyPrefix(t *testing.T) {
	t.Parallel()

	tr := scenarioTree()

	for _, order := range []Order{PreOrder, InOrder, PostOrder} {
		var (
			order = order
			exp   = collect(tr, order)
		)

		for k := 0; k <= len(exp); k++ {
			k := k

			t.Run(fmt.Sprintf("order-%d-prefix-%d", order, k), func(t *testing.T) {
				it := tr.DFS(order)

				for i := 0; i < k; i++ {
					val, ok := it.Next()

					require.True(t, ok)
					assert.Equal(t, exp[i], *val, "prefix must match the full sequence")
				}
				it.Close()

				assert.Equal(t, exp, collect(tr, order), "closing after %d yields must restore the tree", k)
			})
		}
	}
}

func TestIter_CloseIsIdempotent(t *testing.T) {
	t.Parallel()

	var (
		tr = scenarioTree()
		it = tr.DFS(InOrder)
	)

	_, ok := it.Next()
	require.True(t, ok)

	it.Close()
	it.Close()

	_, ok = it.Next()
	assert.False(t, ok, "a closed iterator must stay exhausted")
}

func TestIter_RightSeenBeforeLeftPanics(t *testing.T) {
	t.Parallel()

	n := NewLeaf(0)
	n.right = n.right.Seen()

	it := New(n).DFS(PreOrder)

	assert.Panics(t, func() { it.Next() })
}

func TestIter_ExhaustionClearsAllFlags(t *testing.T) {
	t.Parallel()

	tr := scenarioTree()

	for _, order := range []Order{PreOrder, InOrder, PostOrder} {
		it := tr.DFS(order)
		for _, ok := it.Next(); ok; _, ok = it.Next() {
		}

		assertAtRest(t, tr.Root())
	}
}

// assertAtRest checks that no reachable slot carries a seen flag.
func assertAtRest(t *testing.T, n *Node[int]) {
	t.Helper()

	if n == nil {
		return
	}

	require.False(t, n.left.IsSeen(), "node %v left slot converted at rest", n)
	require.False(t, n.right.IsSeen(), "node %v right slot converted at rest", n)

	assertAtRest(t, n.Left())
	assertAtRest(t, n.Right())
}
