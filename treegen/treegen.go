// Package treegen builds narytree fixtures deterministically from arbitrary
// byte streams, together with the pre-order value sequence the resulting
// tree must produce. It is a test-input generator: any byte slice maps to
// some valid tree, and equal inputs map to equal trees.
//
// It consumes only the public narytree API.
package treegen

import (
	"encoding/binary"
	"math"
	"sort"

	"github.com/aglyzov/go-dfs/narytree"
)

// Arity bounds for FromBytes.
const (
	MinArity = 2
	MaxArity = 8
)

// fenceSize is the width of one encoded split point.
const fenceSize = 2

// FromBytes derives an arity in [MinArity, MaxArity] from the first byte
// and builds a tree of that arity from the rest, as Build does.
func FromBytes(data []byte) (*narytree.Tree[byte], []byte) {
	if len(data) == 0 {
		return narytree.New[byte](MinArity, nil), nil
	}

	arity := int(data[0])%(MaxArity-MinArity+1) + MinArity

	return Build(arity, data[1:])
}

// Build builds a tree of the given arity from the byte stream and returns
// it along with the expected pre-order sequence of its node values.
//
// One byte becomes the node's value. The next arity-1 little-endian 16-bit
// words each encode a split point into the remaining bytes (modulo the
// remaining length); the sorted split points partition the remainder into
// arity sub-ranges, and each sub-range recursively builds one child, absent
// if the sub-range is empty. A node short of split-point bytes is a leaf.
//
// Build panics if the stream is too long for 16-bit split points.
func Build(arity int, data []byte) (*narytree.Tree[byte], []byte) {
	if arity < 1 {
		panic("treegen: arity must be at least 1")
	}
	if len(data) >= math.MaxUint16 {
		panic("treegen: input too long for 16-bit split points")
	}

	values := make([]byte, 0, len(data))
	root := buildNode(arity, data, &values)

	return narytree.New(arity, root), values
}

func buildNode(arity int, data []byte, values *[]byte) *narytree.Node[byte] {
	if len(data) == 0 {
		return nil
	}

	val, data := data[0], data[1:]
	*values = append(*values, val)
	node := narytree.NewNode(arity, val)

	numMid := (arity - 1) * fenceSize
	if len(data) < numMid {
		return node
	}

	mid, data := data[:numMid], data[numMid:]

	// arity+1 boundaries: a leading zero, arity-1 decoded split points
	// and the trailing length, with the decoded part kept sorted
	fences := make([]int, arity+1)
	for i := 0; i < arity-1; i++ {
		v := binary.LittleEndian.Uint16(mid[i*fenceSize:])
		fences[i+1] = int(v) % (len(data) + 1)
	}
	sort.Ints(fences[:arity])
	fences[arity] = len(data)

	for i := 0; i < arity; i++ {
		if child := buildNode(arity, data[fences[i]:fences[i+1]], values); child != nil {
			node.SetChild(i, child)
		}
	}

	return node
}
