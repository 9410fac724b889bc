package archive

import (
	"cmp"
	"slices"
)

// Node is a vertex of the code tree. A node with no children is a leaf:
// either a character leaf carrying Value, or the end-of-stream leaf. Inner
// nodes always have both children and own them exclusively.
type Node struct {
	Count       uint64
	Value       byte
	EndOfStream bool
	Left        *Node
	Right       *Node
}

func (node *Node) IsLeaf() bool {
	return node.Left == node.Right
}

// Symbol returns the lookup symbol of a leaf.
func (node *Node) Symbol() Symbol {
	if node.EndOfStream {
		return EndOfStream
	}
	return Symbol(node.Value)
}

// Leaves returns the number of leaves under node.
func (node *Node) Leaves() int {
	if node.IsLeaf() {
		return 1
	}
	return node.Left.Leaves() + node.Right.Leaves()
}

// BuildTree merges the two lightest nodes until one root remains.
//
// The working set is kept sorted by descending count with a stable sort and
// the two lightest nodes are taken from its tail: the last becomes the left
// child and the one before it the right child. The merged node is appended
// at the tail, so it sorts behind older nodes of equal count. Changing any
// of this changes the codes assigned to equally frequent bytes.
func BuildTree(counts [256]uint64) (*Node, error) {
	nodePool := make([]*Node, 0, len(counts))
	for i, count := range counts {
		if count != 0 {
			nodePool = append(nodePool, &Node{
				Count: count,
				Value: byte(i),
			})
		}
	}
	if len(nodePool) == 0 {
		return nil, ErrEmptyInput
	}

	for {
		slices.SortStableFunc(nodePool, func(a, b *Node) int {
			return cmp.Compare(b.Count, a.Count)
		})
		if len(nodePool) == 1 {
			return nodePool[0], nil
		}

		last := len(nodePool) - 1
		left, right := nodePool[last], nodePool[last-1]
		nodePool[last] = nil
		nodePool = nodePool[:last-1]
		nodePool = append(nodePool, &Node{
			Count: left.Count + right.Count,
			Left:  left,
			Right: right,
		})
	}
}
