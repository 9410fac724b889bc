package archive

// InjectEndOfStream replaces the deepest leaf of the tree with an inner
// node holding a copy of that leaf on the left and the end-of-stream leaf
// on the right. The end-of-stream code is therefore one bit longer than the
// longest character code and no length field is needed in the stream.
//
// The encoder applies it after writing the header and the decoder after
// reading it, so both see the same tree. A single-leaf root is itself the
// deepest leaf and turns into an inner node.
func InjectEndOfStream(root *Node) {
	leaf, _ := findDeepest(root, 0)
	*leaf = Node{
		Count: leaf.Count,
		Left: &Node{
			Count: leaf.Count,
			Value: leaf.Value,
		},
		Right: &Node{EndOfStream: true},
	}
}

// findDeepest returns the deepest leaf under node and its depth. On equal
// depth the right subtree wins.
func findDeepest(node *Node, depth int) (*Node, int) {
	if node.IsLeaf() {
		return node, depth
	}

	left, depthLeft := findDeepest(node.Left, depth+1)
	right, depthRight := findDeepest(node.Right, depth+1)
	if depthRight >= depthLeft {
		return right, depthRight
	}
	return left, depthLeft
}
