package archive

import (
	"errors"
	"fmt"

	"github.com/Stezok/huffcodec/internal/bitstream"
)

// maxTreeDepth bounds header nesting. A tree over 256 byte values is at
// most 255 levels deep.
const maxTreeDepth = 257

// WriteTree serializes the tree in preorder: a 0 bit for an inner node
// followed by its left and right subtrees, a 1 bit for a character leaf
// followed by its value, most significant bit first. The end-of-stream leaf
// is never written.
func WriteTree(w *bitstream.Writer, node *Node) error {
	if node.IsLeaf() {
		if node.EndOfStream {
			return nil
		}
		if err := w.WriteBit(true); err != nil {
			return err
		}
		return w.WriteByte(node.Value)
	}

	if err := w.WriteBit(false); err != nil {
		return err
	}
	if err := WriteTree(w, node.Left); err != nil {
		return err
	}
	return WriteTree(w, node.Right)
}

// ReadTree rebuilds a tree written by WriteTree. Counts are not stored, so
// every node of the result has count 0.
func ReadTree(r *bitstream.Reader) (*Node, error) {
	return readTree(r, 0)
}

func readTree(r *bitstream.Reader, depth int) (*Node, error) {
	if depth > maxTreeDepth {
		return nil, fmt.Errorf("%w: nesting deeper than %d", ErrMalformedHeader, maxTreeDepth)
	}

	leaf, err := r.ReadBit()
	if err != nil {
		if errors.Is(err, bitstream.ErrExhausted) {
			return nil, ErrPrematureEOF
		}
		return nil, err
	}

	if leaf {
		value, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, bitstream.ErrExhausted) {
				return nil, errTruncatedLeaf
			}
			return nil, err
		}
		return &Node{Value: value}, nil
	}

	left, err := readTree(r, depth+1)
	if err != nil {
		return nil, err
	}
	right, err := readTree(r, depth+1)
	if err != nil {
		return nil, err
	}
	return &Node{Left: left, Right: right}, nil
}
