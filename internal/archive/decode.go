package archive

import (
	"errors"
	"io"

	"github.com/Stezok/huffcodec/internal/bitstream"
)

// decodeStream walks the tree one bit at a time, writing a byte whenever it
// reaches a character leaf, until it reaches the end-of-stream leaf.
//
// If the bits run out while the walk rests on a character leaf, that byte
// is still written before ErrPrematureEOF is returned.
func decodeStream(r *bitstream.Reader, w io.ByteWriter, root *Node) error {
	current := root
	for !r.Empty() {
		if current.IsLeaf() {
			if current.EndOfStream {
				return nil
			}
			if err := w.WriteByte(current.Value); err != nil {
				return err
			}
			current = root
		}

		bit, err := r.ReadBit()
		if err != nil {
			return err
		}
		if bit {
			current = current.Right
		} else {
			current = current.Left
		}
	}

	if current.IsLeaf() {
		if current.EndOfStream {
			return nil
		}
		if err := w.WriteByte(current.Value); err != nil {
			return err
		}
	}
	return exhausted(r)
}

// exhausted reports why the reader became empty.
func exhausted(r *bitstream.Reader) error {
	_, err := r.ReadBit()
	if err == nil || errors.Is(err, bitstream.ErrExhausted) {
		return ErrPrematureEOF
	}
	return err
}
