// Package bitstream provides the bit sink and bit source used by the
// Huffman codec. Bits are packed most-significant first; the final partial
// byte of a stream is padded with zeros on Flush.
package bitstream

import (
	"errors"
	"io"

	"github.com/icza/bitio"
)

// ErrExhausted is returned when a read needs more bits than remain in the
// underlying byte source.
var ErrExhausted = errors.New("bit source exhausted")

// Writer buffers bits and writes them to an underlying io.Writer.
type Writer struct {
	w       *bitio.Writer
	written uint64
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bitio.NewWriter(w)}
}

func (w *Writer) WriteBit(bit bool) error {
	if err := w.w.WriteBool(bit); err != nil {
		return err
	}
	w.written++
	return nil
}

// WriteBits appends bits in order.
func (w *Writer) WriteBits(bits []bool) error {
	for _, bit := range bits {
		if err := w.WriteBit(bit); err != nil {
			return err
		}
	}
	return nil
}

// WriteByte appends the 8 bits of b, most significant first.
func (w *Writer) WriteByte(b byte) error {
	if err := w.w.WriteBits(uint64(b), 8); err != nil {
		return err
	}
	w.written += 8
	return nil
}

// Written returns the number of bits appended so far, excluding padding.
func (w *Writer) Written() uint64 {
	return w.written
}

// Flush pads the last partial byte with zero bits and flushes everything
// to the underlying writer. The writer must not be used afterwards.
func (w *Writer) Flush() error {
	return w.w.Close()
}

// Reader reads bits from an underlying io.Reader. It keeps one bit of
// lookahead so that Empty can answer without consuming input.
type Reader struct {
	r      *bitio.Reader
	peeked bool
	next   bool
	err    error
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: bitio.NewReader(r)}
}

// Empty reports whether no further bits can be read. A read error other
// than end of input also makes the reader empty; the error is returned by
// the next ReadBit.
func (r *Reader) Empty() bool {
	r.fill()
	return !r.peeked
}

func (r *Reader) fill() {
	if r.peeked || r.err != nil {
		return
	}
	bit, err := r.r.ReadBool()
	if err != nil {
		r.err = translate(err)
		return
	}
	r.next, r.peeked = bit, true
}

func (r *Reader) ReadBit() (bool, error) {
	r.fill()
	if !r.peeked {
		return false, r.err
	}
	r.peeked = false
	return r.next, nil
}

// ReadBits reads n bits (n <= 64) and returns them as the low bits of the
// result, first bit read in the most significant position. It fails with
// ErrExhausted if fewer than n bits remain.
func (r *Reader) ReadBits(n uint8) (uint64, error) {
	if n == 0 {
		return 0, nil
	}
	var value uint64
	if r.peeked {
		r.peeked = false
		if r.next {
			value = 1
		}
		n--
		if n == 0 {
			return value, nil
		}
	} else if r.err != nil {
		return 0, r.err
	}
	rest, err := r.r.ReadBits(n)
	if err != nil {
		r.err = translate(err)
		return 0, r.err
	}
	return value<<n | rest, nil
}

func (r *Reader) ReadByte() (byte, error) {
	value, err := r.ReadBits(8)
	return byte(value), err
}

func translate(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrExhausted
	}
	return err
}
