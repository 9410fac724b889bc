package archive

import (
	"errors"
	"fmt"
	"io"

	"github.com/Stezok/huffcodec/internal/bitstream"
)

// encodeStream writes the code of every byte of r, then the end-of-stream
// code, and flushes w.
func encodeStream(r io.Reader, w *bitstream.Writer, table *LookupTable, bufferSize int) error {
	readBuffer := make([]byte, bufferSize)
	for {
		read, err := r.Read(readBuffer)
		for _, b := range readBuffer[:read] {
			code, ok := table.Code(Symbol(b))
			if !ok {
				return fmt.Errorf("%w: 0x%02x", ErrMissingCode, b)
			}
			if werr := w.WriteBits(code); werr != nil {
				return werr
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
	}

	code, ok := table.Code(EndOfStream)
	if !ok {
		return fmt.Errorf("%w: end of stream", ErrMissingCode)
	}
	if err := w.WriteBits(code); err != nil {
		return err
	}
	return w.Flush()
}
