// Package archive implements a per-file static Huffman coder.
//
// An archive is a bit stream made of the preorder code tree, the codes of
// the input bytes and the end-of-stream code, padded with zero bits to a
// whole byte. The end-of-stream symbol is never stored: both sides add it
// to the tree at the same place (see InjectEndOfStream). An empty input is
// archived as an empty file.
package archive

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Stezok/huffcodec/internal/bitstream"
)

const (
	DefaultBufferSize = 0x20000
	DefaultSuffix     = ".huff"
)

// Stats describes one compression or decompression.
type Stats struct {
	BytesIn  int64
	BytesOut int64
	// Symbols is the number of distinct byte values in the code tree.
	Symbols int
}

type Archiver struct {
	logger     *slog.Logger
	bufferSize int
	suffix     string
}

type Option func(*Archiver)

// WithBufferSize sets the read chunk size. Non-positive sizes are ignored.
func WithBufferSize(size int) Option {
	return func(arch *Archiver) {
		if size > 0 {
			arch.bufferSize = size
		}
	}
}

// WithSuffix sets the file name suffix used by CompressFile and
// DecompressFile. An empty suffix is ignored.
func WithSuffix(suffix string) Option {
	return func(arch *Archiver) {
		if suffix != "" {
			arch.suffix = suffix
		}
	}
}

// NewArchiver returns an Archiver logging to logger. A nil logger discards
// all records.
func NewArchiver(logger *slog.Logger, options ...Option) *Archiver {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	arch := &Archiver{
		logger:     logger,
		bufferSize: DefaultBufferSize,
		suffix:     DefaultSuffix,
	}
	for _, option := range options {
		option(arch)
	}
	return arch
}

func (arch *Archiver) Suffix() string {
	return arch.suffix
}

// Compress reads r twice, once to count bytes and once to encode them, and
// writes the archive to w.
func (arch *Archiver) Compress(r io.ReadSeeker, w io.Writer) (Stats, error) {
	var stats Stats

	counts, err := countOccurrences(r, arch.bufferSize)
	if err != nil {
		return stats, fmt.Errorf("counting bytes: %w", err)
	}
	for _, count := range counts {
		stats.BytesIn += int64(count)
	}

	tree, err := BuildTree(counts)
	if errors.Is(err, ErrEmptyInput) {
		arch.logger.Debug("empty input, writing empty archive")
		return stats, nil
	}
	if err != nil {
		return stats, err
	}
	stats.Symbols = tree.Leaves()

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return stats, fmt.Errorf("rewinding input: %w", err)
	}

	counter := &countingWriter{w: w}
	writer := bitstream.NewWriter(counter)
	if err := WriteTree(writer, tree); err != nil {
		return stats, fmt.Errorf("writing tree header: %w", err)
	}
	headerBits := writer.Written()

	InjectEndOfStream(tree)
	table := BuildLookup(tree)
	arch.logger.Debug("built code tree",
		"symbols", stats.Symbols,
		"header_bits", headerBits,
		"end_of_stream_code", table[EndOfStream].String(),
	)

	if err := encodeStream(r, writer, table, arch.bufferSize); err != nil {
		return stats, fmt.Errorf("encoding payload: %w", err)
	}
	stats.BytesOut = counter.n
	return stats, nil
}

// Decompress decodes the archive read from r into w. Bytes decoded before a
// failure, including a byte salvaged at the truncation point, have already
// been written to w when an error is returned.
func (arch *Archiver) Decompress(r io.Reader, w io.Writer) (Stats, error) {
	var stats Stats

	counter := &countingReader{r: r}
	reader := bitstream.NewReader(counter)
	if reader.Empty() {
		if _, err := reader.ReadBit(); err != nil && !errors.Is(err, bitstream.ErrExhausted) {
			return stats, fmt.Errorf("reading archive: %w", err)
		}
		arch.logger.Debug("empty archive, writing empty output")
		return stats, nil
	}

	tree, err := ReadTree(reader)
	if err != nil {
		return stats, fmt.Errorf("reading tree header: %w", err)
	}
	stats.Symbols = tree.Leaves()
	InjectEndOfStream(tree)

	output := &countingWriter{w: w}
	buffered := bufio.NewWriterSize(output, arch.bufferSize)
	err = decodeStream(reader, buffered, tree)
	if flushErr := buffered.Flush(); err == nil {
		err = flushErr
	}
	stats.BytesIn = counter.n
	stats.BytesOut = output.n
	if err != nil {
		if errors.Is(err, ErrPrematureEOF) {
			arch.logger.Warn("archive truncated", "bytes_decoded", stats.BytesOut)
		}
		return stats, fmt.Errorf("decoding payload: %w", err)
	}
	return stats, nil
}

// CompressFile writes the archive of path to path plus the suffix and
// returns the name of the archive.
func (arch *Archiver) CompressFile(path string) (string, error) {
	output := path + arch.suffix

	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	out, err := os.Create(output)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", output, err)
	}
	defer out.Close()

	stats, err := arch.Compress(file, out)
	if err != nil {
		return output, err
	}
	if err := out.Close(); err != nil {
		return output, fmt.Errorf("closing %s: %w", output, err)
	}
	arch.logger.Info("compressed",
		"input", path,
		"output", output,
		"bytes_in", stats.BytesIn,
		"bytes_out", stats.BytesOut,
	)
	return output, nil
}

// DecompressFile decodes path, which must end with the suffix, into the
// path without it. A truncated archive leaves the recovered prefix in the
// output file.
func (arch *Archiver) DecompressFile(path string) (string, error) {
	output, ok := strings.CutSuffix(path, arch.suffix)
	if !ok || output == "" {
		return "", fmt.Errorf("%w %q: %s", ErrMissingSuffix, arch.suffix, path)
	}

	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	out, err := os.Create(output)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", output, err)
	}
	defer out.Close()

	stats, err := arch.Decompress(file, out)
	if err != nil {
		return output, err
	}
	if err := out.Close(); err != nil {
		return output, fmt.Errorf("closing %s: %w", output, err)
	}
	arch.logger.Info("decompressed",
		"input", path,
		"output", output,
		"bytes_in", stats.BytesIn,
		"bytes_out", stats.BytesOut,
	)
	return output, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

type countingReader struct {
	r io.Reader
	n int64
}

func (cr *countingReader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	cr.n += int64(n)
	return n, err
}
