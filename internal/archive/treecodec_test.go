package archive

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Stezok/huffcodec/internal/bitstream"
)

func writeHeader(t *testing.T, tree *Node) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := bitstream.NewWriter(&buf)
	require.NoError(t, WriteTree(w, tree))
	require.NoError(t, w.Flush())
	return buf.Bytes()
}

// requireSameShape compares tree shape and leaf symbols, ignoring counts.
func requireSameShape(t *testing.T, want, got *Node) {
	t.Helper()
	require.Equal(t, want.IsLeaf(), got.IsLeaf())
	if want.IsLeaf() {
		require.Equal(t, want.Symbol(), got.Symbol())
		return
	}
	requireSameShape(t, want.Left, got.Left)
	requireSameShape(t, want.Right, got.Right)
}

func TestWriteTreeLayout(t *testing.T) {
	tree, err := BuildTree(countsOf([]byte("AAAAABBBCC")))
	require.NoError(t, err)

	// 0 0 1'C' 1'B' 1'A', 29 bits plus 3 bits of padding.
	require.Equal(t, []byte{0x28, 0x74, 0x2A, 0x08}, writeHeader(t, tree))
}

func TestWriteTreeSkipsEndOfStream(t *testing.T) {
	tree, err := BuildTree(countsOf([]byte("AAAAABBBCC")))
	require.NoError(t, err)
	before := writeHeader(t, tree)

	InjectEndOfStream(tree)
	after := writeHeader(t, tree)

	// The duplicated leaf adds one inner flag and one leaf, but the
	// end-of-stream leaf itself is silent.
	require.NotEqual(t, before, after)
	var buf bytes.Buffer
	w := bitstream.NewWriter(&buf)
	require.NoError(t, WriteTree(w, &Node{EndOfStream: true}))
	require.Zero(t, w.Written())
}

func TestReadTreeRoundTrip(t *testing.T) {
	for _, input := range []string{
		"A",
		"AAAAABBBCC",
		"the quick brown fox jumps over the lazy dog",
		string(allBytes()),
	} {
		tree, err := BuildTree(countsOf([]byte(input)))
		require.NoError(t, err)

		got, err := ReadTree(bitstream.NewReader(bytes.NewReader(writeHeader(t, tree))))
		require.NoError(t, err)
		requireSameShape(t, tree, got)
		require.Zero(t, got.Count)
	}
}

func TestReadTreeEmpty(t *testing.T) {
	_, err := ReadTree(bitstream.NewReader(bytes.NewReader(nil)))
	require.ErrorIs(t, err, ErrPrematureEOF)
}

func TestReadTreeTruncatedInnerNode(t *testing.T) {
	// An inner flag followed by one complete leaf and nothing else would
	// need a second subtree: 0 1'A' then padding zeros are read as inner
	// flags until the bits run out.
	var buf bytes.Buffer
	w := bitstream.NewWriter(&buf)
	require.NoError(t, w.WriteBit(false))
	require.NoError(t, w.WriteBit(true))
	require.NoError(t, w.WriteByte('A'))
	require.NoError(t, w.Flush())

	_, err := ReadTree(bitstream.NewReader(bytes.NewReader(buf.Bytes())))
	require.ErrorIs(t, err, ErrPrematureEOF)
	require.NotErrorIs(t, err, ErrMalformedHeader)
}

func TestReadTreeTruncatedLeafValue(t *testing.T) {
	// 1 followed by only seven bits.
	_, err := ReadTree(bitstream.NewReader(bytes.NewReader([]byte{0x80})))
	require.ErrorIs(t, err, ErrMalformedHeader)
	require.ErrorIs(t, err, ErrPrematureEOF)
}

func TestReadTreeTooDeep(t *testing.T) {
	_, err := ReadTree(bitstream.NewReader(bytes.NewReader(make([]byte, 40))))
	require.ErrorIs(t, err, ErrMalformedHeader)
	require.NotErrorIs(t, err, ErrPrematureEOF)
}

func allBytes() []byte {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}
	return data
}
