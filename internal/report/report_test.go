package report

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeflation(t *testing.T) {
	require.InDelta(t, 30.0, Deflation(10, 7), 1e-9)
	require.InDelta(t, -50.0, Deflation(10, 15), 1e-9)
	require.Zero(t, Deflation(0, 0))
}

func TestCompressed(t *testing.T) {
	require.Equal(t,
		"'a.txt' -> 'a.txt.huff' (deflated 30.0%, 10 B -> 7 B)",
		Compressed("a.txt", "a.txt.huff", 10, 7))
	require.Equal(t,
		"'big' -> 'big.huff' (deflated 50.0%, 2.0 MiB -> 1.0 MiB)",
		Compressed("big", "big.huff", 2<<20, 1<<20))
}

func TestDecompressed(t *testing.T) {
	require.Equal(t, "'a.txt.huff' -> 'a.txt'", Decompressed("a.txt.huff", "a.txt"))
}

func TestVerified(t *testing.T) {
	require.Equal(t,
		"'a.txt' ok (deflated 30.0%, 10 B, blake3 abcd)",
		Verified("a.txt", 10, 7, "abcd"))
}
