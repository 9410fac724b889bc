// Package report formats the one-line summaries printed per file.
package report

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Deflation returns by how many percent out is smaller than in. It is
// negative when the output grew and 0 for an empty input.
func Deflation(in, out int64) float64 {
	if in == 0 {
		return 0
	}
	return 100 * (1 - float64(out)/float64(in))
}

func Compressed(input, output string, in, out int64) string {
	return fmt.Sprintf("'%s' -> '%s' (deflated %.1f%%, %s -> %s)",
		input, output, Deflation(in, out), size(in), size(out))
}

func Decompressed(input, output string) string {
	return fmt.Sprintf("'%s' -> '%s'", input, output)
}

func Verified(input string, in, out int64, digest string) string {
	return fmt.Sprintf("'%s' ok (deflated %.1f%%, %s, blake3 %s)",
		input, Deflation(in, out), size(in), digest)
}

func size(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.IBytes(uint64(n))
}
