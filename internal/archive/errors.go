package archive

import (
	"errors"
	"fmt"
)

var (
	// ErrPrematureEOF is returned when the bit source runs out before the
	// tree header is complete or before the end-of-stream code is decoded.
	ErrPrematureEOF = errors.New("premature EOF")

	// ErrMalformedHeader is returned when the tree header cannot describe a
	// valid tree. A leaf flag without a full byte value after it also
	// matches ErrPrematureEOF.
	ErrMalformedHeader = errors.New("malformed tree header")

	// ErrEmptyInput is returned by BuildTree when no byte occurs at all.
	ErrEmptyInput = errors.New("empty input")

	// ErrMissingCode means a byte has no code in the lookup table.
	ErrMissingCode = errors.New("byte missing from lookup table")

	// ErrMissingSuffix is returned when a file to decompress does not carry
	// the archive suffix.
	ErrMissingSuffix = errors.New("missing archive suffix")

	// ErrDigestMismatch is returned by Verify when the decoded data differs
	// from the input.
	ErrDigestMismatch = errors.New("round trip digest mismatch")
)

// errTruncatedLeaf wraps both ErrMalformedHeader and ErrPrematureEOF.
var errTruncatedLeaf = fmt.Errorf("%w: leaf value cut short: %w", ErrMalformedHeader, ErrPrematureEOF)
