package archive

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/zeebo/blake3"
)

// Verification is the result of a successful Verify.
type Verification struct {
	Stats
	Digest [32]byte
}

func (v Verification) DigestHex() string {
	return hex.EncodeToString(v.Digest[:])
}

// Verify compresses r into memory, decompresses the result and checks that
// the BLAKE3 digest of the decoded bytes matches the digest of r.
func (arch *Archiver) Verify(r io.ReadSeeker) (Verification, error) {
	var result Verification

	original := blake3.New()
	if _, err := io.CopyBuffer(original, r, make([]byte, arch.bufferSize)); err != nil {
		return result, fmt.Errorf("hashing input: %w", err)
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return result, fmt.Errorf("rewinding input: %w", err)
	}

	var archived bytes.Buffer
	stats, err := arch.Compress(r, &archived)
	if err != nil {
		return result, err
	}
	result.Stats = stats

	decoded := blake3.New()
	if _, err := arch.Decompress(&archived, decoded); err != nil {
		return result, err
	}

	copy(result.Digest[:], original.Sum(nil))
	var got [32]byte
	copy(got[:], decoded.Sum(nil))
	if got != result.Digest {
		return result, fmt.Errorf("%w: want %x, got %x", ErrDigestMismatch, result.Digest, got)
	}
	return result, nil
}
