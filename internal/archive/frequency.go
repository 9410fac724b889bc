package archive

import (
	"errors"
	"io"
)

// countOccurrences reads r to the end and counts every byte value.
func countOccurrences(r io.Reader, bufferSize int) ([256]uint64, error) {
	var counts [256]uint64

	readBuffer := make([]byte, bufferSize)
	for {
		read, err := r.Read(readBuffer)
		for _, b := range readBuffer[:read] {
			counts[b]++
		}
		if errors.Is(err, io.EOF) {
			return counts, nil
		}
		if err != nil {
			return counts, err
		}
	}
}
