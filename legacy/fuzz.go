//go:build gofuzz

package legacy

import "bytes"

// Fuzz is the coverage-guided fuzz entry point for the legacy package,
// exercised by github.com/dvyukov/go-fuzz. It follows that tool's
// Fuzz([]byte) int convention, wrapping a single top-level parse call.
func Fuzz(data []byte) int {
	if _, err := Parse(bytes.NewReader(data)); err != nil {
		return 0
	}
	return 1
}
