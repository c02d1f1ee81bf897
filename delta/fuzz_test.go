package delta

import (
	"bytes"
	"testing"
)

// FuzzApplyChain checks that ApplyChain never panics on any byte sequence of
// fragment descriptions it can derive from the fuzzer's input, and that it
// agrees with folding Apply over the same deltas one at a time. It mirrors
// Go's native testing.F idiom — a seed corpus plus a single invariant checked
// per input — rather than seeding from any on-disk corpus, since this
// package has no patch files to draw one from.
func FuzzApplyChain(f *testing.F) {
	f.Add([]byte("hello world"), []byte{3, 6, 1, 2, 3})
	f.Add([]byte(""), []byte{})
	f.Add([]byte("abcdefghij"), []byte{0, 2, 9, 9, 5, 4, 1, 0})

	f.Fuzz(func(t *testing.T, text []byte, fragBytes []byte) {
		deltas := deltasFromBytes(fragBytes, len(text))
		if deltas == nil {
			t.Skip("fragBytes did not decode into a valid fragment list")
		}

		defer func() {
			// A panic here indicates a bug in CombineChain/Apply, not in
			// the fuzz harness itself: deltasFromBytes only ever produces
			// fragments with offsets within the length of the text each
			// delta is applied to, so Apply's own bounds checks should
			// never trip.
			if r := recover(); r != nil {
				t.Fatalf("ApplyChain panicked on a well-formed input: %v", r)
			}
		}()

		chained := ApplyChain(text, deltas)

		sequential := append([]byte(nil), text...)
		for _, d := range deltas {
			sequential = Apply(sequential, d)
		}

		if !bytes.Equal(chained, sequential) {
			t.Fatalf("ApplyChain(%q, %v) = %q, want %q (sequential Apply)", text, deltas, chained, sequential)
		}
	})
}

// deltasFromBytes decodes fragBytes into a small chain of single-fragment
// Deltas, each with offsets clamped into [0, n] where n is the length of the
// text that delta is applied to (textLen for the first, then adjusted by each
// delta's length change), reusing the fuzzer's raw bytes both as structure
// and as content. Returns nil if the text is empty or the bytes are too short
// to describe at least one delta.
func deltasFromBytes(fragBytes []byte, textLen int) []Delta {
	const recordLen = 3 // start, end, content-length, each a single byte
	if len(fragBytes) < recordLen || textLen == 0 {
		return nil
	}

	n := textLen
	var deltas []Delta
	for i := 0; i+recordLen <= len(fragBytes) && n > 0; i += recordLen {
		start := int(fragBytes[i]) % n
		end := start + int(fragBytes[i+1])%(n-start+1)
		contentLen := int(fragBytes[i+2]) % 8

		content := make([]byte, contentLen)
		copy(content, fragBytes[i:])

		d, err := NewDelta([]Fragment{{Start: start, End: end, Content: content}})
		if err != nil {
			continue
		}
		deltas = append(deltas, d)
		n += contentLen - (end - start)
	}
	return deltas
}
