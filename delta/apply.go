package delta

import "fmt"

// Apply applies delta to text, returning a newly allocated result. Applying
// the empty Delta returns a fresh copy of text, never an alias of it.
//
// Apply panics if delta references an offset past len(text); callers must
// only apply a Delta to the text it was generated against. It panics on
// out-of-range offsets rather than silently indexing out of bounds or
// producing a corrupted result.
func Apply(text []byte, d Delta) []byte {
	chunks := make([][]byte, 0, len(d.frags)*2+1)

	off := 0
	for i, frag := range d.frags {
		if frag.Start < off {
			panic(fmt.Sprintf("delta: fragment %d starts at %d before cursor %d", i, frag.Start, off))
		}
		if frag.End > len(text) {
			panic(fmt.Sprintf("delta: fragment %d end %d exceeds text length %d", i, frag.End, len(text)))
		}
		if off < frag.Start {
			chunks = append(chunks, text[off:frag.Start])
		}
		if len(frag.Content) > 0 {
			chunks = append(chunks, frag.Content)
		}
		off = frag.End
	}
	if off < len(text) {
		chunks = append(chunks, text[off:])
	} else if off > len(text) {
		panic(fmt.Sprintf("delta: cursor %d past end of text length %d", off, len(text)))
	}

	size := 0
	for _, c := range chunks {
		size += len(c)
	}

	out := make([]byte, 0, size)
	for _, c := range chunks {
		out = append(out, c...)
	}
	return out
}

// ApplyChain applies a chain of Deltas to text in order, equivalent to
// repeatedly calling Apply but without materializing any intermediate
// result: the chain is folded into one Delta with CombineChain first. This is
// the production hot path for reconstructing a revision from a long chain of
// stored deltas.
func ApplyChain(text []byte, deltas []Delta) []byte {
	return Apply(text, CombineChain(deltas))
}
