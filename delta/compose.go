package delta

// Combine combines two Deltas into a new Delta equivalent to applying first
// and then second in sequence: for all text t,
// Apply(t, Combine(first, second)) == Apply(Apply(t, first), second).
// Neither input Delta is modified.
//
// first is expressed in the coordinates of t; second is expressed in the
// coordinates of Apply(t, first). Combine's core job is translating each of
// second's fragments back into t's coordinates, accounting for the length
// changes accumulated by the fragments of first that precede it.
func Combine(first, second Delta) Delta {
	combined := make([]Fragment, 0, len(first.frags)+len(second.frags))
	firstFrags := newFragStack(first.frags)

	// cumLenChange is the cumulative signed length change contributed so
	// far by fragments of `first` that have been taken or skipped. The
	// offsets in `second` are relative to the text after `first` is
	// applied, so every offset from `second` must be adjusted by this
	// amount before it is comparable to an offset in `first`.
	cumLenChange := 0

	for _, frag := range second.frags {
		// Take fragments of `first` that end entirely before frag.Start,
		// translated into `first`'s pre-apply coordinates.
		before := takeFragments(&combined, firstFrags, frag.Start, cumLenChange)

		// Skip (drop) fragments of `first` that frag overwrites.
		after := takeFragments(nil, firstFrags, frag.End, before)

		frag.Start = adjust(frag.Start, before)
		frag.End = adjust(frag.End, after)
		combined = append(combined, frag)

		cumLenChange = after
	}

	// Any fragments remaining in `first` occur entirely after the last
	// fragment of `second` and carry over unchanged.
	combined = append(combined, firstFrags.drain()...)

	return Delta{frags: combined}
}

// CombineChain left-folds Combine over deltas, starting from the empty
// Delta. Combine is associative, so the result does not depend on how the
// fold is grouped.
func CombineChain(deltas []Delta) Delta {
	result := DefaultDelta()
	for _, d := range deltas {
		result = Combine(result, d)
	}
	return result
}

// takeFragments moves fragments from src to dst (appending them in order)
// until cutoff, a post-apply offset relative to cumLenChange, is reached. If
// the last fragment taken straddles the cutoff, it is split: the head is
// appended to dst (or dropped, if dst is nil) and the tail is pushed back
// onto src. If dst is nil, taken fragments are dropped instead of appended —
// this implements the "skip-through" phase of Combine, where fragments of
// `first` that `second` overwrites must still contribute their length change
// without surviving into the output.
//
// It returns the updated cumulative length change, including all fragments
// taken (or skipped) by this call.
func takeFragments(dst *[]Fragment, src *fragStack, cutoff int, cumLenChange int) int {
	for {
		frag, ok := src.pop()
		if !ok {
			break
		}

		adjusted := adjust(cutoff, cumLenChange)

		if frag.PostEnd() > adjusted {
			if tail, split := frag.Split(adjusted); split {
				src.push(tail)
				cumLenChange += frag.LengthChange()
				if dst != nil {
					*dst = append(*dst, frag)
				}
			} else {
				// frag starts at or after the cutoff: put it back
				// unmodified and stop draining.
				src.push(frag)
			}
			break
		}

		cumLenChange += frag.LengthChange()
		if dst != nil {
			*dst = append(*dst, frag)
		}
	}
	return cumLenChange
}

// adjust subtracts the signed adjustment from the unsigned offset. It panics
// on underflow (adjustment positive and larger than offset), which indicates
// a malformed input Delta; this is a checked panic rather than silent
// wraparound.
func adjust(offset int, adjustment int) int {
	if adjustment < 0 {
		return offset + (-adjustment)
	}
	if adjustment > offset {
		panic("delta: adjust underflow: malformed delta chain")
	}
	return offset - adjustment
}

// fragStack is a push-back stack over a fragment slice: it supports draining
// fragments in order while allowing a partially-consumed fragment (after a
// split) to be pushed back for the next phase. Go has no put-back iterator
// in the standard library, and no third-party one fits this single call
// site, so a small slice-backed stack does the job instead.
type fragStack struct {
	frags []Fragment // frags[0] is the next fragment to pop
}

func newFragStack(frags []Fragment) *fragStack {
	cp := make([]Fragment, len(frags))
	copy(cp, frags)
	return &fragStack{frags: cp}
}

func (s *fragStack) pop() (Fragment, bool) {
	if len(s.frags) == 0 {
		return Fragment{}, false
	}
	f := s.frags[0]
	s.frags = s.frags[1:]
	return f, true
}

func (s *fragStack) push(f Fragment) {
	s.frags = append([]Fragment{f}, s.frags...)
}

// drain returns and removes all remaining fragments, in order.
func (s *fragStack) drain() []Fragment {
	rest := s.frags
	s.frags = nil
	return rest
}
