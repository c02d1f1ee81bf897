package deltatest

import "github.com/rowdymehul/mononoke/delta"

// ShrinkFragment returns a list of Fragments that are "smaller" than f —
// candidates with a reduced Start, End, or Content — for use when shrinking a
// failing property-test case toward a minimal reproduction. Candidates that
// would violate Fragment's own Start <= End invariant are filtered out, since
// shrinking a tuple of independent fields can produce values the type
// wouldn't accept on its own.
func ShrinkFragment(f delta.Fragment) []delta.Fragment {
	var out []delta.Fragment

	for _, start := range shrinkInt(f.Start) {
		cand := delta.Fragment{Start: start, End: f.End, Content: f.Content}
		if cand.Start <= cand.End {
			out = append(out, cand)
		}
	}
	for _, end := range shrinkInt(f.End) {
		cand := delta.Fragment{Start: f.Start, End: end, Content: f.Content}
		if cand.Start <= cand.End {
			out = append(out, cand)
		}
	}
	for _, content := range shrinkBytes(f.Content) {
		out = append(out, delta.Fragment{Start: f.Start, End: f.End, Content: content})
	}

	return out
}

// ShrinkDelta returns a list of Deltas "smaller" than d: candidates with
// fewer fragments, or with one fragment individually shrunk. Any candidate
// fragment list that NewDelta rejects is dropped, mirroring the original
// implementation's approach of shrinking the underlying Vec and filtering by
// Delta::verify rather than shrinking in a way that's guaranteed to stay
// valid.
func ShrinkDelta(d delta.Delta) []delta.Delta {
	frags := d.Fragments()
	var out []delta.Delta

	for _, candidate := range shrinkFragmentSlice(frags) {
		if nd, err := delta.NewDelta(candidate); err == nil {
			out = append(out, nd)
		}
	}

	return out
}

// shrinkFragmentSlice proposes smaller fragment slices: the empty slice,
// each single-element removal, and each element individually shrunk in
// place.
func shrinkFragmentSlice(frags []delta.Fragment) [][]delta.Fragment {
	var out [][]delta.Fragment

	if len(frags) > 0 {
		out = append(out, nil)
	}

	for i := range frags {
		without := make([]delta.Fragment, 0, len(frags)-1)
		without = append(without, frags[:i]...)
		without = append(without, frags[i+1:]...)
		out = append(out, without)
	}

	for i, f := range frags {
		for _, shrunk := range ShrinkFragment(f) {
			cp := make([]delta.Fragment, len(frags))
			copy(cp, frags)
			cp[i] = shrunk
			out = append(out, cp)
		}
	}

	return out
}

// shrinkInt returns progressively smaller non-negative values toward zero:
// zero itself (if n != 0), then n halved repeatedly, then n-1.
func shrinkInt(n int) []int {
	if n == 0 {
		return nil
	}
	out := []int{0}
	for half := n / 2; half > 0; half /= 2 {
		out = append(out, half)
	}
	if n-1 > 0 {
		out = append(out, n-1)
	}
	return out
}

// shrinkBytes returns progressively smaller byte slices: empty, the first
// half, and the slice with its last byte removed.
func shrinkBytes(b []byte) [][]byte {
	if len(b) == 0 {
		return nil
	}
	out := [][]byte{{}}
	if half := len(b) / 2; half > 0 && half < len(b) {
		out = append(out, append([]byte{}, b[:half]...))
	}
	out = append(out, append([]byte{}, b[:len(b)-1]...))
	return out
}
