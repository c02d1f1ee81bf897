package delta

import "fmt"

// Delta is an ordered, validated, non-overlapping sequence of Fragments.
// The only way to obtain a Delta is through NewDelta, which verifies the
// structural invariants described on Fragment and on InvalidFragmentList.
type Delta struct {
	frags []Fragment
}

// NewDelta constructs a Delta from frags, verifying that the list is sorted,
// non-overlapping, and that every Fragment satisfies Start <= End. It returns
// an *InvalidFragmentList naming the first offending Fragment on failure.
func NewDelta(frags []Fragment) (Delta, error) {
	if err := verifyFragments(frags); err != nil {
		return Delta{}, err
	}
	cp := make([]Fragment, len(frags))
	copy(cp, frags)
	return Delta{frags: cp}, nil
}

// Fragments returns a read-only view of the Delta's fragments. The returned
// slice is a defensive copy; mutating it does not affect the Delta.
func (d Delta) Fragments() []Fragment {
	cp := make([]Fragment, len(d.frags))
	copy(cp, d.frags)
	return cp
}

// Len returns the number of fragments in the Delta.
func (d Delta) Len() int {
	return len(d.frags)
}

// DefaultDelta returns the empty Delta, the identity of Apply and Combine.
func DefaultDelta() Delta {
	return Delta{}
}

func verifyFragments(frags []Fragment) error {
	var prev *Fragment
	for i := range frags {
		f := &frags[i]
		if f.Start > f.End {
			return &InvalidFragmentList{
				Index:  i,
				Reason: fmt.Sprintf("invalid fragment: start %d > end %d", f.Start, f.End),
			}
		}
		if prev != nil && f.Start < prev.End {
			return &InvalidFragmentList{
				Index:  i,
				Reason: fmt.Sprintf("fragment %d: previous end %d overlaps with start %d", i, prev.End, f.Start),
			}
		}
		prev = f
	}
	return nil
}

// InvalidFragmentList is returned by NewDelta when the supplied fragments
// violate the Delta invariants: sortedness, non-overlap, or Start <= End for
// some individual fragment. Index is the zero-based index of the first
// offending fragment.
type InvalidFragmentList struct {
	Index  int
	Reason string
}

func (e *InvalidFragmentList) Error() string {
	return fmt.Sprintf("invalid fragment list at index %d: %s", e.Index, e.Reason)
}
