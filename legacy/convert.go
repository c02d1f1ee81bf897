package legacy

import (
	"fmt"

	ceerrors "cloudeng.io/errors"

	"github.com/rowdymehul/mononoke/delta"
)

// ConvertFragment maps a single bdiff Delta into a delta.Fragment. The
// mapping is a direct field-for-field copy; bdiff and delta.Fragment share
// the same (start, end, content) shape by design.
func ConvertFragment(d Delta) delta.Fragment {
	return delta.Fragment{Start: d.Start, End: d.End, Content: d.Content}
}

// ConvertChain converts a slice of bdiff Deltas into a delta.Delta,
// validating the sortedness/non-overlap invariant delta.NewDelta requires.
// Per-record validation that bdiff never performed is exactly what callers
// are migrating to delta.Delta to get.
func ConvertChain(deltas []Delta) (delta.Delta, error) {
	frags := make([]delta.Fragment, len(deltas))
	for i, d := range deltas {
		frags[i] = ConvertFragment(d)
	}
	return delta.NewDelta(frags)
}

// ApplyDeltas applies a chain of bdiff-format delta chains to text, each
// inner slice converted to a delta.Delta and the whole sequence applied with
// delta.ApplyChain. It is the compatibility equivalent of a caller that used
// to hold text as a `[]bdiff.Delta` per revision.
//
// Every chain is validated before any are applied, and every validation
// failure is reported at once via cloudeng.io/errors.M, rather than stopping
// at the first malformed chain — a caller migrating a whole batch of
// bdiff-format revisions wants to see every bad chain in one pass.
func ApplyDeltas(text []byte, chains [][]Delta) ([]byte, error) {
	converted := make([]delta.Delta, len(chains))
	errs := ceerrors.M{}
	for i, chain := range chains {
		d, err := ConvertChain(chain)
		if err != nil {
			errs.Append(fmt.Errorf("chain %d: %w", i, err))
			continue
		}
		converted[i] = d
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return delta.ApplyChain(text, converted), nil
}
