package deltatest

import (
	"math"
	"math/rand"

	"github.com/rowdymehul/mononoke/delta"
)

// RandomFragment generates a single Fragment whose Start/End satisfy
// Start <= End, biased by size (roughly, the largest offset or content
// length the generator will produce).
func RandomFragment(rng *rand.Rand, size int) delta.Fragment {
	if size <= 0 {
		size = 1
	}
	start := rng.Intn(size)
	end := start + rng.Intn(size)
	return delta.Fragment{
		Start:   start,
		End:     end,
		Content: arbitraryFragContent(rng, size),
	}
}

// RandomDelta generates a Delta with a random number of fragments (at most
// size), each built so that Start/End are non-decreasing across the
// sequence and do not overlap the previous fragment's End, producing only
// valid fragment lists by construction rather than generating and then
// filtering.
func RandomDelta(rng *rand.Rand, size int) delta.Delta {
	if size <= 0 {
		size = 1
	}
	nfrags := rng.Intn(size)

	frags := make([]delta.Fragment, 0, nfrags)
	start, end := 0, 0
	for i := 0; i < nfrags; i++ {
		start = end + rng.Intn(size)
		end = start + rng.Intn(size)
		frags = append(frags, delta.Fragment{
			Start:   start,
			End:     end,
			Content: arbitraryFragContent(rng, size),
		})
	}

	d, err := delta.NewDelta(frags)
	if err != nil {
		// The construction above always satisfies Delta's invariants; a
		// failure here means this generator has a bug, not that the caller
		// supplied bad input.
		panic("deltatest: RandomDelta produced an invalid fragment list: " + err.Error())
	}
	return d
}

// arbitraryFragContent generates fragment content whose length follows a
// log-normal distribution rather than a uniform one: a uniform distribution
// over `size` tends to produce extremely bloated content on every sample, and
// gives zero-length content only a 1/size chance. The mean and stdev below
// are not independently rigorous — they were chosen to behave well for
// typical sizes around 100.
func arbitraryFragContent(rng *rand.Rand, size int) []byte {
	const mean, stdev = -3.0, 2.0
	lognormal := math.Exp(mean + stdev*rng.NormFloat64())

	contentLen := int(float64(size) * lognormal)
	if contentLen <= 0 {
		return nil
	}

	v := make([]byte, contentLen)
	rng.Read(v)
	return v
}
