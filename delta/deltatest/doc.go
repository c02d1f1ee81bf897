// Package deltatest provides generators and shrinkers for property-based
// testing of the delta package: random Fragments and Deltas biased toward
// the small, structurally-interesting cases that a uniform distribution
// would rarely produce, plus shrinkers that reduce a failing case toward a
// minimal reproduction while preserving Delta's validity invariants.
package deltatest
