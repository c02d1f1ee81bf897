// Package delta implements the delta composition and application engine: the
// part of the repository responsible for reconstructing a revision of a file
// from a base snapshot and a chain of textual deltas, and for folding such a
// chain into a single equivalent delta before applying it.
//
// A Delta is an ordered, non-overlapping sequence of Fragments, each of which
// replaces a byte range of the input with new content. Deltas are produced
// elsewhere (by the content store and its callers, see the blobstore and
// revlog packages) and handed to this package for Apply and Combine.
//
// The package performs no I/O and holds no state: every exported function is
// a pure function of its inputs. NewDelta is the only one that returns an
// error; Apply (and so ApplyChain) panics on a Delta that references offsets
// past the end of its text.
package delta
