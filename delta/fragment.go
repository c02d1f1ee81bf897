package delta

// Fragment represents a single contiguous modified region of text: replace
// the bytes in [Start, End) of the pre-apply text with Content.
//
// Start and End are offsets in the text before a Delta containing this
// Fragment is applied. Content may be shorter, longer, or the same length as
// End-Start, and may be empty (a pure deletion).
type Fragment struct {
	Start   int
	End     int
	Content []byte
}

// PostEnd returns the offset, in the post-apply text, where this Fragment's
// content ends.
func (f Fragment) PostEnd() int {
	return f.Start + len(f.Content)
}

// LengthChange returns the signed change in text length this Fragment causes
// when applied: positive for a net insertion, negative for a net deletion.
func (f Fragment) LengthChange() int {
	return len(f.Content) - (f.End - f.Start)
}

// ContainsOffset reports whether offset falls within this Fragment's content,
// in post-apply coordinates.
func (f Fragment) ContainsOffset(offset int) bool {
	return f.Start <= offset && offset < f.PostEnd()
}

// Split splits the Fragment at the given post-apply offset. The receiver is
// modified in place to become the first half, and the second half is
// returned. The second return value is false, with the receiver left
// unmodified, if at does not fall within the Fragment's content bounds.
//
// The split point may occur after End if Content is longer than End-Start: in
// that case the pre-apply cut point is clamped to End, but the content is
// still split at the requested offset.
func (f *Fragment) Split(at int) (tail Fragment, ok bool) {
	if !f.ContainsOffset(at) {
		return Fragment{}, false
	}

	// The split point may fall past End in pre-apply coordinates when
	// Content is longer than End-Start; clamp so the tail never ends up
	// with start > end.
	splitEnd := min(f.End, at)

	contentSplit := at - f.Start
	tail = Fragment{
		Start:   splitEnd,
		End:     f.End,
		Content: f.Content[contentSplit:],
	}

	f.End = splitEnd
	f.Content = f.Content[:contentSplit]

	return tail, true
}
