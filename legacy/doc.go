// Package legacy is a compatibility shim for the old binary bdiff wire
// format: fixed-width (start, end, length) headers followed by replacement
// content, with no validation of ordering or overlap. It exists only to let
// callers still holding bdiff-encoded patches convert them into
// delta.Fragment/delta.Delta values; it is not extended with new
// functionality, and is removed once all callers have migrated.
package legacy
