package revlog

import "github.com/rowdymehul/mononoke/blobstore"

// Entry represents one revision of a file: the hash of its base snapshot
// blob, plus zero or more delta hashes that must be applied, in order, on
// top of that base to produce this revision's content.
type Entry struct {
	Base   blobstore.Hash
	Deltas []blobstore.Hash
}
