// Package revlog reconstructs file revisions from a base blob and a chain of
// deltas stored in a blobstore.Store. It is the layer that turns stored
// history into the bytes of a specific revision.
package revlog
