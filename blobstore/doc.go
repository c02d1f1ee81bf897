// Package blobstore provides a content-addressed, hash-keyed byte store: the
// sole upstream data source for the engine, holding base snapshots and the
// delta blobs that chain off them. Retrieval is modeled as a Future so
// callers can fetch a chain of blobs concurrently before folding them with
// the delta package.
package blobstore
