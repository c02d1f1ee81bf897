// Package bookmarks implements a name-to-revision-hash registry: a
// concurrency-safe in-memory cache backed by a YAML file on disk, the scope
// a delta-engine demo CLI actually needs for resolving a human-friendly name
// to a blobstore.Hash, short of full changeset DAG traversal.
package bookmarks
