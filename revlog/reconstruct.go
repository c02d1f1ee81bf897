package revlog

import (
	"context"

	"github.com/rowdymehul/mononoke/blobstore"
	"github.com/rowdymehul/mononoke/delta"
)

// Reconstruct fetches entry's base blob and its delta chain concurrently,
// folds the chain into a single Delta with delta.CombineChain, and applies
// it once with delta.ApplyChain. This is the hot path: a long delta chain
// never materializes an intermediate revision.
func Reconstruct(ctx context.Context, store blobstore.Store, entry Entry) ([]byte, error) {
	baseFuture := store.Fetch(ctx, entry.Base)

	deltas, err := blobstore.FetchChain(ctx, store, entry.Deltas)
	if err != nil {
		return nil, err
	}

	base, err := baseFuture.Wait(ctx)
	if err != nil {
		return nil, err
	}

	return delta.ApplyChain(base, deltas), nil
}

// Materialize produces the same result as Reconstruct but applies each delta
// in the chain one at a time instead of composing them first. It exists so
// tests and benchmarks can assert Reconstruct and Materialize agree on real
// blob round-trips, not just on in-memory Delta values.
func Materialize(ctx context.Context, store blobstore.Store, entry Entry) ([]byte, error) {
	baseFuture := store.Fetch(ctx, entry.Base)

	deltas, err := blobstore.FetchChain(ctx, store, entry.Deltas)
	if err != nil {
		return nil, err
	}

	text, err := baseFuture.Wait(ctx)
	if err != nil {
		return nil, err
	}

	for _, d := range deltas {
		text = delta.Apply(text, d)
	}
	return text, nil
}
