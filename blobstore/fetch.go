package blobstore

import (
	"context"

	"cloudeng.io/sync/errgroup"

	"github.com/rowdymehul/mononoke/delta"
)

// maxConcurrentFetches bounds how many blobs FetchChain reads at once, so a
// long chain doesn't open thousands of concurrent filesystem reads.
const maxConcurrentFetches = 16

// FetchChain fetches every delta blob named by hashes concurrently — bounded
// by maxConcurrentFetches — and decodes each into a delta.Delta, returning
// them in the same order as hashes. It is grounded directly on
// cloudeng.io/sync/errgroup's documented use case: reliably waiting on
// parallel goroutines and canceling the rest on the first error.
func FetchChain(ctx context.Context, store Store, hashes []Hash) ([]delta.Delta, error) {
	g, ctx := errgroup.WithContext(ctx)
	g = errgroup.WithConcurrency(g, maxConcurrentFetches)

	results := make([]delta.Delta, len(hashes))

	for i, h := range hashes {
		i, h := i, h
		g.Go(func() error {
			blob, err := store.Fetch(ctx, h).Wait(ctx)
			if err != nil {
				return err
			}
			d, err := DecodeDelta(blob)
			if err != nil {
				return err
			}
			results[i] = d
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
