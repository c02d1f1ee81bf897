package blobstore

import "context"

// Future is a handle to a blob fetch in progress. It is produced by a
// Store's asynchronous Fetch and resolved by Wait.
type Future struct {
	ch  chan struct{}
	val []byte
	err error
}

func newFuture() *Future {
	return &Future{ch: make(chan struct{})}
}

func (f *Future) resolve(val []byte, err error) {
	f.val, f.err = val, err
	close(f.ch)
}

// Wait blocks until the fetch completes, the context is done, or both:
// whichever happens first wins. A context cancellation does not stop the
// underlying fetch; it only stops this call from blocking on it.
func (f *Future) Wait(ctx context.Context) ([]byte, error) {
	select {
	case <-f.ch:
		return f.val, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
