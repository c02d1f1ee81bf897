package revlog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rowdymehul/mononoke/blobstore"
	"github.com/rowdymehul/mononoke/delta"
)

func putDelta(t *testing.T, ctx context.Context, store blobstore.Store, d delta.Delta) blobstore.Hash {
	t.Helper()
	h, err := store.Put(ctx, blobstore.EncodeDelta(d))
	require.NoError(t, err)
	return h
}

func TestReconstructAndMaterializeAgree(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemStore()

	base := []byte("the quick brown fox jumps over the lazy dog")
	baseHash, err := store.Put(ctx, base)
	require.NoError(t, err)

	d1, err := delta.NewDelta([]delta.Fragment{{Start: 4, End: 9, Content: []byte("slow")}})
	require.NoError(t, err)
	d2, err := delta.NewDelta([]delta.Fragment{{Start: 0, End: 0, Content: []byte("Once upon a time, ")}})
	require.NoError(t, err)

	entry := Entry{
		Base:   baseHash,
		Deltas: []blobstore.Hash{putDelta(t, ctx, store, d1), putDelta(t, ctx, store, d2)},
	}

	reconstructed, err := Reconstruct(ctx, store, entry)
	require.NoError(t, err)
	materialized, err := Materialize(ctx, store, entry)
	require.NoError(t, err)
	require.Equal(t, materialized, reconstructed)

	want := delta.Apply(delta.Apply(base, d1), d2)
	require.Equal(t, want, reconstructed)
}

func TestReconstructWithNoDeltasReturnsBase(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemStore()

	base := []byte("unchanged content")
	baseHash, err := store.Put(ctx, base)
	require.NoError(t, err)

	got, err := Reconstruct(ctx, store, Entry{Base: baseHash})
	require.NoError(t, err)
	require.Equal(t, base, got)
}

func TestReconstructPropagatesMissingBase(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemStore()

	_, err := Reconstruct(ctx, store, Entry{Base: blobstore.Hash{0x1}})
	require.Error(t, err)
}
