package monodelta

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rowdymehul/mononoke/blobstore"
	"github.com/rowdymehul/mononoke/delta"
	"github.com/rowdymehul/mononoke/revlog"
)

func TestRunApplyReconstructsRevision(t *testing.T) {
	dir := t.TempDir()
	store := blobstore.NewFSStore(nil, dir)
	ctx := context.Background()

	baseHash, err := store.Put(ctx, []byte("hello world"))
	require.NoError(t, err)

	d, err := delta.NewDelta([]delta.Fragment{{Start: 6, End: 11, Content: []byte("there")}})
	require.NoError(t, err)
	deltaHash, err := store.Put(ctx, blobstore.EncodeDelta(d))
	require.NoError(t, err)

	entryHash, err := store.Put(ctx, revlog.EncodeEntry(revlog.Entry{
		Base:   baseHash,
		Deltas: []blobstore.Hash{deltaHash},
	}))
	require.NoError(t, err)

	r, w, err := os.Pipe()
	require.NoError(t, err)
	origStdout := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = origStdout }()

	err = runApply(dir, entryHash.String())
	require.NoError(t, err)

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	require.Equal(t, "hello there", buf.String())
}

func TestRunApplyRejectsInvalidHash(t *testing.T) {
	err := runApply(t.TempDir(), "not-a-hash")
	require.Error(t, err)
}
