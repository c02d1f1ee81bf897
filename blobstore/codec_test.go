package blobstore

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rowdymehul/mononoke/delta"
)

func TestEncodeDecodeDeltaRoundTrip(t *testing.T) {
	d, err := delta.NewDelta([]delta.Fragment{
		{Start: 0, End: 3, Content: []byte("abc")},
		{Start: 5, End: 5, Content: nil},
		{Start: 7, End: 20, Content: []byte("a longer replacement")},
	})
	require.NoError(t, err)

	blob := EncodeDelta(d)
	got, err := DecodeDelta(blob)
	require.NoError(t, err)

	wantFrags := d.Fragments()
	gotFrags := got.Fragments()
	require.Len(t, gotFrags, len(wantFrags))
	for i := range wantFrags {
		require.Equal(t, wantFrags[i].Start, gotFrags[i].Start, "fragment %d start", i)
		require.Equal(t, wantFrags[i].End, gotFrags[i].End, "fragment %d end", i)
		require.Equal(t, wantFrags[i].Content, gotFrags[i].Content, "fragment %d content", i)
	}
}

func TestEncodeDecodeEmptyDelta(t *testing.T) {
	blob := EncodeDelta(delta.DefaultDelta())
	got, err := DecodeDelta(blob)
	require.NoError(t, err)
	require.Zero(t, got.Len())
}

func TestDecodeDeltaRejectsTruncatedBlob(t *testing.T) {
	_, err := DecodeDelta([]byte{1, 2, 3})
	require.Error(t, err)
}
