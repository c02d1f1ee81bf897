package bookmarks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rowdymehul/mononoke/blobstore"
)

func TestSetLookupDelete(t *testing.T) {
	r := NewRegistry()
	h := blobstore.HashOf([]byte("revision one"))

	r.Set("main", h)

	got, ok := r.Lookup("main")
	require.True(t, ok)
	require.Equal(t, h, got)

	r.Delete("main")
	_, ok = r.Lookup("main")
	require.False(t, ok, "Lookup(main) succeeded after Delete")
}

func TestLookupMissing(t *testing.T) {
	r := NewRegistry()
	_, ok := r.Lookup("nope")
	require.False(t, ok)
}

func TestListIsSnapshot(t *testing.T) {
	r := NewRegistry()
	h := blobstore.HashOf([]byte("x"))
	r.Set("a", h)

	list := r.List()
	r.Set("b", blobstore.HashOf([]byte("y")))

	_, ok := list["b"]
	require.False(t, ok, "List() snapshot was mutated by a later Set")
	require.Len(t, list, 1)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bookmarks.yaml")

	r := NewRegistry()
	r.Set("stable", blobstore.HashOf([]byte("rev-a")))
	r.Set("dev", blobstore.HashOf([]byte("rev-b")))

	require.NoError(t, r.Save(path))

	loaded := NewRegistry()
	require.NoError(t, loaded.Load(path))

	for _, name := range []string{"stable", "dev"} {
		want, _ := r.Lookup(name)
		got, ok := loaded.Lookup(name)
		require.True(t, ok)
		require.Equal(t, want, got)
	}
}

func TestLoadRejectsMalformedHash(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bookmarks:\n  broken: not-a-hash\n"), 0o644))

	r := NewRegistry()
	require.Error(t, r.Load(path))
}
