package blobstore

import (
	"context"
	"io/fs"

	cefile "cloudeng.io/file"
	cepath "cloudeng.io/path"
)

// localFS is the subset of *cloudeng.io/file.Local that FSStore depends on.
// Naming it as an interface keeps FSStore testable against a fake without
// pulling in the real filesystem, while the only production implementation
// is cefile.LocalFS().
type localFS interface {
	Put(ctx context.Context, path string, perm fs.FileMode, data []byte) error
	Get(ctx context.Context, path string) ([]byte, error)
	Delete(ctx context.Context, path string) error
	EnsurePrefix(ctx context.Context, path string, perm fs.FileMode) error
	Join(components ...string) string
	IsNotExist(err error) bool
}

// FSStore is a Store backed by a filesystem, one blob per file, sharded two
// hex-prefix levels deep so that no single directory accumulates millions of
// entries. It is grounded directly on cloudeng.io/file's Local type (Put,
// Get, Delete, EnsurePrefix) and cloudeng.io/path's Sharder.
type FSStore struct {
	fs      localFS
	root    string
	sharder cepath.Sharder
	perm    fs.FileMode
}

// NewFSStore returns a Store rooted at root on fsys, using a two-level
// hex-prefix shard layout. Passing nil for fsys defaults to the local
// filesystem (cloudeng.io/file.LocalFS()).
func NewFSStore(fsys localFS, root string) *FSStore {
	if fsys == nil {
		fsys = cefile.LocalFS()
	}
	return &FSStore{
		fs:      fsys,
		root:    root,
		sharder: cepath.NewSharder(cepath.SHA1PrefixLength(2)),
		perm:    0o755,
	}
}

func (s *FSStore) pathFor(h Hash) string {
	prefix, suffix := s.sharder.Assign(h.String())
	return s.fs.Join(s.root, prefix, suffix)
}

func (s *FSStore) Put(ctx context.Context, data []byte) (Hash, error) {
	h := HashOf(data)
	path := s.pathFor(h)
	dir := s.fs.Join(path, "..")
	if err := s.fs.EnsurePrefix(ctx, dir, s.perm); err != nil {
		return Hash{}, err
	}
	if err := s.fs.Put(ctx, path, s.perm, data); err != nil {
		return Hash{}, err
	}
	return h, nil
}

// Fetch begins a filesystem read in its own goroutine and returns
// immediately; the result is delivered through the returned Future.
func (s *FSStore) Fetch(ctx context.Context, h Hash) *Future {
	f := newFuture()
	go func() {
		data, err := s.fs.Get(ctx, s.pathFor(h))
		if err != nil && s.fs.IsNotExist(err) {
			err = ErrNotFound
		}
		f.resolve(data, err)
	}()
	return f
}

// Delete removes the blob for h, if present.
func (s *FSStore) Delete(ctx context.Context, h Hash) error {
	return s.fs.Delete(ctx, s.pathFor(h))
}
