package blobstore

import (
	"context"
	"io/fs"
	"os"
	"sync"
)

// fakeFS is a minimal in-memory stand-in for cloudeng.io/file.Local, used so
// FSStore's sharding and not-found translation can be tested without
// touching a real filesystem.
type fakeFS struct {
	mu    sync.Mutex
	files map[string][]byte
	dirs  map[string]bool
}

func newFakeFS() *fakeFS {
	return &fakeFS{files: map[string][]byte{}, dirs: map[string]bool{}}
}

func (f *fakeFS) Put(_ context.Context, path string, _ fs.FileMode, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	f.files[path] = cp
	return nil
}

func (f *fakeFS) Get(_ context.Context, path string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return data, nil
}

func (f *fakeFS) Delete(_ context.Context, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.files, path)
	return nil
}

func (f *fakeFS) EnsurePrefix(_ context.Context, path string, _ fs.FileMode) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dirs[path] = true
	return nil
}

func (f *fakeFS) Join(components ...string) string {
	out := ""
	for _, c := range components {
		if c == ".." {
			if idx := lastSlash(out); idx >= 0 {
				out = out[:idx]
			}
			continue
		}
		if out != "" {
			out += "/"
		}
		out += c
	}
	return out
}

func (f *fakeFS) IsNotExist(err error) bool {
	return os.IsNotExist(err)
}

func lastSlash(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '/' {
			return i
		}
	}
	return -1
}
