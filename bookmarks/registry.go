package bookmarks

import (
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/rowdymehul/mononoke/blobstore"
)

// Registry is a name -> blobstore.Hash map, safe for concurrent use. The
// zero value is an empty Registry ready to use.
type Registry struct {
	mu    sync.RWMutex
	marks map[string]blobstore.Hash
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{marks: make(map[string]blobstore.Hash)}
}

// Set records name as pointing at hash, overwriting any previous value.
func (r *Registry) Set(name string, hash blobstore.Hash) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.marks == nil {
		r.marks = make(map[string]blobstore.Hash)
	}
	r.marks[name] = hash
}

// Lookup returns the hash bound to name, and whether a binding exists.
func (r *Registry) Lookup(name string) (blobstore.Hash, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.marks[name]
	return h, ok
}

// Delete removes name's binding, if any. It is a no-op if name is unbound.
func (r *Registry) Delete(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.marks, name)
}

// List returns a snapshot copy of every name -> hash binding.
func (r *Registry) List() map[string]blobstore.Hash {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]blobstore.Hash, len(r.marks))
	for k, v := range r.marks {
		out[k] = v
	}
	return out
}

// bookmarkFile is the on-disk YAML representation: hex-encoded hashes keyed
// by bookmark name, matching blobstore.Hash's String/ParseHash encoding.
type bookmarkFile struct {
	Bookmarks map[string]string `yaml:"bookmarks"`
}

// Load replaces the Registry's contents with the bookmarks stored in the
// YAML file at path.
func (r *Registry) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var bf bookmarkFile
	if err := yaml.Unmarshal(data, &bf); err != nil {
		return err
	}

	marks := make(map[string]blobstore.Hash, len(bf.Bookmarks))
	for name, hex := range bf.Bookmarks {
		h, err := blobstore.ParseHash(hex)
		if err != nil {
			return err
		}
		marks[name] = h
	}

	r.mu.Lock()
	r.marks = marks
	r.mu.Unlock()
	return nil
}

// Save writes the Registry's current contents to path as YAML.
func (r *Registry) Save(path string) error {
	r.mu.RLock()
	bf := bookmarkFile{Bookmarks: make(map[string]string, len(r.marks))}
	for name, h := range r.marks {
		bf.Bookmarks[name] = h.String()
	}
	r.mu.RUnlock()

	data, err := yaml.Marshal(bf)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
