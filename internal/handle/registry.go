package handle

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// Handle file permissions
const (
	blobFilePermissions = 0600
	handleIDPrefix      = "blob-"
)

// Handle is an acquired reference to a materialized blob. The Path stays
// valid until the handle is released.
type Handle struct {
	ID   string
	Path string
}

// Registry tracks blobs materialized as files in a private temp directory
// and guarantees each is released exactly once. Preview thumbnails and
// finished output documents both live here, so leak-freedom is a property
// of the registry instead of a convention every call site must remember.
type Registry struct {
	mu   sync.Mutex
	dir  string
	live map[string]string // handle id -> file path
}

// NewRegistry creates a registry with its own temp directory.
func NewRegistry() (*Registry, error) {
	dir, err := os.MkdirTemp("", "docdesk-blobs-*")
	if err != nil {
		return nil, fmt.Errorf("handle: create blob dir: %w", err)
	}
	return &Registry{dir: dir, live: make(map[string]string)}, nil
}

// Acquire writes the blob to the registry's directory and returns a handle
// for it.
func (r *Registry) Acquire(data []byte, ext string) (Handle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := handleIDPrefix + uuid.NewString()
	path := filepath.Join(r.dir, id+ext)
	if err := os.WriteFile(path, data, blobFilePermissions); err != nil {
		return Handle{}, fmt.Errorf("handle: write blob: %w", err)
	}

	r.live[id] = path
	return Handle{ID: id, Path: path}, nil
}

// Release frees the blob behind the handle id. Releasing an unknown or
// already-released id is a silent no-op.
func (r *Registry) Release(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.release(id)
}

// ReleaseAll frees every live handle. Used when a queue is cleared or a
// tool view is torn down.
func (r *Registry) ReleaseAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id := range r.live {
		r.release(id)
	}
}

// Count returns the number of live handles.
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.live)
}

// Path returns the backing file of a live handle, or "" when released.
func (r *Registry) Path(id string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.live[id]
}

// Close releases all handles and removes the registry's directory.
func (r *Registry) Close() {
	r.ReleaseAll()
	if err := os.Remove(r.dir); err != nil {
		log.Printf("handle: removing blob dir %s: %v", r.dir, err)
	}
}

// release must be called with the mutex held.
func (r *Registry) release(id string) {
	path, ok := r.live[id]
	if !ok {
		return
	}
	delete(r.live, id)
	if err := os.Remove(path); err != nil {
		log.Printf("handle: removing blob %s: %v", path, err)
	}
}
