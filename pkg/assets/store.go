package assets

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
)

// ErrNotFound is returned when a key has no stored asset.
var ErrNotFound = errors.New("assets: not found")

// Store resolves and manages the binary assets picture ingredients
// reference by key.
type Store interface {
	// URL resolves a key to a fetchable URL.
	URL(ctx context.Context, key string) (string, error)

	// Put stores an asset under key.
	Put(ctx context.Context, key, contentType string, r io.Reader) error

	// Delete removes the asset under key. Deleting a missing key is
	// not an error.
	Delete(ctx context.Context, key string) error
}

// MemoryStore keeps assets in memory and serves them under a base
// path. Suitable for tests and local preview.
type MemoryStore struct {
	basePath string

	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	contentType string
	data        []byte
}

// NewMemoryStore creates an in-memory asset store. Resolved URLs are
// basePath + "/" + key.
func NewMemoryStore(basePath string) *MemoryStore {
	if basePath == "" {
		basePath = "/assets"
	}
	return &MemoryStore{
		basePath: basePath,
		entries:  map[string]memoryEntry{},
	}
}

// URL implements Store.
func (s *MemoryStore) URL(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.entries[key]; !ok {
		return "", ErrNotFound
	}
	return s.basePath + "/" + key, nil
}

// Put implements Store.
func (s *MemoryStore) Put(_ context.Context, key, contentType string, r io.Reader) error {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = memoryEntry{contentType: contentType, data: buf.Bytes()}
	return nil
}

// Delete implements Store.
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

// Open returns the stored asset's content type and data for serving.
func (s *MemoryStore) Open(key string) (contentType string, data []byte, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[key]
	if !ok {
		return "", nil, ErrNotFound
	}
	return entry.contentType, entry.data, nil
}
