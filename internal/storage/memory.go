package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/healthmate/healthmate-backend/internal/common"
)

// MemoryStore is an in-process ObjectStore used by tests and the
// analyze CLI's dry-run mode.
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string][]byte

	// FailDownload forces Download to fail, simulating an unreachable
	// object store.
	FailDownload bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string][]byte)}
}

func (s *MemoryStore) Upload(_ context.Context, key, _ string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: read upload: %v", common.ErrUpstreamUnavailable, err)
	}
	s.mu.Lock()
	s.objects[key] = data
	s.mu.Unlock()
	return s.PublicURL(key), nil
}

func (s *MemoryStore) Download(_ context.Context, key string) (io.ReadCloser, error) {
	if s.FailDownload {
		return nil, fmt.Errorf("%w: store unreachable", common.ErrUpstreamUnavailable)
	}
	s.mu.RLock()
	data, ok := s.objects[key]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: missing object %q", common.ErrUpstreamUnavailable, key)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.objects, key)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) PublicURL(key string) string {
	return "memory://" + key
}

// Len reports how many objects are held. Test helper.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}
