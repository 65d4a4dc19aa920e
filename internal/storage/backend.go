package storage

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned by a Backend when the key has no stored value.
var ErrNotFound = errors.New("storage: key not found")

// Backend is one durable key-value slot provider. Implementations hold raw
// serialized bytes; encoding and fallback policy live in Cell.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// MemoryBackend keeps values in process memory. It is the degraded-mode
// fallback when no durable backend is configured and the backend used by
// most tests.
type MemoryBackend struct {
	mu    sync.Mutex
	slots map[string][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{slots: make(map[string][]byte)}
}

func (m *MemoryBackend) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.slots[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (m *MemoryBackend) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	m.slots[key] = stored
	return nil
}
