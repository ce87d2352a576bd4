package store

import (
	"sync"

	"github.com/mesh-intelligence/todos/pkg/types"
)

// MemoryBackend keeps values in a process-local map. Values survive
// Detach/Attach on the same instance but not the process.
type MemoryBackend struct {
	mu       sync.RWMutex
	attached bool
	values   map[string][]byte
}

// NewMemoryBackend creates a detached, empty memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{values: make(map[string][]byte)}
}

// Attach marks the backend usable. DataDir is ignored.
func (b *MemoryBackend) Attach(types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.attached {
		return types.ErrAlreadyAttached
	}
	b.attached = true
	return nil
}

// Detach is idempotent.
func (b *MemoryBackend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.attached = false
	return nil
}

// Get returns a copy of the value stored under key, or ErrNotFound.
func (b *MemoryBackend) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, types.ErrInvalidKey
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.attached {
		return nil, types.ErrDetached
	}
	v, ok := b.values[key]
	if !ok {
		return nil, types.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

// Set stores a copy of value under key.
func (b *MemoryBackend) Set(key string, value []byte) error {
	if key == "" {
		return types.ErrInvalidKey
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.attached {
		return types.ErrDetached
	}
	b.values[key] = append([]byte(nil), value...)
	return nil
}
