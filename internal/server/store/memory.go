package store

import (
	"context"
	"sync"
)

// MemoryBackend keeps collections in process memory. Used by tests and the
// "memory" storage driver.
type MemoryBackend struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string][]byte)}
}

func (b *MemoryBackend) Load(_ context.Context, name string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	raw, ok := b.data[name]
	if !ok {
		return nil, nil
	}

	out := make([]byte, len(raw))
	copy(out, raw)
	return out, nil
}

func (b *MemoryBackend) Replace(_ context.Context, name string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	b.data[name] = stored
	return nil
}
