// Package store implements the record store: a durable mapping from a
// collection name to an ordered sequence of typed records. The store has no
// cache; every read loads the whole collection from the backing and every
// mutation atomically replaces it. Callers fetch a snapshot, mutate a copy,
// and submit a full replacement.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"tripvault/internal/common"
)

// Backend is the durable backing: a key-addressed blob store. Load returns
// nil (no error) when the collection has never been written. Replace must be
// atomic at the granularity of one full-collection write; partial or
// streamed writes are never assumed.
type Backend interface {
	Load(ctx context.Context, name string) ([]byte, error)
	Replace(ctx context.Context, name string, data []byte) error
}

// Collection is a typed view over one named collection. The zero value is
// not usable; construct with NewCollection.
type Collection[T any] struct {
	name    string
	backend Backend
}

func NewCollection[T any](backend Backend, name string) *Collection[T] {
	return &Collection[T]{name: name, backend: backend}
}

// Load materializes the full collection, in storage order. An absent
// collection loads as an empty (non-nil) slice. Backend and decode failures
// surface as common.ErrStorage.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	raw, err := c.backend.Load(ctx, c.name)
	if err != nil {
		return nil, fmt.Errorf("%w: load %s: %v", common.ErrStorage, c.name, err)
	}

	if len(raw) == 0 {
		return []T{}, nil
	}

	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", common.ErrStorage, c.name, err)
	}

	return records, nil
}

// Replace rewrites the whole collection with the given records.
func (c *Collection[T]) Replace(ctx context.Context, records []T) error {
	if records == nil {
		records = []T{}
	}

	raw, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", common.ErrStorage, c.name, err)
	}

	if err := c.backend.Replace(ctx, c.name, raw); err != nil {
		return fmt.Errorf("%w: replace %s: %v", common.ErrStorage, c.name, err)
	}

	return nil
}
