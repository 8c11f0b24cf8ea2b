// Package destinations implements the destination catalog: CRUD with
// Id uniqueness on top of the record store, with mutations gated by the
// authorization guard.
package destinations

import (
	"context"
	"fmt"
	"sync"

	"tripvault/internal/common"
	"tripvault/internal/logging"
	"tripvault/internal/server/authz"
	"tripvault/internal/server/store"
	"tripvault/internal/server/users"
)

// Catalog owns the destinations collection. Reads are open; Create and
// Delete require an admin grant from the guard. Mutations hold a mutex
// across the load-mutate-replace sequence.
type Catalog struct {
	mu    sync.Mutex
	col   *store.Collection[Destination]
	guard *authz.Guard
	log   logging.Logger
}

func NewCatalog(col *store.Collection[Destination], guard *authz.Guard, log logging.Logger) *Catalog {
	return &Catalog{
		col:   col,
		guard: guard,
		log:   log.With("component", "destinations"),
	}
}

// List returns the full collection in storage order. Insertion order is
// preserved; no sorting is imposed.
func (c *Catalog) List(ctx context.Context) ([]Destination, error) {
	return c.col.Load(ctx)
}

// Create appends rec after an admin grant. Every field is required (a
// zero Id counts as absent); a duplicate Id is common.ErrConflict.
func (c *Catalog) Create(ctx context.Context, identity string, rec Destination) (*Destination, error) {
	if _, err := c.guard.RequireRole(ctx, identity, users.RoleAdmin); err != nil {
		return nil, err
	}

	if rec.ID <= 0 || rec.Name == "" || rec.Description == "" || rec.Location == "" {
		return nil, fmt.Errorf("%w: Id, Name, Description and Location are required", common.ErrValidation)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.col.Load(ctx)
	if err != nil {
		return nil, err
	}

	for _, d := range records {
		if d.ID == rec.ID {
			return nil, fmt.Errorf("%w: id %d already taken", common.ErrConflict, rec.ID)
		}
	}

	records = append(records, rec)
	if err := c.col.Replace(ctx, records); err != nil {
		return nil, err
	}

	c.log.Info(ctx, "destination created", "id", rec.ID, "name", rec.Name)
	return &rec, nil
}

// Delete removes the record with the given id after an admin grant.
// A missing id is common.ErrNotFound and leaves the collection unchanged.
func (c *Catalog) Delete(ctx context.Context, identity string, id int64) error {
	if _, err := c.guard.RequireRole(ctx, identity, users.RoleAdmin); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.col.Load(ctx)
	if err != nil {
		return err
	}

	idx := -1
	for i, d := range records {
		if d.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: destination %d", common.ErrNotFound, id)
	}

	records = append(records[:idx], records[idx+1:]...)
	if err := c.col.Replace(ctx, records); err != nil {
		return err
	}

	c.log.Info(ctx, "destination deleted", "id", id)
	return nil
}
