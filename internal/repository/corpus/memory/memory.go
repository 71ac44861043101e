package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/konak-cloud/listdex/internal/domain"
	"github.com/konak-cloud/listdex/internal/domain/listing"
)

// Corpus is an in-memory listing store. It backs the memory driver, the
// seeder's dry-run mode and the test suites. Fetch returns an independent
// snapshot ordered by id so iteration order is deterministic.
type Corpus struct {
	mu    sync.RWMutex
	items map[string]listing.Listing
}

// New creates an empty corpus.
func New() *Corpus {
	return &Corpus{items: map[string]listing.Listing{}}
}

// NewFrom creates a corpus seeded with the given listings.
func NewFrom(items ...listing.Listing) *Corpus {
	c := New()
	for _, l := range items {
		c.items[l.ID()] = l
	}
	return c
}

// Put stores or replaces a listing.
func (c *Corpus) Put(_ context.Context, l listing.Listing) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[l.ID()] = l
	return nil
}

// Delete removes a listing by id.
func (c *Corpus) Delete(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(c.items, id)
	return nil
}

// Fetch returns the listings admitted by the hint, ordered by id. The geo
// part of the hint is ignored (the returned set is a superset by contract).
func (c *Corpus) Fetch(_ context.Context, hint listing.Hint) ([]listing.Listing, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]listing.Listing, 0, len(c.items))
	for _, l := range c.items {
		if hint.Admits(&l) {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out, nil
}

// Len returns the number of stored listings.
func (c *Corpus) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Ping always succeeds.
func (c *Corpus) Ping(_ context.Context) error { return nil }

// Close is a no-op.
func (c *Corpus) Close() {}
