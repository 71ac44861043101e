package search

import (
	"context"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/konak-cloud/listdex/internal/domain/listing"
	"github.com/konak-cloud/listdex/internal/domain/search/request"
)

var baseTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// mk builds a valid for-sale apartment and applies mutations.
func mk(t *testing.T, id string, mutate ...func(*listing.Fields)) listing.Listing {
	t.Helper()
	f := listing.Fields{
		ID:        id,
		Title:     "Listing " + id,
		Type:      listing.Apartment,
		Status:    listing.ForSale,
		Price:     100,
		Currency:  "USD",
		CreatedAt: baseTime,
	}
	for _, m := range mutate {
		m(&f)
	}
	l, err := listing.New(f)
	if err != nil {
		t.Fatalf("listing.New(%s): %v", id, err)
	}
	return l
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func typePtr(v listing.Type) *listing.Type { return &v }

func statusPtr(v listing.Status) *listing.Status { return &v }

// mockCorpus returns a fixed snapshot and records the last hint.
type mockCorpus struct {
	mu       sync.Mutex
	items    []listing.Listing
	err      error
	lastHint listing.Hint
	fetches  int
}

func (m *mockCorpus) Fetch(_ context.Context, hint listing.Hint) ([]listing.Listing, error) {
	m.mu.Lock()
	m.lastHint = hint
	m.fetches++
	m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return m.items, nil
}

func (m *mockCorpus) hint() listing.Hint {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastHint
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func newTestService(items ...listing.Listing) (*Service, *mockCorpus) {
	corpus := &mockCorpus{items: items}
	return New(corpus, fixedClock{t: baseTime}, zap.NewNop()), corpus
}

func mustRequest(t *testing.T, p request.Params) *request.Request {
	t.Helper()
	r, err := request.New(p)
	if err != nil {
		t.Fatalf("request.New: %v", err)
	}
	return &r
}

func ids(items []listing.Listing) []string {
	out := make([]string, len(items))
	for i := range items {
		out[i] = items[i].ID()
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
