package search

import (
	"context"
	"time"

	"github.com/konak-cloud/listdex/internal/domain/listing"
)

// Corpus supplies an immutable snapshot of listings for a coarse hint.
// Implementations may over-return relative to the hint; the service
// re-filters exactly and never mutates what it is given.
type Corpus interface {
	Fetch(ctx context.Context, hint listing.Hint) ([]listing.Listing, error)
}

// Clock supplies the current time (injectable for deterministic tests).
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by the wall clock.
func SystemClock() Clock { return systemClock{} }
