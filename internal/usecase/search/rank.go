package search

import (
	"sort"

	"github.com/konak-cloud/listdex/internal/domain/listing"
	"github.com/konak-cloud/listdex/internal/domain/search/request"
)

// rankListings orders the filtered set in place. Relevance ranks premium
// first, then featured, then newest; any other key compares per sortOrder.
// Every ordering ends on id ascending: without that final tie-break,
// equal-key items could swap between adjacent pages and duplicate or drop
// entries while paging.
func rankListings(items []listing.Listing, by request.SortBy, order request.SortOrder) {
	sort.Slice(items, func(i, j int) bool {
		return rankLess(&items[i], &items[j], by, order)
	})
}

func rankLess(a, b *listing.Listing, by request.SortBy, order request.SortOrder) bool {
	if by == request.Relevance {
		if a.Premium() != b.Premium() {
			return a.Premium()
		}
		if a.Featured() != b.Featured() {
			return a.Featured()
		}
		if !a.CreatedAt().Equal(b.CreatedAt()) {
			return a.CreatedAt().After(b.CreatedAt())
		}
		return a.ID() < b.ID()
	}

	av, bv := sortKey(a, by), sortKey(b, by)
	if av != bv {
		if order == request.Asc {
			return av < bv
		}
		return av > bv
	}
	return a.ID() < b.ID()
}

// sortKey extracts the comparable value for an explicit sort key. Optional
// fields rank as 0 when missing.
func sortKey(l *listing.Listing, by request.SortBy) float64 {
	switch by {
	case request.Price:
		return l.Price()
	case request.Area:
		if a := l.Area(); a != nil {
			return *a
		}
	case request.Bedrooms:
		if b := l.Bedrooms(); b != nil {
			return float64(*b)
		}
	case request.Views:
		return float64(l.Views())
	case request.Favorites:
		return float64(l.Favorites())
	}
	return 0
}
