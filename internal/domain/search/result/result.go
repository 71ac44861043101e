package result

import "github.com/konak-cloud/listdex/internal/domain/listing"

// Pagination describes the returned slice of the ranked set.
type Pagination struct {
	Page       int
	PageSize   int
	TotalItems int
	TotalPages int
}

// Group is one bucket of a breakdown (by type or by neighborhood).
type Group struct {
	Key      string
	Count    int
	AvgPrice float64
}

// Stats are aggregates over the full filtered set, never over a single page.
// On an empty set every numeric field is 0 and group lists are empty.
type Stats struct {
	TotalProperties int
	AvgPrice        float64
	MinPrice        float64
	MaxPrice        float64
	AvgArea         float64
	AvgBedrooms     float64
	ByType          []Group
	ByNeighborhood  []Group
}

// Ref is a compact listing reference returned as an autocomplete candidate.
type Ref struct {
	ID           string
	Title        string
	Type         listing.Type
	Price        float64
	Neighborhood string
}

// Suggestions are autocomplete candidates for a partial text query.
// Lists are always non-nil so they serialize as [] rather than null.
type Suggestions struct {
	Properties    []Ref
	Neighborhoods []string
	Types         []string
}

// Empty returns suggestions with empty (non-nil) lists.
func Empty() Suggestions {
	return Suggestions{
		Properties:    []Ref{},
		Neighborhoods: []string{},
		Types:         []string{},
	}
}

// Envelope is the combined output of one search call. Items hold the
// requested page of the ranked filtered set; Stats always cover the whole
// filtered set. Suggestions is nil unless the request carried a text query.
type Envelope struct {
	Items       []listing.Listing
	Pagination  Pagination
	Stats       Stats
	Suggestions *Suggestions
}
