package request

import (
	"github.com/konak-cloud/listdex/internal/domain"
	"github.com/konak-cloud/listdex/internal/domain/listing"
)

// Pagination limits and defaults.
const (
	DefaultPage     = 1
	DefaultPageSize = 12
	MaxPageSize     = 100
)

// SortBy is the ordering key.
type SortBy string

// Sort key constants.
const (
	// Relevance is the premium/featured/recency policy and ignores SortOrder.
	Relevance SortBy = "relevance"
	Price     SortBy = "price"
	Area      SortBy = "area"
	Bedrooms  SortBy = "bedrooms"
	Views     SortBy = "views"
	Favorites SortBy = "favorites"
)

// IsValid checks if the sort key is one of the supported values.
func (s SortBy) IsValid() bool {
	switch s {
	case Relevance, Price, Area, Bedrooms, Views, Favorites:
		return true
	}
	return false
}

// SortOrder is the ordering direction for explicit sort keys.
type SortOrder string

// Sort order constants.
const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

// IsValid checks if the order is one of the supported values.
func (o SortOrder) IsValid() bool { return o == Asc || o == Desc }

// GeoFilter restricts matches to a radius around a point.
type GeoFilter struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
}

// Params carries the raw search parameters. Nil / empty fields impose no
// constraint. Out-of-range numeric bounds are accepted here on purpose: the
// filter stage drops them with a warning rather than failing the query.
type Params struct {
	Text         string
	Type         *listing.Type
	Status       *listing.Status
	PriceMin     *float64
	PriceMax     *float64
	BedroomsMin  *int
	BathroomsMin *int
	AreaMin      *float64
	AreaMax      *float64
	Amenities    []string
	City         string
	Neighborhood string
	Geo          *GeoFilter
	SortBy       SortBy
	SortOrder    SortOrder
	Page         int // 0 = default
	PageSize     int // 0 = default
}

// Request is a validated search query.
type Request struct {
	p Params
}

// New validates and normalizes search parameters.
// Defaults: sortBy=relevance, sortOrder=desc, page=1, pageSize=12.
// Structural violations (non-positive page or pageSize, negative radius)
// return domain.ErrInvalidRequest.
func New(p Params) (Request, error) {
	if p.Page == 0 {
		p.Page = DefaultPage
	}
	if p.Page < 1 {
		return Request{}, domain.NewInvalidRequest("page", "must be at least 1")
	}
	if p.PageSize == 0 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize < 1 {
		return Request{}, domain.NewInvalidRequest("pageSize", "must be at least 1")
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	if p.Geo != nil && p.Geo.RadiusKm < 0 {
		return Request{}, domain.NewInvalidRequest("radiusKm", "must be non-negative")
	}
	if p.SortBy == "" {
		p.SortBy = Relevance
	}
	if !p.SortBy.IsValid() {
		return Request{}, domain.NewInvalidRequest("sortBy", "is not a known sort key")
	}
	if p.SortOrder == "" {
		p.SortOrder = Desc
	}
	if !p.SortOrder.IsValid() {
		return Request{}, domain.NewInvalidRequest("sortOrder", "must be asc or desc")
	}
	p.Amenities = append([]string(nil), p.Amenities...)
	return Request{p: p}, nil
}

// Text returns the free-text query, "" when absent.
func (r *Request) Text() string { return r.p.Text }

// Type returns the property type filter, nil when absent.
func (r *Request) Type() *listing.Type { return r.p.Type }

// Status returns the status filter, nil when absent.
func (r *Request) Status() *listing.Status { return r.p.Status }

// PriceMin returns the inclusive lower price bound, nil when absent.
func (r *Request) PriceMin() *float64 { return r.p.PriceMin }

// PriceMax returns the inclusive upper price bound, nil when absent.
func (r *Request) PriceMax() *float64 { return r.p.PriceMax }

// BedroomsMin returns the minimum bedroom count, nil when absent.
func (r *Request) BedroomsMin() *int { return r.p.BedroomsMin }

// BathroomsMin returns the minimum bathroom count, nil when absent.
func (r *Request) BathroomsMin() *int { return r.p.BathroomsMin }

// AreaMin returns the inclusive lower area bound, nil when absent.
func (r *Request) AreaMin() *float64 { return r.p.AreaMin }

// AreaMax returns the inclusive upper area bound, nil when absent.
func (r *Request) AreaMax() *float64 { return r.p.AreaMax }

// Amenities returns the required amenity set.
func (r *Request) Amenities() []string { return r.p.Amenities }

// City returns the city substring filter, "" when absent.
func (r *Request) City() string { return r.p.City }

// Neighborhood returns the neighborhood substring filter, "" when absent.
func (r *Request) Neighborhood() string { return r.p.Neighborhood }

// Geo returns the proximity filter, nil when absent.
func (r *Request) Geo() *GeoFilter { return r.p.Geo }

// SortBy returns the ordering key.
func (r *Request) SortBy() SortBy { return r.p.SortBy }

// SortOrder returns the ordering direction.
func (r *Request) SortOrder() SortOrder { return r.p.SortOrder }

// Page returns the 1-based page index.
func (r *Request) Page() int { return r.p.Page }

// PageSize returns the page size.
func (r *Request) PageSize() int { return r.p.PageSize }
