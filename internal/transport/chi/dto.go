package chi

import (
	"time"

	"github.com/konak-cloud/listdex/internal/domain/listing"
	"github.com/konak-cloud/listdex/internal/domain/search/result"
)

// Wire shapes mirror the envelope 1:1 for the existing query-string-driven
// consumers; field names here are the compatibility contract.

type locationDTO struct {
	City         string   `json:"city"`
	Neighborhood string   `json:"neighborhood"`
	Address      string   `json:"address"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
}

type listingDTO struct {
	ID             string      `json:"id"`
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	Type           string      `json:"type"`
	Status         string      `json:"status"`
	Price          float64     `json:"price"`
	Currency       string      `json:"currency"`
	Bedrooms       *int        `json:"bedrooms,omitempty"`
	Bathrooms      *int        `json:"bathrooms,omitempty"`
	Area           *float64    `json:"area,omitempty"`
	Location       locationDTO `json:"location"`
	Amenities      []string    `json:"amenities"`
	IsFeatured     bool        `json:"isFeatured"`
	IsPremium      bool        `json:"isPremium"`
	Views          int         `json:"views"`
	FavoritesCount int         `json:"favoritesCount"`
	CreatedAt      time.Time   `json:"createdAt"`
}

type paginationDTO struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

type groupDTO struct {
	Key      string  `json:"key"`
	Count    int     `json:"count"`
	AvgPrice float64 `json:"avgPrice"`
}

type statsDTO struct {
	TotalProperties int        `json:"totalProperties"`
	AvgPrice        float64    `json:"avgPrice"`
	MinPrice        float64    `json:"minPrice"`
	MaxPrice        float64    `json:"maxPrice"`
	AvgArea         float64    `json:"avgArea"`
	AvgBedrooms     float64    `json:"avgBedrooms"`
	ByType          []groupDTO `json:"byType"`
	ByNeighborhood  []groupDTO `json:"byNeighborhood"`
}

type suggestionRefDTO struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Type         string  `json:"type"`
	Price        float64 `json:"price"`
	Neighborhood string  `json:"neighborhood"`
}

type suggestionsDTO struct {
	Properties    []suggestionRefDTO `json:"properties"`
	Neighborhoods []string           `json:"neighborhoods"`
	Types         []string           `json:"types"`
}

type envelopeDTO struct {
	Items       []listingDTO    `json:"items"`
	Pagination  paginationDTO   `json:"pagination"`
	Stats       statsDTO        `json:"stats"`
	Suggestions *suggestionsDTO `json:"suggestions,omitempty"`
}

func listingToDTO(l *listing.Listing) listingDTO {
	loc := l.Location()
	d := listingDTO{
		ID:          l.ID(),
		Title:       l.Title(),
		Description: l.Description(),
		Type:        string(l.Type()),
		Status:      string(l.Status()),
		Price:       l.Price(),
		Currency:    l.Currency(),
		Bedrooms:    l.Bedrooms(),
		Bathrooms:   l.Bathrooms(),
		Area:        l.Area(),
		Location: locationDTO{
			City:         loc.City,
			Neighborhood: loc.Neighborhood,
			Address:      loc.Address,
		},
		Amenities:      l.Amenities(),
		IsFeatured:     l.Featured(),
		IsPremium:      l.Premium(),
		Views:          l.Views(),
		FavoritesCount: l.Favorites(),
		CreatedAt:      l.CreatedAt(),
	}
	if d.Amenities == nil {
		d.Amenities = []string{}
	}
	if c := loc.Coordinates; c != nil {
		lat, lng := c.Latitude, c.Longitude
		d.Location.Latitude = &lat
		d.Location.Longitude = &lng
	}
	return d
}

func groupsToDTO(groups []result.Group) []groupDTO {
	out := make([]groupDTO, len(groups))
	for i, g := range groups {
		out[i] = groupDTO{Key: g.Key, Count: g.Count, AvgPrice: g.AvgPrice}
	}
	return out
}

func suggestionsToDTO(s *result.Suggestions) *suggestionsDTO {
	dto := &suggestionsDTO{
		Properties:    make([]suggestionRefDTO, len(s.Properties)),
		Neighborhoods: s.Neighborhoods,
		Types:         s.Types,
	}
	for i, ref := range s.Properties {
		dto.Properties[i] = suggestionRefDTO{
			ID:           ref.ID,
			Title:        ref.Title,
			Type:         string(ref.Type),
			Price:        ref.Price,
			Neighborhood: ref.Neighborhood,
		}
	}
	if dto.Neighborhoods == nil {
		dto.Neighborhoods = []string{}
	}
	if dto.Types == nil {
		dto.Types = []string{}
	}
	return dto
}

func envelopeToDTO(env *result.Envelope) *envelopeDTO {
	dto := &envelopeDTO{
		Items: make([]listingDTO, len(env.Items)),
		Pagination: paginationDTO{
			Page:       env.Pagination.Page,
			PageSize:   env.Pagination.PageSize,
			TotalItems: env.Pagination.TotalItems,
			TotalPages: env.Pagination.TotalPages,
		},
		Stats: statsDTO{
			TotalProperties: env.Stats.TotalProperties,
			AvgPrice:        env.Stats.AvgPrice,
			MinPrice:        env.Stats.MinPrice,
			MaxPrice:        env.Stats.MaxPrice,
			AvgArea:         env.Stats.AvgArea,
			AvgBedrooms:     env.Stats.AvgBedrooms,
			ByType:          groupsToDTO(env.Stats.ByType),
			ByNeighborhood:  groupsToDTO(env.Stats.ByNeighborhood),
		},
	}
	for i := range env.Items {
		dto.Items[i] = listingToDTO(&env.Items[i])
	}
	if env.Suggestions != nil {
		dto.Suggestions = suggestionsToDTO(env.Suggestions)
	}
	return dto
}
