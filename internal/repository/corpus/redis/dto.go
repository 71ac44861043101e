package redis

import (
	"time"

	"github.com/konak-cloud/listdex/internal/domain/listing"
)

// listingDTO is the stored JSON shape of a listing.
type listingDTO struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Type         string    `json:"type"`
	Status       string    `json:"status"`
	Price        float64   `json:"price"`
	Currency     string    `json:"currency"`
	Bedrooms     *int      `json:"bedrooms,omitempty"`
	Bathrooms    *int      `json:"bathrooms,omitempty"`
	Area         *float64  `json:"area,omitempty"`
	City         string    `json:"city"`
	Neighborhood string    `json:"neighborhood"`
	Address      string    `json:"address"`
	Latitude     *float64  `json:"latitude,omitempty"`
	Longitude    *float64  `json:"longitude,omitempty"`
	Amenities    []string  `json:"amenities,omitempty"`
	IsFeatured   bool      `json:"isFeatured"`
	IsPremium    bool      `json:"isPremium"`
	Views        int       `json:"views"`
	Favorites    int       `json:"favoritesCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toDTO(l *listing.Listing) listingDTO {
	loc := l.Location()
	d := listingDTO{
		ID:           l.ID(),
		Title:        l.Title(),
		Description:  l.Description(),
		Type:         string(l.Type()),
		Status:       string(l.Status()),
		Price:        l.Price(),
		Currency:     l.Currency(),
		Bedrooms:     l.Bedrooms(),
		Bathrooms:    l.Bathrooms(),
		Area:         l.Area(),
		City:         loc.City,
		Neighborhood: loc.Neighborhood,
		Address:      loc.Address,
		Amenities:    l.Amenities(),
		IsFeatured:   l.Featured(),
		IsPremium:    l.Premium(),
		Views:        l.Views(),
		Favorites:    l.Favorites(),
		CreatedAt:    l.CreatedAt(),
	}
	if c := loc.Coordinates; c != nil {
		lat, lng := c.Latitude, c.Longitude
		d.Latitude = &lat
		d.Longitude = &lng
	}
	return d
}

func (d listingDTO) toDomain() listing.Listing {
	var coords *listing.Coordinates
	if d.Latitude != nil && d.Longitude != nil {
		coords = &listing.Coordinates{Latitude: *d.Latitude, Longitude: *d.Longitude}
	}
	return listing.Reconstruct(listing.Fields{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Type:        listing.Type(d.Type),
		Status:      listing.Status(d.Status),
		Price:       d.Price,
		Currency:    d.Currency,
		Bedrooms:    d.Bedrooms,
		Bathrooms:   d.Bathrooms,
		Area:        d.Area,
		Location: listing.Location{
			City:         d.City,
			Neighborhood: d.Neighborhood,
			Address:      d.Address,
			Coordinates:  coords,
		},
		Amenities: d.Amenities,
		Featured:  d.IsFeatured,
		Premium:   d.IsPremium,
		Views:     d.Views,
		Favorites: d.Favorites,
		CreatedAt: d.CreatedAt,
	})
}
