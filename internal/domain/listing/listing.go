package listing

import (
	"fmt"
	"strings"
	"time"
)

// Type is the property category.
type Type string

// Property type constants.
const (
	Apartment  Type = "apartment"
	House      Type = "house"
	Villa      Type = "villa"
	Land       Type = "land"
	Commercial Type = "commercial"
	Office     Type = "office"
)

// IsValid checks if the type is one of the supported values.
func (t Type) IsValid() bool {
	switch t {
	case Apartment, House, Villa, Land, Commercial, Office:
		return true
	}
	return false
}

// Status is the listing lifecycle state.
type Status string

// Listing status constants.
const (
	ForSale Status = "for-sale"
	ForRent Status = "for-rent"
	Sold    Status = "sold"
	Rented  Status = "rented"
)

// IsValid checks if the status is one of the supported values.
func (s Status) IsValid() bool {
	switch s {
	case ForSale, ForRent, Sold, Rented:
		return true
	}
	return false
}

// IsActive reports whether the status is an on-market one.
func (s Status) IsActive() bool {
	return s == ForSale || s == ForRent
}

// Coordinates is a WGS84 point. Latitude and longitude are always set
// together; a listing without a known position carries no Coordinates at all.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Location describes where a listing is.
type Location struct {
	City         string
	Neighborhood string
	Address      string
	Coordinates  *Coordinates
}

// Fields carries the raw attributes of a listing for construction and
// storage hydration.
type Fields struct {
	ID          string
	Title       string
	Description string
	Type        Type
	Status      Status
	Price       float64
	Currency    string
	Bedrooms    *int
	Bathrooms   *int
	Area        *float64
	Location    Location
	Amenities   []string
	Featured    bool
	Premium     bool
	Views       int
	Favorites   int
	CreatedAt   time.Time
}

// Listing is a property record (immutable value object). The search core
// only ever reads listings; mutation belongs to the upstream writer.
type Listing struct {
	f Fields
}

// New validates and creates a Listing.
func New(f Fields) (Listing, error) {
	if f.ID == "" {
		return Listing{}, fmt.Errorf("listing ID is required")
	}
	if !f.Type.IsValid() {
		return Listing{}, fmt.Errorf("invalid listing type: %q", f.Type)
	}
	if !f.Status.IsValid() {
		return Listing{}, fmt.Errorf("invalid listing status: %q", f.Status)
	}
	if f.Price < 0 {
		return Listing{}, fmt.Errorf("price must be non-negative, got %v", f.Price)
	}
	if f.Bedrooms != nil && *f.Bedrooms < 0 {
		return Listing{}, fmt.Errorf("bedrooms must be non-negative, got %d", *f.Bedrooms)
	}
	if f.Bathrooms != nil && *f.Bathrooms < 0 {
		return Listing{}, fmt.Errorf("bathrooms must be non-negative, got %d", *f.Bathrooms)
	}
	if f.Area != nil && *f.Area < 0 {
		return Listing{}, fmt.Errorf("area must be non-negative, got %v", *f.Area)
	}
	if c := f.Location.Coordinates; c != nil {
		if c.Latitude < -90 || c.Latitude > 90 || c.Longitude < -180 || c.Longitude > 180 {
			return Listing{}, fmt.Errorf("coordinates out of range: %v, %v", c.Latitude, c.Longitude)
		}
	}
	f.Amenities = append([]string(nil), f.Amenities...)
	return Listing{f: f}, nil
}

// Reconstruct creates a Listing without validation (storage hydration).
func Reconstruct(f Fields) Listing {
	return Listing{f: f}
}

// ID returns the stable listing identifier.
func (l *Listing) ID() string { return l.f.ID }

// Title returns the listing title.
func (l *Listing) Title() string { return l.f.Title }

// Description returns the listing description.
func (l *Listing) Description() string { return l.f.Description }

// Type returns the property category.
func (l *Listing) Type() Type { return l.f.Type }

// Status returns the lifecycle state.
func (l *Listing) Status() Status { return l.f.Status }

// Price returns the asking price.
func (l *Listing) Price() float64 { return l.f.Price }

// Currency returns the price currency code.
func (l *Listing) Currency() string { return l.f.Currency }

// Bedrooms returns the bedroom count, nil when unknown.
func (l *Listing) Bedrooms() *int { return l.f.Bedrooms }

// Bathrooms returns the bathroom count, nil when unknown.
func (l *Listing) Bathrooms() *int { return l.f.Bathrooms }

// Area returns the surface area, nil when unknown.
func (l *Listing) Area() *float64 { return l.f.Area }

// Location returns where the listing is.
func (l *Listing) Location() Location { return l.f.Location }

// Amenities returns the amenity set.
func (l *Listing) Amenities() []string { return l.f.Amenities }

// Featured reports whether the listing is featured.
func (l *Listing) Featured() bool { return l.f.Featured }

// Premium reports whether the listing is premium.
func (l *Listing) Premium() bool { return l.f.Premium }

// Views returns the externally maintained view counter.
func (l *Listing) Views() int { return l.f.Views }

// Favorites returns the externally maintained favorites counter.
func (l *Listing) Favorites() int { return l.f.Favorites }

// CreatedAt returns the creation timestamp.
func (l *Listing) CreatedAt() time.Time { return l.f.CreatedAt }

// Fields returns a copy of the raw attributes (storage serialization).
func (l *Listing) Fields() Fields { return l.f }

// IsActive reports whether the listing is on the market.
func (l *Listing) IsActive() bool { return l.f.Status.IsActive() }

// HasAmenities reports whether the listing carries every required amenity,
// compared case-insensitively.
func (l *Listing) HasAmenities(required []string) bool {
	for _, want := range required {
		found := false
		for _, have := range l.f.Amenities {
			if strings.EqualFold(have, want) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
