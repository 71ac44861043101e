package listing

import (
	"testing"
	"time"
)

func validFields() Fields {
	return Fields{
		ID:        "p-1",
		Title:     "Sunny apartment",
		Type:      Apartment,
		Status:    ForSale,
		Price:     1000,
		Currency:  "USD",
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestNew_Valid(t *testing.T) {
	l, err := New(validFields())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.ID() != "p-1" {
		t.Errorf("ID() = %q", l.ID())
	}
	if l.Type() != Apartment {
		t.Errorf("Type() = %q", l.Type())
	}
	if !l.IsActive() {
		t.Error("for-sale listing should be active")
	}
}

func TestNew_Invalid(t *testing.T) {
	neg := -1
	negArea := -5.0
	tests := []struct {
		name   string
		mutate func(*Fields)
	}{
		{"missing id", func(f *Fields) { f.ID = "" }},
		{"bad type", func(f *Fields) { f.Type = "castle" }},
		{"bad status", func(f *Fields) { f.Status = "expired" }},
		{"negative price", func(f *Fields) { f.Price = -1 }},
		{"negative bedrooms", func(f *Fields) { f.Bedrooms = &neg }},
		{"negative bathrooms", func(f *Fields) { f.Bathrooms = &neg }},
		{"negative area", func(f *Fields) { f.Area = &negArea }},
		{"latitude out of range", func(f *Fields) {
			f.Location.Coordinates = &Coordinates{Latitude: 91, Longitude: 0}
		}},
		{"longitude out of range", func(f *Fields) {
			f.Location.Coordinates = &Coordinates{Latitude: 0, Longitude: -181}
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := validFields()
			tc.mutate(&f)
			if _, err := New(f); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestStatus_IsActive(t *testing.T) {
	if !ForRent.IsActive() {
		t.Error("for-rent should be active")
	}
	if Sold.IsActive() || Rented.IsActive() {
		t.Error("sold/rented should not be active")
	}
}

func TestHasAmenities(t *testing.T) {
	f := validFields()
	f.Amenities = []string{"Pool", "garage", "WiFi"}
	l, err := New(f)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if !l.HasAmenities([]string{"pool", "GARAGE"}) {
		t.Error("amenity comparison should be case-insensitive")
	}
	if l.HasAmenities([]string{"pool", "sauna"}) {
		t.Error("missing amenity should fail the superset test")
	}
	if !l.HasAmenities(nil) {
		t.Error("empty requirement always passes")
	}
}

func TestHint_Admits(t *testing.T) {
	sale, _ := New(validFields())
	f := validFields()
	f.ID = "p-2"
	f.Status = Sold
	sold, _ := New(f)

	if !(Hint{}).Admits(&sale) || !(Hint{}).Admits(&sold) {
		t.Error("zero hint admits everything")
	}
	if !(Hint{ActiveOnly: true}).Admits(&sale) {
		t.Error("active hint should admit a for-sale listing")
	}
	if (Hint{ActiveOnly: true}).Admits(&sold) {
		t.Error("active hint should reject a sold listing")
	}
	if !(Hint{Status: Sold}).Admits(&sold) {
		t.Error("status hint should admit a matching listing")
	}
	if (Hint{Status: Sold}).Admits(&sale) {
		t.Error("status hint should reject a non-matching listing")
	}
}
