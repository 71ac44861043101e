package request

import (
	"errors"
	"testing"

	"github.com/konak-cloud/listdex/internal/domain"
)

func TestNew_Defaults(t *testing.T) {
	r, err := New(Params{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Page() != DefaultPage {
		t.Errorf("Page() = %d, want %d", r.Page(), DefaultPage)
	}
	if r.PageSize() != DefaultPageSize {
		t.Errorf("PageSize() = %d, want %d", r.PageSize(), DefaultPageSize)
	}
	if r.SortBy() != Relevance {
		t.Errorf("SortBy() = %q, want relevance", r.SortBy())
	}
	if r.SortOrder() != Desc {
		t.Errorf("SortOrder() = %q, want desc", r.SortOrder())
	}
}

func TestNew_StructuralErrors(t *testing.T) {
	tests := []struct {
		name   string
		params Params
	}{
		{"negative page", Params{Page: -1}},
		{"negative page size", Params{PageSize: -5}},
		{"negative radius", Params{Geo: &GeoFilter{Latitude: 9.5, Longitude: -13.7, RadiusKm: -1}}},
		{"unknown sort key", Params{SortBy: "rating"}},
		{"unknown sort order", Params{SortOrder: "sideways"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.params)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, domain.ErrInvalidRequest) {
				t.Errorf("error %v should wrap ErrInvalidRequest", err)
			}
		})
	}
}

func TestNew_ClampsPageSize(t *testing.T) {
	r, err := New(Params{PageSize: MaxPageSize + 500})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.PageSize() != MaxPageSize {
		t.Errorf("PageSize() = %d, want clamp to %d", r.PageSize(), MaxPageSize)
	}
}

func TestNew_KeepsMalformedBounds(t *testing.T) {
	// Negative numeric bounds are not structural errors: the filter stage
	// drops them with a warning instead of failing the query.
	bad := -100.0
	r, err := New(Params{PriceMin: &bad})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.PriceMin() == nil || *r.PriceMin() != bad {
		t.Error("malformed bound should pass through to the filter stage")
	}
}

func TestNew_CopiesAmenities(t *testing.T) {
	amenities := []string{"pool"}
	r, err := New(Params{Amenities: amenities})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	amenities[0] = "garage"
	if r.Amenities()[0] != "pool" {
		t.Error("request should not alias the caller's slice")
	}
}
