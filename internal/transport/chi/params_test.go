package chi

import (
	"net/url"
	"testing"

	"go.uber.org/zap"

	"github.com/konak-cloud/listdex/internal/domain/listing"
	domreq "github.com/konak-cloud/listdex/internal/domain/search/request"
)

func TestParseParams_Full(t *testing.T) {
	q := url.Values{}
	q.Set("q", "  sea view  ")
	q.Set("type", "villa")
	q.Set("status", "for-rent")
	q.Set("minPrice", "100")
	q.Set("maxPrice", "900")
	q.Set("minBedrooms", "2")
	q.Set("minBathrooms", "1")
	q.Set("minArea", "40")
	q.Set("maxArea", "120.5")
	q.Set("amenities", "pool, garage ,,wifi")
	q.Set("city", "Conakry")
	q.Set("neighborhood", "Kipé")
	q.Set("lat", "9.5")
	q.Set("lng", "-13.7")
	q.Set("radius", "3")
	q.Set("sortBy", "price")
	q.Set("sortOrder", "asc")
	q.Set("page", "2")
	q.Set("limit", "24")

	p := parseParams(q, zap.NewNop())

	if p.Text != "sea view" {
		t.Errorf("Text = %q", p.Text)
	}
	if p.Type == nil || *p.Type != listing.Villa {
		t.Errorf("Type = %v", p.Type)
	}
	if p.Status == nil || *p.Status != listing.ForRent {
		t.Errorf("Status = %v", p.Status)
	}
	if p.PriceMin == nil || *p.PriceMin != 100 || p.PriceMax == nil || *p.PriceMax != 900 {
		t.Errorf("price bounds = %v/%v", p.PriceMin, p.PriceMax)
	}
	if p.BedroomsMin == nil || *p.BedroomsMin != 2 || p.BathroomsMin == nil || *p.BathroomsMin != 1 {
		t.Errorf("room bounds = %v/%v", p.BedroomsMin, p.BathroomsMin)
	}
	if p.AreaMin == nil || *p.AreaMin != 40 || p.AreaMax == nil || *p.AreaMax != 120.5 {
		t.Errorf("area bounds = %v/%v", p.AreaMin, p.AreaMax)
	}
	if len(p.Amenities) != 3 || p.Amenities[0] != "pool" || p.Amenities[1] != "garage" || p.Amenities[2] != "wifi" {
		t.Errorf("Amenities = %v", p.Amenities)
	}
	if p.Geo == nil || p.Geo.Latitude != 9.5 || p.Geo.Longitude != -13.7 || p.Geo.RadiusKm != 3 {
		t.Errorf("Geo = %+v", p.Geo)
	}
	if p.SortBy != domreq.Price || p.SortOrder != domreq.Asc {
		t.Errorf("sort = %v %v", p.SortBy, p.SortOrder)
	}
	if p.Page != 2 || p.PageSize != 24 {
		t.Errorf("page/limit = %d/%d", p.Page, p.PageSize)
	}
}

func TestParseParams_Empty(t *testing.T) {
	p := parseParams(url.Values{}, zap.NewNop())

	if p.Type != nil || p.Status != nil || p.PriceMin != nil || p.Geo != nil {
		t.Errorf("empty query should leave filters unset, got %+v", p)
	}
	if p.Page != 0 || p.PageSize != 0 {
		t.Errorf("empty query should leave paging at zero for downstream defaults, got %d/%d",
			p.Page, p.PageSize)
	}
}

func TestParseParams_DropsUnparseableNumerics(t *testing.T) {
	q := url.Values{}
	q.Set("minPrice", "cheap")
	q.Set("minBedrooms", "many")
	q.Set("page", "first")

	p := parseParams(q, zap.NewNop())

	if p.PriceMin != nil || p.BedroomsMin != nil {
		t.Errorf("unparseable filters should be dropped, got %+v", p)
	}
	if p.Page != 0 {
		t.Errorf("unparseable page should fall back to default, got %d", p.Page)
	}
}

func TestParseParams_GeoDefaultRadius(t *testing.T) {
	q := url.Values{}
	q.Set("lat", "9.5")
	q.Set("lng", "-13.7")

	p := parseParams(q, zap.NewNop())

	if p.Geo == nil || p.Geo.RadiusKm != defaultRadiusKm {
		t.Errorf("Geo = %+v, want default radius %v", p.Geo, float64(defaultRadiusKm))
	}
}

func TestParseParams_GeoHalfSpecified(t *testing.T) {
	for _, q := range []url.Values{
		{"lat": {"9.5"}},
		{"lng": {"-13.7"}},
		{"lat": {"north"}, "lng": {"-13.7"}},
		{"lat": {"9.5"}, "lng": {"-13.7"}, "radius": {"wide"}},
	} {
		if p := parseParams(q, zap.NewNop()); p.Geo != nil {
			t.Errorf("query %v should disable geo, got %+v", q, p.Geo)
		}
	}
}

func TestParseParams_NegativeRadiusPassesThrough(t *testing.T) {
	q := url.Values{}
	q.Set("lat", "9.5")
	q.Set("lng", "-13.7")
	q.Set("radius", "-2")

	p := parseParams(q, zap.NewNop())

	if p.Geo == nil || p.Geo.RadiusKm != -2 {
		t.Fatalf("negative radius must reach validation untouched, got %+v", p.Geo)
	}
	if _, err := domreq.New(p); err == nil {
		t.Error("negative radius should fail request validation")
	}
}

func TestParseParams_DropsUnknownSort(t *testing.T) {
	q := url.Values{}
	q.Set("sortBy", "karma")
	q.Set("sortOrder", "sideways")

	p := parseParams(q, zap.NewNop())

	if p.SortBy != "" || p.SortOrder != "" {
		t.Errorf("unknown sort values should be dropped, got %q %q", p.SortBy, p.SortOrder)
	}
}
