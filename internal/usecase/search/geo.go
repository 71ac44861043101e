package search

import (
	"go.uber.org/zap"

	"github.com/konak-cloud/listdex/internal/domain/geo"
	"github.com/konak-cloud/listdex/internal/domain/listing"
	"github.com/konak-cloud/listdex/internal/domain/search/request"
)

// sanitizeGeo validates the proximity filter, disabling it with a warning
// when the query point is out of range. A negative radius never reaches this
// point (request.New rejects it as a structural error).
func (s *Service) sanitizeGeo(g *request.GeoFilter) *request.GeoFilter {
	if g == nil {
		return nil
	}
	if !geo.ValidateCoordinates(g.Latitude, g.Longitude) {
		s.logger.Warn("disabling geo filter: query point out of range",
			zap.Float64("latitude", g.Latitude),
			zap.Float64("longitude", g.Longitude))
		return nil
	}
	return g
}

// applyGeo keeps listings whose own coordinates are within RadiusKm of the
// query point (inclusive boundary). Listings without coordinates are
// excluded whenever a geo filter is set; a nil filter passes everything
// through untouched.
func applyGeo(items []listing.Listing, g *request.GeoFilter) []listing.Listing {
	if g == nil {
		return items
	}
	kept := make([]listing.Listing, 0, len(items))
	for i := range items {
		c := items[i].Location().Coordinates
		if c == nil {
			continue
		}
		d := geo.HaversineKm(g.Latitude, g.Longitude, c.Latitude, c.Longitude)
		if d <= g.RadiusKm {
			kept = append(kept, items[i])
		}
	}
	return kept
}
