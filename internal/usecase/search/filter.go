package search

import (
	"strings"

	"go.uber.org/zap"

	"github.com/konak-cloud/listdex/internal/domain/listing"
	"github.com/konak-cloud/listdex/internal/domain/search/request"
)

// predicate is a compiled boolean test over a listing.
type predicate func(l *listing.Listing) bool

// compileFilter builds the conjunction of all set filters, evaluated in a
// fixed order with cheap equality tests first and free text last. Malformed
// values (negative bounds, unknown enum members) are dropped with a warning
// so one bad filter never fails the whole query.
func (s *Service) compileFilter(req *request.Request) predicate {
	var preds []predicate

	if st := req.Status(); st != nil {
		if !st.IsValid() {
			s.logger.Warn("dropping malformed status filter", zap.String("value", string(*st)))
		} else {
			want := *st
			preds = append(preds, func(l *listing.Listing) bool { return l.Status() == want })
		}
	}

	if ty := req.Type(); ty != nil {
		if !ty.IsValid() {
			s.logger.Warn("dropping malformed type filter", zap.String("value", string(*ty)))
		} else {
			want := *ty
			preds = append(preds, func(l *listing.Listing) bool { return l.Type() == want })
		}
	}

	priceMin := s.sanitizeBound("priceMin", req.PriceMin())
	priceMax := s.sanitizeBound("priceMax", req.PriceMax())
	if priceMin != nil || priceMax != nil {
		preds = append(preds, func(l *listing.Listing) bool {
			return inRange(l.Price(), priceMin, priceMax)
		})
	}

	if minBeds := s.sanitizeCount("bedroomsMin", req.BedroomsMin()); minBeds != nil {
		want := *minBeds
		preds = append(preds, func(l *listing.Listing) bool {
			return l.Bedrooms() != nil && *l.Bedrooms() >= want
		})
	}

	if minBaths := s.sanitizeCount("bathroomsMin", req.BathroomsMin()); minBaths != nil {
		want := *minBaths
		preds = append(preds, func(l *listing.Listing) bool {
			return l.Bathrooms() != nil && *l.Bathrooms() >= want
		})
	}

	areaMin := s.sanitizeBound("areaMin", req.AreaMin())
	areaMax := s.sanitizeBound("areaMax", req.AreaMax())
	if areaMin != nil || areaMax != nil {
		preds = append(preds, func(l *listing.Listing) bool {
			return l.Area() != nil && inRange(*l.Area(), areaMin, areaMax)
		})
	}

	if amenities := req.Amenities(); len(amenities) > 0 {
		preds = append(preds, func(l *listing.Listing) bool {
			return l.HasAmenities(amenities)
		})
	}

	if city := req.City(); city != "" {
		needle := strings.ToLower(city)
		preds = append(preds, func(l *listing.Listing) bool {
			return strings.Contains(strings.ToLower(l.Location().City), needle)
		})
	}

	if hood := req.Neighborhood(); hood != "" {
		needle := strings.ToLower(hood)
		preds = append(preds, func(l *listing.Listing) bool {
			return strings.Contains(strings.ToLower(l.Location().Neighborhood), needle)
		})
	}

	if text := req.Text(); text != "" {
		needle := strings.ToLower(text)
		preds = append(preds, func(l *listing.Listing) bool {
			return matchesText(l, needle)
		})
	}

	return func(l *listing.Listing) bool {
		for _, p := range preds {
			if !p(l) {
				return false
			}
		}
		return true
	}
}

// matchesText reports whether needle (already lowercased) occurs in the
// title, description, address or neighborhood.
func matchesText(l *listing.Listing, needle string) bool {
	if strings.Contains(strings.ToLower(l.Title()), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(l.Description()), needle) {
		return true
	}
	loc := l.Location()
	if strings.Contains(strings.ToLower(loc.Address), needle) {
		return true
	}
	return strings.Contains(strings.ToLower(loc.Neighborhood), needle)
}

func inRange(v float64, lo, hi *float64) bool {
	if lo != nil && v < *lo {
		return false
	}
	if hi != nil && v > *hi {
		return false
	}
	return true
}

// sanitizeBound drops a negative numeric bound, logging a warning.
func (s *Service) sanitizeBound(field string, v *float64) *float64 {
	if v == nil {
		return nil
	}
	if *v < 0 {
		s.logger.Warn("dropping malformed numeric filter",
			zap.String("field", field), zap.Float64("value", *v))
		return nil
	}
	return v
}

// sanitizeCount drops a negative room-count bound, logging a warning.
func (s *Service) sanitizeCount(field string, v *int) *int {
	if v == nil {
		return nil
	}
	if *v < 0 {
		s.logger.Warn("dropping malformed numeric filter",
			zap.String("field", field), zap.Int("value", *v))
		return nil
	}
	return v
}
