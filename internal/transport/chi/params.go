package chi

import (
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/konak-cloud/listdex/internal/domain/listing"
	domreq "github.com/konak-cloud/listdex/internal/domain/search/request"
)

// parseParams maps the legacy query-string surface onto typed search params.
// Unparseable optional values are dropped with a warning so a bad filter
// never turns into a failed request; structural fields (page, limit, radius)
// pass through numerically and are judged by request.New.
func parseParams(q url.Values, log *zap.Logger) domreq.Params {
	p := domreq.Params{
		Text:         strings.TrimSpace(q.Get("q")),
		City:         strings.TrimSpace(q.Get("city")),
		Neighborhood: strings.TrimSpace(q.Get("neighborhood")),
	}

	if v := q.Get("type"); v != "" {
		t := listing.Type(v)
		p.Type = &t
	}
	if v := q.Get("status"); v != "" {
		st := listing.Status(v)
		p.Status = &st
	}

	p.PriceMin = parseFloat(q, "minPrice", log)
	p.PriceMax = parseFloat(q, "maxPrice", log)
	p.AreaMin = parseFloat(q, "minArea", log)
	p.AreaMax = parseFloat(q, "maxArea", log)
	p.BedroomsMin = parseInt(q, "minBedrooms", log)
	p.BathroomsMin = parseInt(q, "minBathrooms", log)

	if v := q.Get("amenities"); v != "" {
		for _, a := range strings.Split(v, ",") {
			if a = strings.TrimSpace(a); a != "" {
				p.Amenities = append(p.Amenities, a)
			}
		}
	}

	p.Geo = parseGeo(q, log)

	if v := q.Get("sortBy"); v != "" {
		by := domreq.SortBy(v)
		if by.IsValid() {
			p.SortBy = by
		} else {
			log.Warn("dropping unknown sortBy", zap.String("value", v))
		}
	}
	if v := q.Get("sortOrder"); v != "" {
		order := domreq.SortOrder(v)
		if order.IsValid() {
			p.SortOrder = order
		} else {
			log.Warn("dropping unknown sortOrder", zap.String("value", v))
		}
	}

	if n := parseInt(q, "page", log); n != nil {
		p.Page = *n
	}
	if n := parseInt(q, "limit", log); n != nil {
		p.PageSize = *n
	}
	return p
}

// parseGeo assembles the proximity filter. A half-specified point or an
// unparseable coordinate disables geo with a warning; the radius value
// itself is passed through so a negative one still fails request validation.
func parseGeo(q url.Values, log *zap.Logger) *domreq.GeoFilter {
	latStr, lngStr, radStr := q.Get("lat"), q.Get("lng"), q.Get("radius")
	if latStr == "" && lngStr == "" && radStr == "" {
		return nil
	}
	if latStr == "" || lngStr == "" {
		log.Warn("disabling geo filter: incomplete coordinates",
			zap.String("lat", latStr), zap.String("lng", lngStr))
		return nil
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		log.Warn("disabling geo filter: bad latitude", zap.String("value", latStr))
		return nil
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		log.Warn("disabling geo filter: bad longitude", zap.String("value", lngStr))
		return nil
	}

	radius := defaultRadiusKm
	if radStr != "" {
		radius, err = strconv.ParseFloat(radStr, 64)
		if err != nil {
			log.Warn("disabling geo filter: bad radius", zap.String("value", radStr))
			return nil
		}
	}
	return &domreq.GeoFilter{Latitude: lat, Longitude: lng, RadiusKm: radius}
}

// defaultRadiusKm applies when lat/lng are given without a radius.
const defaultRadiusKm float64 = 10

func parseFloat(q url.Values, name string, log *zap.Logger) *float64 {
	v := q.Get(name)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Warn("dropping unparseable numeric param",
			zap.String("param", name), zap.String("value", v))
		return nil
	}
	return &f
}

func parseInt(q url.Values, name string, log *zap.Logger) *int {
	v := q.Get(name)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn("dropping unparseable numeric param",
			zap.String("param", name), zap.String("value", v))
		return nil
	}
	return &n
}
