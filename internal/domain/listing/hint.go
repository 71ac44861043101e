package listing

// GeoHint marks the area a fetch should cover.
type GeoHint struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
}

// Hint narrows a corpus fetch. Hints are coarse: an implementation may
// over-return (and the zero value fetches everything), the search core
// re-filters exactly.
type Hint struct {
	Status     Status // "" = any status
	ActiveOnly bool   // restrict to on-market listings; ignored when Status is set
	Geo        *GeoHint
}

// Admits reports whether a listing plausibly belongs to the hinted subset.
// Geo is intentionally not checked here: hints only promise a superset.
func (h Hint) Admits(l *Listing) bool {
	if h.Status != "" {
		return l.Status() == h.Status
	}
	if h.ActiveOnly {
		return l.IsActive()
	}
	return true
}
