package search

import (
	"sort"

	"github.com/konak-cloud/listdex/internal/domain/listing"
	"github.com/konak-cloud/listdex/internal/domain/search/result"
)

// maxNeighborhoodGroups caps the byNeighborhood breakdown.
const maxNeighborhoodGroups = 10

// computeStats aggregates over the full filtered set, never over a page.
// Price is always present so it contributes to every average; area and
// bedrooms average only over listings that carry the field. An empty set
// yields zeroed numerics and empty group lists.
func computeStats(items []listing.Listing) result.Stats {
	stats := result.Stats{
		ByType:         []result.Group{},
		ByNeighborhood: []result.Group{},
	}
	if len(items) == 0 {
		return stats
	}

	stats.TotalProperties = len(items)
	stats.MinPrice = items[0].Price()
	stats.MaxPrice = items[0].Price()

	var priceSum, areaSum, bedSum float64
	var areaN, bedN int
	byType := map[string]*bucket{}
	byHood := map[string]*bucket{}

	for i := range items {
		l := &items[i]
		p := l.Price()
		priceSum += p
		if p < stats.MinPrice {
			stats.MinPrice = p
		}
		if p > stats.MaxPrice {
			stats.MaxPrice = p
		}
		if a := l.Area(); a != nil {
			areaSum += *a
			areaN++
		}
		if b := l.Bedrooms(); b != nil {
			bedSum += float64(*b)
			bedN++
		}
		accumulate(byType, string(l.Type()), p)
		if hood := l.Location().Neighborhood; hood != "" {
			accumulate(byHood, hood, p)
		}
	}

	stats.AvgPrice = priceSum / float64(len(items))
	if areaN > 0 {
		stats.AvgArea = areaSum / float64(areaN)
	}
	if bedN > 0 {
		stats.AvgBedrooms = bedSum / float64(bedN)
	}
	stats.ByType = groupsFrom(byType, 0)
	stats.ByNeighborhood = groupsFrom(byHood, maxNeighborhoodGroups)
	return stats
}

type bucket struct {
	count    int
	priceSum float64
}

func accumulate(m map[string]*bucket, key string, price float64) {
	b, ok := m[key]
	if !ok {
		b = &bucket{}
		m[key] = b
	}
	b.count++
	b.priceSum += price
}

// groupsFrom flattens buckets into groups ordered by count descending, key
// ascending on ties, truncated to limit when limit > 0.
func groupsFrom(m map[string]*bucket, limit int) []result.Group {
	groups := make([]result.Group, 0, len(m))
	for key, b := range m {
		groups = append(groups, result.Group{
			Key:      key,
			Count:    b.count,
			AvgPrice: b.priceSum / float64(b.count),
		})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}
		return groups[i].Key < groups[j].Key
	})
	if limit > 0 && len(groups) > limit {
		groups = groups[:limit]
	}
	return groups
}
