package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	searchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "listdex",
			Name:      "search_duration_seconds",
			Help:      "Search evaluation duration in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"mode"},
	)

	searchMatched = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "listdex",
			Name:      "search_matched_listings",
			Help:      "Number of listings matched per search (pre-pagination)",
			Buckets:   []float64{0, 1, 5, 10, 50, 100, 500, 1000, 5000},
		},
		[]string{"mode"},
	)
)

// RegisterSearchMetrics registers the search metrics explicitly (no init()),
// so tests touching the search path don't collide on the default registry.
func RegisterSearchMetrics() {
	prometheus.MustRegister(searchDuration)
	prometheus.MustRegister(searchMatched)
}

// ObserveSearch records one search evaluation.
func ObserveSearch(mode string, took time.Duration, matched int) {
	searchDuration.WithLabelValues(mode).Observe(took.Seconds())
	searchMatched.WithLabelValues(mode).Observe(float64(matched))
}
