package search

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/konak-cloud/listdex/internal/domain"
	"github.com/konak-cloud/listdex/internal/domain/listing"
	"github.com/konak-cloud/listdex/internal/domain/search/request"
	"github.com/konak-cloud/listdex/internal/domain/search/result"
)

// Service is the search entry point: it compiles a request into a filter,
// applies geo proximity, ranks, aggregates and paginates over one corpus
// snapshot. Evaluation is pure; concurrent calls against the same snapshot
// need no coordination.
type Service struct {
	corpus Corpus
	clock  Clock
	logger *zap.Logger
}

// New creates a search service. A nil clock falls back to the system clock,
// a nil logger discards warnings.
func New(corpus Corpus, clock Clock, logger *zap.Logger) *Service {
	if clock == nil {
		clock = SystemClock()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{corpus: corpus, clock: clock, logger: logger}
}

// Search executes an advanced search with no narrowing beyond the request.
func (s *Service) Search(ctx context.Context, req *request.Request) (*result.Envelope, error) {
	return s.run(ctx, req, false)
}

// Browse executes a catalog browse: active listings by default unless the
// request pins a status.
func (s *Service) Browse(ctx context.Context, req *request.Request) (*result.Envelope, error) {
	return s.run(ctx, req, true)
}

func (s *Service) run(ctx context.Context, req *request.Request, activeDefault bool) (*result.Envelope, error) {
	if req == nil {
		return nil, domain.NewInvalidRequest("request", "is required")
	}
	start := s.clock.Now()

	geoFilter := s.sanitizeGeo(req.Geo())

	hint := listing.Hint{}
	if st := req.Status(); st != nil && st.IsValid() {
		hint.Status = *st
	} else if activeDefault {
		hint.ActiveOnly = true
	}
	if geoFilter != nil {
		hint.Geo = &listing.GeoHint{
			Latitude:  geoFilter.Latitude,
			Longitude: geoFilter.Longitude,
			RadiusKm:  geoFilter.RadiusKm,
		}
	}

	snapshot, err := s.corpus.Fetch(ctx, hint)
	if err != nil {
		return nil, fmt.Errorf("fetch corpus: %w", err)
	}

	// The hint only promises a superset; re-apply its narrowing exactly,
	// then the compiled request filter.
	pred := s.compileFilter(req)
	matched := make([]listing.Listing, 0, len(snapshot))
	for i := range snapshot {
		if hint.Admits(&snapshot[i]) && pred(&snapshot[i]) {
			matched = append(matched, snapshot[i])
		}
	}

	matched = applyGeo(matched, geoFilter)

	rankListings(matched, req.SortBy(), req.SortOrder())

	// Stats cover the whole ranked set; suggestions scan the corpus
	// independently, so both can run in parallel.
	var stats result.Stats
	var suggestions *result.Suggestions
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats = computeStats(matched)
		return nil
	})
	if req.Text() != "" {
		g.Go(func() error {
			sg, sErr := s.Suggest(gctx, req.Text())
			if sErr != nil {
				return sErr
			}
			suggestions = &sg
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	items, pagination := paginate(matched, req.Page(), req.PageSize())

	s.logger.Debug("search completed",
		zap.Int("matched", pagination.TotalItems),
		zap.Int("page", pagination.Page),
		zap.Duration("took", s.clock.Now().Sub(start)),
	)

	return &result.Envelope{
		Items:       items,
		Pagination:  pagination,
		Stats:       stats,
		Suggestions: suggestions,
	}, nil
}

// paginate slices [(page-1)*size, +size) out of the ranked set. A page
// beyond range yields an empty items list, not an error.
func paginate(items []listing.Listing, page, size int) ([]listing.Listing, result.Pagination) {
	total := len(items)
	totalPages := 0
	if total > 0 {
		totalPages = (total + size - 1) / size
	}

	pageItems := []listing.Listing{}
	offset := (page - 1) * size
	if offset < total {
		end := offset + size
		if end > total {
			end = total
		}
		pageItems = items[offset:end]
	}

	return pageItems, result.Pagination{
		Page:       page,
		PageSize:   size,
		TotalItems: total,
		TotalPages: totalPages,
	}
}
