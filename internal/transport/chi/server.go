package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/konak-cloud/listdex/internal/domain"
	domreq "github.com/konak-cloud/listdex/internal/domain/search/request"
	logpkg "github.com/konak-cloud/listdex/internal/logger"
	"github.com/konak-cloud/listdex/internal/metrics"
	searchuc "github.com/konak-cloud/listdex/internal/usecase/search"
)

// Pinger checks corpus store connectivity for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server exposes the search service over a query-string GET API.
type Server struct {
	search *searchuc.Service
	store  Pinger
	logger *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(search *searchuc.Service, store Pinger, logger *zap.Logger) *Server {
	return &Server{search: search, store: store, logger: logger}
}

// Routes registers the API endpoints on a chi router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/api/properties", s.handleBrowse)
	r.Get("/api/search", s.handleSearch)
	r.Get("/api/suggestions", s.handleSuggestions)
	r.Get("/healthz", s.handleHealth)
}

// handleBrowse handles GET /api/properties: catalog browse, active listings
// unless the caller pins a status.
func (s *Server) handleBrowse(w http.ResponseWriter, r *http.Request) {
	s.handleQuery(w, r, "browse")
}

// handleSearch handles GET /api/search: advanced search, no default narrowing.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	s.handleQuery(w, r, "search")
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request, mode string) {
	log := logpkg.FromContext(r.Context())
	params := parseParams(r.URL.Query(), log)

	req, err := domreq.New(params)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	start := time.Now()
	run := s.search.Search
	if mode == "browse" {
		run = s.search.Browse
	}
	res, err := run(r.Context(), &req)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	envelope := envelopeToDTO(res)
	metrics.ObserveSearch(mode, time.Since(start), envelope.Pagination.TotalItems)
	writeJSON(w, http.StatusOK, envelope)
}

// handleSuggestions handles GET /api/suggestions?q=.
func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	sugg, err := s.search.Suggest(r.Context(), q)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, suggestionsToDTO(&sugg))
}

// handleHealth handles GET /healthz.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.store != nil {
		if err := s.store.Ping(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "corpus_unavailable", "corpus store is not reachable")
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrInvalidRequest) {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	logpkg.FromContext(r.Context()).Error("search failed", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
}

type errorDTO struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorDTO{Code: code, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
