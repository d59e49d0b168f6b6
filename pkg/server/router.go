package server

import (
	"log/slog"
	"net/http"
	"sort"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nicheapis/apisuite/pkg/catalog"
	"github.com/nicheapis/apisuite/pkg/serializer"
)

// setupRoutes configures all HTTP routes and middleware.
func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	// Default handler
	mux.HandleFunc("/", s.withMiddleware(s.handleIndex))

	// System endpoints (no rate limiting)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/ready", s.handleReady)
	mux.Handle("/metrics", promhttp.Handler())

	// Catalog endpoints behind the middleware chain
	mux.HandleFunc("/v1/catalog", s.withMiddleware(s.handleCatalog))
	mux.HandleFunc("/v1/catalog/{id}", s.withMiddleware(s.handleListing))

	// Application-specific handlers from config
	patterns := make([]string, 0, len(s.config.Handlers))
	for pattern := range s.config.Handlers {
		patterns = append(patterns, pattern)
	}
	sort.Strings(patterns)
	for _, pattern := range patterns {
		mux.HandleFunc(pattern, s.withMiddleware(s.config.Handlers[pattern]))
	}

	return mux
}

// handleIndex serves the suite listing on the default route.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		WriteError(w, r, http.StatusNotFound, ErrCodeNotFound,
			"Route not found", false, map[string]any{"path": r.URL.Path})
		return
	}

	slog.Debug("handling default route",
		"method", r.Method,
		"remote_addr", r.RemoteAddr,
		"user_agent", r.UserAgent(),
	)

	resp := IndexResponse{
		Message:       "Niche Business APIs Suite is running!",
		Version:       s.config.Version,
		AvailableAPIs: catalog.ServiceNames(),
		Routes: []string{
			"GET /v1/catalog",
			"GET /v1/catalog/{id}",
			"GET /health",
			"GET /ready",
			"GET /metrics",
		},
	}

	s.mu.RLock()
	resp.Ready = s.ready
	s.mu.RUnlock()

	serializer.RespondJSON(w, http.StatusOK, resp)
}

// handleCatalog serves the full service catalog.
func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed,
			"Method not allowed", false, nil)
		return
	}
	serializer.RespondJSON(w, http.StatusOK, catalog.Services())
}

// handleListing serves the marketplace listing for one marketed API.
func (s *Server) handleListing(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed,
			"Method not allowed", false, nil)
		return
	}

	id := r.PathValue("id")
	listing, err := catalog.GenerateListing(id)
	if err != nil {
		WriteError(w, r, http.StatusNotFound, ErrCodeNotFound,
			err.Error(), false, map[string]any{"id": id})
		return
	}
	serializer.RespondJSON(w, http.StatusOK, listing)
}
