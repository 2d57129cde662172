package server

import (
	"log/slog"
	"net/http"

	"artist-dashboard/internal/handlers"
	"artist-dashboard/internal/services"
)

type Server struct {
	metrics     *services.Metrics
	mux         *http.ServeMux
	logger      *slog.Logger
	apiHandlers *handlers.APIHandlers
	sseHandlers *handlers.SSEHandlers
}

type TemplateHandlers struct {
	Dashboard http.HandlerFunc
}

func NewServer(metrics *services.Metrics, logger *slog.Logger, templateHandlers *TemplateHandlers) *Server {
	s := &Server{
		metrics:     metrics,
		mux:         http.NewServeMux(),
		logger:      logger,
		apiHandlers: handlers.NewAPIHandlers(metrics, logger),
		sseHandlers: handlers.NewSSEHandlers(metrics, logger),
	}
	s.setupRoutes(templateHandlers)
	return s
}

func (s *Server) setupRoutes(templateHandlers *TemplateHandlers) {
	s.mux.HandleFunc("GET /{$}", templateHandlers.Dashboard)
	s.mux.HandleFunc("GET /health", s.apiHandlers.HandleHealth)
	s.mux.HandleFunc("GET /admin/stats", s.apiHandlers.HandleStats)

	s.mux.HandleFunc("GET /api/artists", s.apiHandlers.HandleArtists)
	s.mux.HandleFunc("GET /api/artists/{name}", s.apiHandlers.HandleArtist)
	s.mux.HandleFunc("GET /api/artists/{name}/monthly", s.apiHandlers.HandleMonthlySeries)
	s.mux.HandleFunc("GET /api/artists/{name}/countries", s.apiHandlers.HandleCountryRevenue)
	s.mux.HandleFunc("GET /api/artists/{name}/insight", s.apiHandlers.HandleInsight)
	s.mux.HandleFunc("GET /api/rankings", s.apiHandlers.HandleRankings)

	s.mux.HandleFunc("GET /sse/artist", s.sseHandlers.HandleArtist)
	s.mux.HandleFunc("GET /sse/catalog", s.sseHandlers.HandleCatalog)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}
