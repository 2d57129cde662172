package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"artist-dashboard/internal/errors"
	"artist-dashboard/internal/observability"
	"artist-dashboard/internal/services"
)

const cacheControl = "public, max-age=300"

type APIHandlers struct {
	metrics *services.Metrics
	logger  *slog.Logger
}

func NewAPIHandlers(metrics *services.Metrics, logger *slog.Logger) *APIHandlers {
	return &APIHandlers{
		metrics: metrics,
		logger:  logger,
	}
}

func (h *APIHandlers) HandleArtists(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.metrics.GetCatalog(), cachedHeaders())
}

func (h *APIHandlers) HandleArtist(w http.ResponseWriter, r *http.Request) {
	artist, err := h.metrics.GetArtist(r.PathValue("name"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	errors.WriteSuccessWithHeaders(w, artist, cachedHeaders())
}

func (h *APIHandlers) HandleMonthlySeries(w http.ResponseWriter, r *http.Request) {
	series, err := h.metrics.GetMonthlySeries(r.PathValue("name"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	errors.WriteSuccessWithHeaders(w, series, cachedHeaders())
}

func (h *APIHandlers) HandleCountryRevenue(w http.ResponseWriter, r *http.Request) {
	records, err := h.metrics.GetCountryRevenue(r.PathValue("name"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	errors.WriteSuccessWithHeaders(w, records, cachedHeaders())
}

func (h *APIHandlers) HandleInsight(w http.ResponseWriter, r *http.Request) {
	insight, err := h.metrics.Insight(r.PathValue("name"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	errors.WriteSuccessWithHeaders(w, insight, cachedHeaders())
}

func (h *APIHandlers) HandleRankings(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.metrics.Rankings(), cachedHeaders())
}

func (h *APIHandlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccess(w, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"version":   Version,
	})
}

func (h *APIHandlers) HandleStats(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccess(w, h.metrics.Stats())
}

func (h *APIHandlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	errors.WriteError(w, h.logger, err, observability.GetRequestID(r.Context()))
}

func cachedHeaders() map[string]string {
	return map[string]string{"Cache-Control": cacheControl}
}
