package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"

	"artist-dashboard/internal/errors"
	"artist-dashboard/internal/models"
	"artist-dashboard/internal/observability"
	"artist-dashboard/internal/services"
)

type SSEHandlers struct {
	metrics *services.Metrics
	logger  *slog.Logger
}

func NewSSEHandlers(metrics *services.Metrics, logger *slog.Logger) *SSEHandlers {
	return &SSEHandlers{
		metrics: metrics,
		logger:  logger,
	}
}

// artistSignals is the client state datastar sends with each request.
type artistSignals struct {
	Artist string `json:"artist"`
}

type platformPoint struct {
	Platform models.Platform `json:"platform"`
	Streams  int64           `json:"streams"`
}

type socialPoint struct {
	Name           string  `json:"name"`
	Instagram      int64   `json:"instagram"`
	TikTok         int64   `json:"tiktok"`
	EngagementRate float64 `json:"engagement_rate"`
}

type ticketPoint struct {
	Name           string  `json:"name"`
	TicketPrice    float64 `json:"ticket_price"`
	EngagementRate float64 `json:"engagement_rate"`
	SpotifyStreams int64   `json:"spotify_streams"`
}

type vinylPoint struct {
	Name  string `json:"name"`
	Sales int64  `json:"sales"`
}

type overviewData struct {
	Artist  models.Artist
	Insight models.ArtistInsight
}

// selectedArtist resolves the artist from ?artist=, then the datastar
// signals, then falls back to the first catalog entry.
func (h *SSEHandlers) selectedArtist(r *http.Request) string {
	if name := r.URL.Query().Get("artist"); name != "" {
		return name
	}

	var signals artistSignals
	if err := datastar.ReadSignals(r, &signals); err == nil && signals.Artist != "" {
		return signals.Artist
	}

	if artists := h.metrics.GetCatalog(); len(artists) > 0 {
		return artists[0].Name
	}
	return ""
}

func (h *SSEHandlers) HandleArtist(w http.ResponseWriter, r *http.Request) {
	name := h.selectedArtist(r)

	artist, err := h.metrics.GetArtist(name)
	if err != nil {
		errors.WriteError(w, h.logger, err, observability.GetRequestID(r.Context()))
		return
	}
	insight, err := h.metrics.Insight(name)
	if err != nil {
		errors.WriteError(w, h.logger, err, observability.GetRequestID(r.Context()))
		return
	}
	series, err := h.metrics.GetMonthlySeries(name)
	if err != nil {
		errors.WriteError(w, h.logger, err, observability.GetRequestID(r.Context()))
		return
	}
	shares, err := h.metrics.GetCountryShares(name)
	if err != nil {
		errors.WriteError(w, h.logger, err, observability.GetRequestID(r.Context()))
		return
	}

	overview, err := render(overviewTemplate, overviewData{Artist: artist, Insight: insight})
	if err != nil {
		h.logger.Error("render overview", "error", err, "artist", name)
		return
	}
	monthly, err := render(monthlyTableTemplate, series)
	if err != nil {
		h.logger.Error("render monthly table", "error", err, "artist", name)
		return
	}
	countries, err := render(countryTableTemplate, shares)
	if err != nil {
		h.logger.Error("render country table", "error", err, "artist", name)
		return
	}

	platforms := make([]platformPoint, len(models.Platforms))
	for i, p := range models.Platforms {
		platforms[i] = platformPoint{Platform: p, Streams: artist.Streams.Get(p)}
	}

	signals, err := json.Marshal(map[string]any{
		"artist":       artist.Name,
		"platformData": platforms,
		"monthlyData":  services.MonthlyTotals(series),
		"countryData":  shares,
	})
	if err != nil {
		h.logger.Error("marshal artist signals", "error", err, "artist", name)
		return
	}

	sse := datastar.NewSSE(w, r)
	if err := patch(sse, signals, overview, monthly, countries); err != nil {
		h.logger.Debug("artist stream closed", "error", err, "artist", name,
			"request_id", observability.GetRequestID(r.Context()))
		return
	}

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

func (h *SSEHandlers) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	artists := h.metrics.GetCatalog()
	rankings := h.metrics.Rankings()

	table, err := render(rankingTableTemplate, rankings)
	if err != nil {
		h.logger.Error("render ranking table", "error", err)
		return
	}

	social := make([]socialPoint, len(artists))
	tickets := make([]ticketPoint, len(artists))
	vinyl := make([]vinylPoint, len(artists))
	for i, a := range artists {
		social[i] = socialPoint{
			Name:           a.Name,
			Instagram:      a.InstagramFollows,
			TikTok:         a.TikTokFollows,
			EngagementRate: a.EngagementRate,
		}
		tickets[i] = ticketPoint{
			Name:           a.Name,
			TicketPrice:    a.AvgTicketPrice,
			EngagementRate: a.EngagementRate,
			SpotifyStreams: a.Streams.Spotify,
		}
		vinyl[i] = vinylPoint{Name: a.Name, Sales: a.VinylSales}
	}

	signals, err := json.Marshal(map[string]any{
		"scoreData":  rankings,
		"socialData": social,
		"ticketData": tickets,
		"vinylData":  vinyl,
	})
	if err != nil {
		h.logger.Error("marshal catalog signals", "error", err)
		return
	}

	sse := datastar.NewSSE(w, r)
	if err := patch(sse, signals, table); err != nil {
		h.logger.Debug("catalog stream closed", "error", err,
			"request_id", observability.GetRequestID(r.Context()))
		return
	}

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

// patch sends the fragments, then the signals. It stops at the first failed
// write, which means the client has gone away.
func patch(sse *datastar.ServerSentEventGenerator, signals []byte, elements ...string) error {
	for _, el := range elements {
		if err := sse.PatchElements(el); err != nil {
			return err
		}
	}
	return sse.PatchSignals(signals)
}
