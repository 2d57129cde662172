package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"artist-dashboard/internal/config"
	"artist-dashboard/internal/middleware"
	"artist-dashboard/internal/services"
)

func newTestHandler() http.Handler {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError + 1}))
	cfg := config.Default()
	cfg.Security.EnableRateLimit = false
	metrics := services.NewMetrics(services.NewGenerator(42))
	return newHandler(cfg, metrics, middleware.NewRateLimiter(cfg.Security), logger)
}

func TestHandler_Routes(t *testing.T) {
	handler := newTestHandler()

	tests := []struct {
		path        string
		status      int
		contentType string
	}{
		{"/", http.StatusOK, "text/html"},
		{"/health", http.StatusOK, "application/json"},
		{"/admin/stats", http.StatusOK, "application/json"},
		{"/api/artists", http.StatusOK, "application/json"},
		{"/api/artists/Avaion/monthly", http.StatusOK, "application/json"},
		{"/api/artists/Avaion/countries", http.StatusOK, "application/json"},
		{"/api/rankings", http.StatusOK, "application/json"},
		{"/api/artists/Nobody/countries", http.StatusNotFound, "application/json"},
		{"/nonexistent", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest("GET", tt.path, nil)

			handler.ServeHTTP(w, r)

			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}
			if tt.contentType != "" {
				if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, tt.contentType) {
					t.Errorf("content-type = %q, want %q", ct, tt.contentType)
				}
			}
			if w.Header().Get("X-Request-ID") == "" {
				t.Error("missing X-Request-ID header")
			}
		})
	}
}

func TestHandler_MonthlySeriesJSON(t *testing.T) {
	handler := newTestHandler()

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/api/artists/Jean%20Michel%20Jarre/monthly", nil)
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var response struct {
		Success bool `json:"success"`
		Data    []struct {
			Month        string `json:"month"`
			TotalStreams int64  `json:"total_streams"`
		} `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode JSON: %v", err)
	}
	if !response.Success {
		t.Error("expected success=true")
	}
	if len(response.Data) != 8 {
		t.Fatalf("got %d months, want 8", len(response.Data))
	}
	if response.Data[0].Month != "Jan 2024" || response.Data[7].Month != "Aug 2024" {
		t.Errorf("unexpected month labels %q..%q", response.Data[0].Month, response.Data[7].Month)
	}
}

func TestHandler_SSERoutes(t *testing.T) {
	handler := newTestHandler()

	for _, route := range []string{"/sse/artist?artist=Avaion", "/sse/catalog"} {
		t.Run(route, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest("GET", route, nil)

			handler.ServeHTTP(w, r)

			if w.Code != http.StatusOK {
				t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
			}
			if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "text/event-stream") {
				t.Errorf("content-type = %q, should contain 'text/event-stream'", ct)
			}
		})
	}
}

func TestHandler_Health(t *testing.T) {
	handler := newTestHandler()

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

	var response map[string]any
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode health JSON: %v", err)
	}
	data, ok := response["data"].(map[string]any)
	if !ok {
		t.Fatal("expected health data in response")
	}
	if data["status"] != "healthy" {
		t.Errorf("health status = %v, want 'healthy'", data["status"])
	}
	if _, ok := data["timestamp"]; !ok {
		t.Error("health response should include timestamp")
	}
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	handler := newTestHandler()

	tests := []struct {
		method string
		path   string
	}{
		{"POST", "/api/artists"},
		{"PUT", "/"},
		{"DELETE", "/health"},
		{"PATCH", "/api/rankings"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("status = %d, want %d", w.Code, http.StatusMethodNotAllowed)
			}
		})
	}
}

func TestDashboardHandler(t *testing.T) {
	metrics := services.NewMetrics(services.NewGenerator(42))
	w := httptest.NewRecorder()

	newDashboardHandler(metrics)(w, httptest.NewRequest("GET", "/", nil))

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if cc := w.Header().Get("Cache-Control"); cc != cacheMaxAge {
		t.Errorf("cache-control = %q, want %q", cc, cacheMaxAge)
	}

	body := w.Body.String()
	expected := []string{
		"Artist Analytics Dashboard",
		"Anfisa Letyago",
		"Purple Disco Machine",
		"5. Künstler-Performance-Score",
		"8. Umsatz nach Land (EU5)",
	}
	for _, s := range expected {
		if !strings.Contains(body, s) {
			t.Errorf("dashboard should contain %q", s)
		}
	}
}
