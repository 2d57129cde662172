package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"artist-dashboard/internal/config"
	"artist-dashboard/internal/handlers"
	"artist-dashboard/internal/middleware"
	"artist-dashboard/internal/observability"
	"artist-dashboard/internal/server"
	"artist-dashboard/internal/services"
	"artist-dashboard/internal/ui/templates"
)

const (
	renderTimeout   = 10 * time.Second
	generateTimeout = 30 * time.Second
	janitorInterval = 5 * time.Minute
	cacheMaxAge     = "public, max-age=300"
)

// newDashboardHandler serves the page shell with the catalog's artist picker.
func newDashboardHandler(metrics *services.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), renderTimeout)
		defer cancel()

		w.Header().Set("Cache-Control", cacheMaxAge)
		if err := templates.Dashboard(metrics.Catalog().Names()).Render(ctx, w); err != nil {
			http.Error(w, "render error", http.StatusInternalServerError)
		}
	}
}

func newHandler(cfg *config.Config, metrics *services.Metrics, limiter *middleware.RateLimiter, logger *slog.Logger) http.Handler {
	srv := server.NewServer(metrics, logger, &server.TemplateHandlers{
		Dashboard: newDashboardHandler(metrics),
	})

	chain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Tracing(logger),
		middleware.SecurityHeaders(),
		middleware.CORS(cfg.Security),
		middleware.TrustedProxy(cfg.Security),
		middleware.RateLimit(limiter, logger),
	)
	return chain(srv)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.Logger)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"version", handlers.Version,
		"addr", cfg.Address(),
		"seed", cfg.Generator.Seed,
	)

	generator := services.NewGenerator(cfg.Generator.Seed, services.WithLogger(logger))
	metrics := services.NewMetrics(generator)

	ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
	defer cancel()
	if err := metrics.Load(ctx); err != nil {
		logger.Error("failed to generate catalog", "error", err)
		os.Exit(1)
	}

	limiter := middleware.NewRateLimiter(cfg.Security)
	janitorCtx, stopJanitor := context.WithCancel(context.Background())
	go limiter.RunJanitor(janitorCtx, janitorInterval)

	httpServer := &http.Server{
		Addr:         cfg.Address(),
		Handler:      newHandler(cfg, metrics, limiter, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	gracefulServer := server.NewGracefulServer(httpServer, logger, cfg.Server.ShutdownTimeout)
	gracefulServer.RegisterShutdownHook(func(ctx context.Context) error {
		logger.Info("stopping rate limiter janitor", "visitors", limiter.Len())
		stopJanitor()
		return nil
	})

	if err := gracefulServer.ListenAndServe(); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}

	logger.Info("application stopped gracefully")
}
