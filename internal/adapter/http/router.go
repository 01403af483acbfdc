package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/auntiebot/auntiecount/internal/adapter/http/handler"
	"github.com/auntiebot/auntiecount/internal/adapter/http/middleware"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	WebhookHandler  *handler.WebhookHandler
	LedgerHandler   *handler.LedgerHandler
	FeedbackHandler *handler.FeedbackHandler
	HealthHandler   *handler.HealthHandler
	HTTPMetrics     *middleware.HTTPMetrics
	RateLimiter     *middleware.RateLimiter
	Logger          zerolog.Logger
	TwilioToken     string
	PublicDir       string
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(cfg.Logger))
	r.Use(chimiddleware.Recoverer)
	if cfg.HTTPMetrics != nil {
		r.Use(cfg.HTTPMetrics.Wrap)
	}
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// Inbound messages
	r.Route("/whatsapp", func(r chi.Router) {
		r.Use(middleware.TwilioSignature(cfg.TwilioToken))
		r.Post("/", cfg.WebhookHandler.Receive)
	})

	// Token-keyed API for the summary page
	r.Route("/api", func(r chi.Router) {
		r.Get("/summary", cfg.LedgerHandler.Summary)
		r.Post("/clear", cfg.LedgerHandler.Clear)
		r.Route("/feedback", func(r chi.Router) {
			r.Post("/", cfg.FeedbackHandler.Submit)
			r.Get("/", cfg.FeedbackHandler.List)
		})
	})

	// Admin dump
	r.Get("/admin/data.json", cfg.LedgerHandler.Dump)

	// Static summary page; the raw data file is never served directly.
	r.Get("/", cfg.HealthHandler.Root)
	if cfg.PublicDir != "" {
		fs := http.FileServer(http.Dir(cfg.PublicDir))
		r.Get("/data.json", func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "not found", http.StatusNotFound)
		})
		r.Get("/*", fs.ServeHTTP)
	}

	return r
}
