package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"log/slog"

	"meta-ads-gateway/internal/core/port"
	"meta-ads-gateway/internal/observability"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds an AdsUseCase to execute business logic and a logger for structured
// logging. Routes are registered on a chi.Router for convenient method
// handling.
type Handler struct {
	svc    port.AdsUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. It accepts an
// AdsUseCase implementation and a logger. The returned Handler registers
// handlers for each endpoint on a new chi.Router.
func NewHandler(svc port.AdsUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Use(observability.Measure)

	r.Route("/api/v1/meta_ads", func(r chi.Router) {
		r.Post("/campaigns", h.handleCreateCampaign)
		r.Post("/ad_sets", h.handleCreateAdSet)
		r.Post("/ad_creatives", h.handleCreateAdCreative)
		r.Post("/ads", h.handleCreateAd)
		r.Post("/images", h.handleUploadImage)
		r.Get("/images", h.handleListImages)
		r.Delete("/images/{hash}", h.handleDeleteImage)
	})
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", observability.MetricsHandler())

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
