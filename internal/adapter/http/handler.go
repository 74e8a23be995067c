package httpadapter

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"solidarity-campaign/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP: it serves the landing page and a small JSON API over the campaign
// use case.
type Handler struct {
	svc          port.CampaignUseCase
	logger       *slog.Logger
	router       chi.Router
	publicOrigin string
}

// NewHandler creates a handler with all routes configured. publicOrigin,
// when non-empty, is used for referral links instead of the request's
// origin.
func NewHandler(svc port.CampaignUseCase, logger *slog.Logger, publicOrigin string) *Handler {
	h := &Handler{
		svc:          svc,
		logger:       logger,
		publicOrigin: strings.TrimRight(publicOrigin, "/"),
	}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/", h.handleLandingPage)
	r.Get("/healthz", h.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/progress", h.handleProgress)
		r.Post("/completions", h.handleCompletion)
		r.Get("/videos", h.handleVideos)
		r.Get("/videos/resolve", h.handleResolveVideo)
		r.Post("/referral", h.handleReferral)
		r.Post("/referral/share", h.handleShare)
		r.Post("/referral/share/report", h.handleShareReport)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// origin returns the deployment origin for r.
func (h *Handler) origin(r *http.Request) string {
	if h.publicOrigin != "" {
		return h.publicOrigin
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "https" || proto == "http" {
		scheme = proto
	}
	return scheme + "://" + r.Host
}

// pageURL returns the absolute URL of the landing page for r.
func (h *Handler) pageURL(r *http.Request) string {
	return h.origin(r) + "/"
}

func (h *Handler) requestLogger(r *http.Request) *slog.Logger {
	if id := middleware.GetReqID(r.Context()); id != "" {
		return h.logger.With(slog.String("request_id", id))
	}
	return h.logger
}
