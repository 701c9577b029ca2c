// Package http exposes the report submission and impact assessment API,
// plus health, readiness, and metrics endpoints.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Yousif-Dev/hAIckathon-2025/internal/domain"
	"github.com/Yousif-Dev/hAIckathon-2025/internal/observability"
)

// Assessor runs one impact assessment for a location.
type Assessor interface {
	Assess(ctx context.Context, key domain.LocationKey, assessment domain.DumpingAssessment) (domain.ImpactRecord, domain.ImpactNarrative, error)
	CheckReadiness(ctx context.Context) error
}

// Server exposes the HTTP API over a chi router.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger

	assessor        Assessor
	classifier      domain.Classifier // nil disables image classification
	classifyTimeout time.Duration
	metrics         *observability.Metrics
}

// NewServer builds the router and the underlying http.Server. Pass a nil
// classifier to always use the default assessment for submitted reports.
func NewServer(addr string, assessor Assessor, classifier domain.Classifier, classifyTimeout time.Duration, logger *slog.Logger, metrics *observability.Metrics) *Server {
	s := &Server{
		logger:          logger,
		assessor:        assessor,
		classifier:      classifier,
		classifyTimeout: classifyTimeout,
		metrics:         metrics,
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/submit", s.handleSubmit)
		r.Get("/impact", s.handleImpact)
	})

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.assessor.CheckReadiness(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response write
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
