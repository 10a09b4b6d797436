package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/daimoniac/echotool/internal/config"
	"github.com/daimoniac/echotool/internal/errors"
	"github.com/daimoniac/echotool/internal/observability"
)

// @title Echo Tool Server
// @version 0.1.12
// @description A simple echo tool for LLM agents.
// @description
// @description ## Features
// @description - Echo back any input string with a fixed prefix
// @description - Health and readiness checks
// @description - Prometheus metrics and optional OTLP tracing

// @contact.name API Support
// @contact.url https://www.example.com/support
// @contact.email support@example.com

// APIServer serves the echo operation together with health, readiness,
// metrics, and API documentation endpoints.
type APIServer struct {
	config  *config.Config
	metrics *observability.Metrics
	router  *http.ServeMux
	server  *http.Server
	logger  *slog.Logger
}

// NewAPIServer creates a new API server instance. When tracing is enabled the
// whole route table is wrapped in the tracing middleware so every inbound
// request opens a root span; the metrics middleware always wraps the routes.
func NewAPIServer(cfg *config.Config, metrics *observability.Metrics, tracingEnabled bool, logger *slog.Logger) *APIServer {
	api := &APIServer{
		config:  cfg,
		metrics: metrics,
		router:  http.NewServeMux(),
		logger:  logger,
	}

	api.setupRoutes()

	var handler http.Handler = api.router
	handler = observability.HTTPMetricsMiddleware(metrics, api.metricsRoute)(handler)
	if tracingEnabled {
		handler = observability.TracingMiddleware(cfg.App.Name)(handler)
	}

	api.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return api
}

// setupRoutes configures all API routes
func (s *APIServer) setupRoutes() {
	// Echo
	s.router.HandleFunc("/echo", s.handleEcho)

	// Monitoring
	s.router.HandleFunc("/health", s.handleHealth)
	s.router.HandleFunc("/ready", s.handleReady)
	s.router.Handle("/metrics", promhttp.Handler())

	// API documentation
	s.router.HandleFunc("/openapi.json", s.handleOpenAPI)
	s.router.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/openapi.json"),
	))

	// Redirect root to swagger
	s.router.HandleFunc("/", s.handleRootRedirect)
}

// Handler returns the fully composed handler chain, primarily for tests.
func (s *APIServer) Handler() http.Handler {
	return s.server.Handler
}

// metricsRoute resolves the registered route pattern for metric labels.
// Requests that only match the root catch-all collapse into a fixed
// "unmatched" label so unknown paths cannot grow the label space without
// bound.
func (s *APIServer) metricsRoute(r *http.Request) string {
	_, pattern := s.router.Handler(r)
	if pattern == "" || (pattern == "/" && r.URL.Path != "/") {
		return "unmatched"
	}
	return pattern
}

// Start starts the API server and blocks until the context is cancelled or
// the listener fails. Shutdown is the caller's responsibility.
func (s *APIServer) Start(ctx context.Context) error {
	s.logger.Info("starting API server",
		"port", s.config.HTTP.Port)

	errChan := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errChan:
		return err
	}
}

// Shutdown gracefully shuts down the API server
func (s *APIServer) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// respondJSON sends a JSON response
func (s *APIServer) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("error encoding JSON response",
			"error", err.Error())
	}
}

// respondError sends an error response
func (s *APIServer) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}

// respondClassifiedError maps an error from the service taxonomy onto the
// matching HTTP status. Invalid input is the only per-request error kind the
// service produces; anything else is a server-side failure.
func (s *APIServer) respondClassifiedError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.IsInvalidInput(err) {
		status = http.StatusBadRequest
	}
	s.respondError(w, status, err.Error())
}

// handleRootRedirect redirects / to /swagger/
func (s *APIServer) handleRootRedirect(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		s.respondError(w, http.StatusNotFound, "not found")
		return
	}
	http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
}
