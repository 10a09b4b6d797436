package api

import (
	"encoding/json"
	"net/http"

	"github.com/daimoniac/echotool/internal/errors"
)

// handleEcho echoes back whatever input is given
// @Summary Echo
// @Description Echoes back whatever input is given. Useful for testing or placeholder.
// @Tags Echo
// @Accept json
// @Produce json
// @Param payload body EchoRequest true "Text to echo"
// @Success 200 {object} EchoResponse
// @Failure 400 {object} map[string]string "Missing or malformed input"
// @Failure 405 {object} map[string]string "Method not allowed"
// @Router /echo [post]
func (s *APIServer) handleEcho(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	// Validation failures are rejected before any handler logic runs and
	// produce no request log.
	var payload EchoRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.respondClassifiedError(w, errors.NewInvalidInputf("malformed request body"))
		return
	}
	if payload.Input == nil {
		s.respondClassifiedError(w, errors.NewInvalidInputf("field %q is required", "input"))
		return
	}

	s.logger.Info("echo.request",
		"input", *payload.Input)

	s.metrics.EchoRequestsTotal.Inc()
	result := "Echo: " + *payload.Input

	s.logger.Info("echo.response",
		"output", result)

	s.respondJSON(w, http.StatusOK, EchoResponse{Output: result})
}

// handleHealth confirms the server is running
// @Summary Health Check
// @Description Simple health check endpoint to confirm the server is running. HEAD requests return the same status with an empty body.
// @Tags Monitoring
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (s *APIServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.logger.Info("health.check")
		s.respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	case http.MethodHead:
		s.logger.Info("health.check")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	default:
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// handleReady confirms the service is ready to accept traffic
// @Summary Readiness Check
// @Description Readiness check endpoint to confirm the service is ready to accept traffic. For this service readiness is the same as health.
// @Tags Monitoring
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /ready [get]
func (s *APIServer) handleReady(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	s.logger.Info("ready.check")
	s.respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
