package api

import (
	"net/http"

	"github.com/daimoniac/echotool/internal/config"
)

const serviceDescription = "A simple echo tool for LLM agents."

// OpenAPI document types. Only the subset of the specification this service
// publishes is modeled; service metadata is sourced verbatim from the
// configuration.
type openAPIDocument struct {
	OpenAPI string                                 `json:"openapi"`
	Info    openAPIInfo                            `json:"info"`
	Servers []openAPIServer                        `json:"servers"`
	Tags    []openAPITag                           `json:"tags"`
	Paths   map[string]map[string]openAPIOperation `json:"paths"`
}

type openAPIInfo struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Version     string         `json:"version"`
	Contact     openAPIContact `json:"contact"`
}

type openAPIContact struct {
	Name  string `json:"name"`
	URL   string `json:"url"`
	Email string `json:"email"`
}

type openAPIServer struct {
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

type openAPITag struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type openAPIOperation struct {
	OperationID string   `json:"operationId"`
	Summary     string   `json:"summary,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// buildOpenAPIDocument assembles the self-describing API document from the
// immutable configuration snapshot.
func buildOpenAPIDocument(cfg *config.Config) openAPIDocument {
	servers := make([]openAPIServer, 0, len(cfg.Servers))
	for _, server := range cfg.Servers {
		servers = append(servers, openAPIServer{
			URL:         server.URL,
			Description: server.Description,
		})
	}

	return openAPIDocument{
		OpenAPI: "3.1.0",
		Info: openAPIInfo{
			Title:       cfg.App.Name,
			Description: serviceDescription,
			Version:     cfg.App.Version,
			Contact: openAPIContact{
				Name:  cfg.Contact.Name,
				URL:   cfg.Contact.URL,
				Email: cfg.Contact.Email,
			},
		},
		Servers: servers,
		Tags: []openAPITag{
			{Name: "Echo", Description: "The core echo functionality of the service."},
			{Name: "Monitoring", Description: "Endpoints for monitoring service health and metrics."},
		},
		Paths: map[string]map[string]openAPIOperation{
			"/echo": {
				"post": {OperationID: "echo", Summary: "Echo", Tags: []string{"Echo"}},
			},
			"/health": {
				"get":  {OperationID: "health_check_get", Summary: "Health Check", Tags: []string{"Monitoring"}},
				"head": {OperationID: "health_check_head", Summary: "Health Check (HEAD)", Tags: []string{"Monitoring"}},
			},
			"/ready": {
				"get": {OperationID: "ready_check", Summary: "Readiness Check", Tags: []string{"Monitoring"}},
			},
			"/metrics": {
				"get": {OperationID: "metrics", Summary: "Prometheus Metrics", Tags: []string{"Monitoring"}},
			},
		},
	}
}

// handleOpenAPI serves the OpenAPI document consumed by the Swagger UI
// @Summary OpenAPI document
// @Description Machine-readable description of the API, including service metadata.
// @Tags Monitoring
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /openapi.json [get]
func (s *APIServer) handleOpenAPI(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	s.respondJSON(w, http.StatusOK, buildOpenAPIDocument(s.config))
}
