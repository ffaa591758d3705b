package api

import (
	"net/http"
	"time"

	"github.com/mano7284/PRD2workflow-Backend/internal/config"
	"github.com/mano7284/PRD2workflow-Backend/pkg/handlers"
	"github.com/mano7284/PRD2workflow-Backend/pkg/routes"
)

type healthHandler struct {
	cfg *config.Config
}

type healthFeatures struct {
	Authentication     bool     `json:"authentication"`
	DocumentParsing    []string `json:"document_parsing"`
	AnalysisTypes      []string `json:"analysis_types"`
	WorkflowGeneration []string `json:"workflow_generation"`
}

type healthResponse struct {
	Status              string         `json:"status"`
	Timestamp           time.Time      `json:"timestamp"`
	Version             string         `json:"version"`
	GeminiAPIConfigured bool           `json:"gemini_api_configured"`
	DatabaseEnabled     bool           `json:"database_enabled"`
	Features            healthFeatures `json:"features"`
}

func newHealthHandler(cfg *config.Config) *healthHandler {
	return &healthHandler{cfg: cfg}
}

func (h *healthHandler) routes() routes.Group {
	return routes.Group{
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{$}", Handler: h.root},
			{Method: "GET", Pattern: "/health", Handler: h.health},
		},
	}
}

func (h *healthHandler) root(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, map[string]string{
		"message": "PRD/BRD AI Analysis API - Ready!",
	})
}

func (h *healthHandler) health(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, healthResponse{
		Status:              "healthy",
		Timestamp:           time.Now().UTC(),
		Version:             h.cfg.Version,
		GeminiAPIConfigured: h.cfg.Gemini.APIKey != "",
		DatabaseEnabled:     h.cfg.Database.Enabled,
		Features: healthFeatures{
			Authentication:     true,
			DocumentParsing:    []string{"PDF", "DOCX", "TXT", "MD"},
			AnalysisTypes:      []string{"gap_analysis", "requirements_extraction", "summary"},
			WorkflowGeneration: []string{"user_journey", "service_blueprint", "feature_flow"},
		},
	})
}
