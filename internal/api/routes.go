package api

import (
	"net/http"

	"github.com/mano7284/PRD2workflow-Backend/internal/config"
	"github.com/mano7284/PRD2workflow-Backend/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
) {
	health := newHealthHandler(cfg)

	routes.Register(
		mux,
		health.routes(),
		domain.Auth.Handler().Routes(),
		domain.Analyses.Handler(cfg.API.MaxUploadSizeBytes()).Routes(),
		domain.Workflows.Handler().Routes(),
		domain.Status.Handler().Routes(),
	)
}
