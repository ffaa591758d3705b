package api

import (
	"github.com/mano7284/PRD2workflow-Backend/internal/auth"
	"github.com/mano7284/PRD2workflow-Backend/internal/config"
	"github.com/mano7284/PRD2workflow-Backend/internal/gemini"
	"github.com/mano7284/PRD2workflow-Backend/internal/infrastructure"
	"github.com/mano7284/PRD2workflow-Backend/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Gemini     *gemini.Config
	Auth       *auth.Config
	Pagination pagination.Config
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Database:  infra.Database,
		},
		Gemini:     &cfg.Gemini,
		Auth:       &cfg.Auth,
		Pagination: cfg.API.Pagination,
	}
}
