// Package api assembles the API module with all domain systems and route registration.
package api

import (
	"net/http"

	"github.com/mano7284/PRD2workflow-Backend/internal/config"
	"github.com/mano7284/PRD2workflow-Backend/internal/infrastructure"
	"github.com/mano7284/PRD2workflow-Backend/pkg/middleware"
	"github.com/mano7284/PRD2workflow-Backend/pkg/module"
)

// NewModule creates the API module with all domain handlers and middleware.
// The auth middleware runs for every API route so any endpoint can read an
// optional bearer identity from the request context.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)

	mux := http.NewServeMux()
	registerRoutes(mux, domain, cfg)

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(domain.Auth.Middleware())
	m.Use(middleware.Logger(runtime.Infrastructure.Logger))

	return m, nil
}
