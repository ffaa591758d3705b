// Package infrastructure provides core service initialization for application startup.
// It assembles common dependencies (logging, lifecycle, database) that domain systems require.
package infrastructure

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mano7284/PRD2workflow-Backend/internal/config"
	"github.com/mano7284/PRD2workflow-Backend/pkg/database"
	"github.com/mano7284/PRD2workflow-Backend/pkg/lifecycle"
)

// Infrastructure holds the core systems required by all domain modules.
// Database is nil when persistence is disabled in configuration; domain
// modules fall back to unavailable store stubs.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	infra := &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
	}

	if !cfg.Database.Enabled {
		logger.Info("database disabled, running with unavailable stores")
		return infra, nil
	}

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}
	infra.Database = db

	return infra, nil
}

// Start registers all infrastructure systems with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if i.Database == nil {
		return nil
	}
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	return nil
}
