package api

import (
	"github.com/mano7284/PRD2workflow-Backend/internal/analyses"
	"github.com/mano7284/PRD2workflow-Backend/internal/auth"
	"github.com/mano7284/PRD2workflow-Backend/internal/gemini"
	"github.com/mano7284/PRD2workflow-Backend/internal/status"
	"github.com/mano7284/PRD2workflow-Backend/internal/workflows"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Auth      auth.System
	Analyses  analyses.System
	Workflows workflows.System
	Status    status.System
}

// NewDomain creates all domain systems from the API runtime. When the
// database is absent, every store is the unavailable stub: generation
// endpoints still work, persistence-dependent endpoints report 503.
func NewDomain(runtime *Runtime) *Domain {
	client := gemini.New(runtime.Gemini, runtime.Logger)
	tokens := auth.NewTokens(runtime.Auth)

	var (
		userStore     = auth.NewUnavailableStore()
		analysisStore = analyses.NewUnavailableStore()
		workflowStore = workflows.NewUnavailableStore()
		statusStore   = status.NewUnavailableStore()
	)

	if runtime.Database != nil {
		conn := runtime.Database.Connection()
		userStore = auth.NewStore(conn)
		analysisStore = analyses.NewStore(conn)
		workflowStore = workflows.NewStore(conn)
		statusStore = status.NewStore(conn)
	}

	return &Domain{
		Auth:      auth.New(userStore, tokens, runtime.Logger),
		Analyses:  analyses.New(client, analysisStore, runtime.Logger, runtime.Pagination),
		Workflows: workflows.New(client, workflowStore, runtime.Logger, runtime.Pagination),
		Status:    status.New(statusStore, runtime.Logger),
	}
}
