package workflows

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/mano7284/PRD2workflow-Backend/internal/auth"
	"github.com/mano7284/PRD2workflow-Backend/internal/graph"
	"github.com/mano7284/PRD2workflow-Backend/pkg/handlers"
	"github.com/mano7284/PRD2workflow-Backend/pkg/pagination"
	"github.com/mano7284/PRD2workflow-Backend/pkg/routes"
)

// Handler provides HTTP endpoints for workflow operations.
type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
}

// GenerateRequest is the JSON body for the workflow generation endpoint.
type GenerateRequest struct {
	DocumentContent string `json:"document_content"`
	WorkflowType    string `json:"workflow_type"`
}

// NewHandler creates a Handler with the given system, logger, and pagination config.
func NewHandler(sys System, logger *slog.Logger, pagination pagination.Config) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger.With("handler", "workflows"),
		pagination: pagination,
	}
}

// Routes returns the route definitions for workflow endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/generate-workflow", Handler: h.Generate},
			{Method: "GET", Pattern: "/workflows", Handler: h.List},
			{Method: "GET", Pattern: "/workflows/{id}", Handler: h.Find},
		},
	}
}

// Generate produces a workflow graph from document text supplied in the request body.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	flow := graph.Flow(req.WorkflowType)
	if req.WorkflowType == "" {
		flow = graph.FlowUserJourney
	}

	workflow, err := h.sys.Generate(r.Context(), GenerateCommand{
		Content: req.DocumentContent,
		Flow:    flow,
		UserID:  auth.UserID(r.Context()),
	})
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, workflow)
}

// List returns a paginated list of workflows, scoped to the authenticated
// user when a token is presented.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)

	result, err := h.sys.List(r.Context(), page, auth.UserID(r.Context()))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Find returns a single workflow by its UUID path parameter.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	workflow, err := h.sys.Find(r.Context(), id, auth.UserID(r.Context()))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, workflow)
}
