package status

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/mano7284/PRD2workflow-Backend/pkg/handlers"
	"github.com/mano7284/PRD2workflow-Backend/pkg/routes"
)

// Handler provides HTTP endpoints for status check operations.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "status"),
	}
}

// Routes returns the route group definition for status endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/status",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Create},
			{Method: "GET", Pattern: "", Handler: h.List},
		},
	}
}

// Create records a status check for the named client.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var cmd CreateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	check, err := h.sys.Create(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, check)
}

// List returns all recorded status checks.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	checks, err := h.sys.List(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, checks)
}
