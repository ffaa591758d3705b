package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/mano7284/PRD2workflow-Backend/pkg/handlers"
	"github.com/mano7284/PRD2workflow-Backend/pkg/routes"
)

// Handler provides HTTP endpoints for registration, login, and identity lookup.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "auth"),
	}
}

// Routes returns the route group definition for auth endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/auth",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/register", Handler: h.Register},
			{Method: "POST", Pattern: "/login", Handler: h.Login},
			{Method: "GET", Pattern: "/me", Handler: h.Me},
		},
	}
}

// Register creates a new account and returns an access token.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var cmd RegisterCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	token, err := h.sys.Register(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, token)
}

// Login verifies credentials and returns an access token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var creds Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	token, err := h.sys.Login(r.Context(), creds)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, token)
}

// Me returns the account behind the presented bearer token.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	id := UserID(r.Context())
	if id == nil {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, ErrInvalidToken)
		return
	}

	user, err := h.sys.CurrentUser(r.Context(), *id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, user)
}
