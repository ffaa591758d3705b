package analyses

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/mano7284/PRD2workflow-Backend/internal/auth"
	"github.com/mano7284/PRD2workflow-Backend/pkg/handlers"
	"github.com/mano7284/PRD2workflow-Backend/pkg/pagination"
	"github.com/mano7284/PRD2workflow-Backend/pkg/routes"
)

// DefaultAnalysisType is applied when a request omits the analysis type.
const DefaultAnalysisType = "gap_analysis"

// Handler provides HTTP endpoints for analysis operations.
type Handler struct {
	sys           System
	logger        *slog.Logger
	pagination    pagination.Config
	maxUploadSize int64
}

// AnalyzeRequest is the JSON body for the raw-text analysis endpoint.
type AnalyzeRequest struct {
	DocumentContent string `json:"document_content"`
	AnalysisType    string `json:"analysis_type"`
}

// NewHandler creates a Handler with the given system, logger, pagination config, and upload size limit.
func NewHandler(
	sys System,
	logger *slog.Logger,
	pagination pagination.Config,
	maxUploadSize int64,
) *Handler {
	return &Handler{
		sys:           sys,
		logger:        logger.With("handler", "analyses"),
		pagination:    pagination,
		maxUploadSize: maxUploadSize,
	}
}

// Routes returns the route definitions for analysis endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/analyze-document", Handler: h.Analyze},
			{Method: "POST", Pattern: "/analyze-document-file", Handler: h.AnalyzeFile},
			{Method: "GET", Pattern: "/analyses", Handler: h.List},
			{Method: "GET", Pattern: "/analyses/{id}", Handler: h.Find},
		},
	}
}

// Analyze runs an analysis over document text supplied in the request body.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	if req.AnalysisType == "" {
		req.AnalysisType = DefaultAnalysisType
	}

	analysis, err := h.sys.Analyze(r.Context(), AnalyzeCommand{
		Content:      req.DocumentContent,
		AnalysisType: req.AnalysisType,
		UserID:       auth.UserID(r.Context()),
	})
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, analysis)
}

// AnalyzeFile runs an analysis over an uploaded PDF, DOCX, TXT, or MD file.
func (h *Handler) AnalyzeFile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		handlers.RespondError(w, h.logger, http.StatusRequestEntityTooLarge, err)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	analysisType := r.FormValue("analysis_type")
	if analysisType == "" {
		analysisType = DefaultAnalysisType
	}

	analysis, err := h.sys.AnalyzeFile(
		r.Context(),
		header.Filename,
		data,
		analysisType,
		auth.UserID(r.Context()),
	)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, analysis)
}

// List returns a paginated list of analyses, scoped to the authenticated
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

// Find returns a single analysis by its UUID path parameter.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	analysis, err := h.sys.Find(r.Context(), id, auth.UserID(r.Context()))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, analysis)
}
