package workflows

import (
	"errors"
	"net/http"

	"github.com/mano7284/PRD2workflow-Backend/internal/gemini"
)

// Domain errors for workflow operations.
var (
	ErrNotFound         = errors.New("workflow not found")
	ErrDuplicate        = errors.New("workflow already exists")
	ErrEmptyDocument    = errors.New("document content is empty")
	ErrInvalidRequest   = errors.New("invalid workflow request")
	ErrStoreUnavailable = errors.New("workflow store unavailable")
)

// MapHTTPStatus maps workflow domain errors to HTTP status codes.
// Errors from the model layer keep their own mappings.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrEmptyDocument), errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return gemini.MapHTTPStatus(err)
	}
}
