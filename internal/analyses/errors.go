package analyses

import (
	"errors"
	"net/http"

	"github.com/mano7284/PRD2workflow-Backend/internal/extract"
	"github.com/mano7284/PRD2workflow-Backend/internal/gemini"
)

// Domain errors for analysis operations.
var (
	ErrNotFound         = errors.New("analysis not found")
	ErrDuplicate        = errors.New("analysis already exists")
	ErrEmptyDocument    = errors.New("document content is empty")
	ErrInvalidRequest   = errors.New("invalid analysis request")
	ErrStoreUnavailable = errors.New("analysis store unavailable")
)

// MapHTTPStatus maps analysis domain errors to HTTP status codes.
// Errors from the extraction and model layers keep their own mappings.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, ErrEmptyDocument), errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, extract.ErrUnsupportedFormat), errors.Is(err, extract.ErrNoContent):
		return http.StatusBadRequest
	default:
		return gemini.MapHTTPStatus(err)
	}
}
