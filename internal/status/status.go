// Package status implements the status check domain, a minimal
// client-ping record used to verify end-to-end connectivity.
package status

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Check represents one recorded status ping.
type Check struct {
	ID         uuid.UUID `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

// CreateCommand carries the inputs for recording a status check.
type CreateCommand struct {
	ClientName string `json:"client_name"`
}

// Domain errors for status check operations.
var (
	ErrInvalidRequest   = errors.New("invalid status check request")
	ErrStoreUnavailable = errors.New("status store unavailable")
)

// MapHTTPStatus maps status domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
