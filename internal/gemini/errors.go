package gemini

import (
	"errors"
	"net/http"
)

// Failure taxonomy for generation calls. Retryable causes surface only after
// the attempt budget is exhausted; ErrRejected and ErrEmptyResponse are
// terminal on first occurrence.
var (
	ErrOverloaded    = errors.New("generation service overloaded")
	ErrRateLimited   = errors.New("generation service rate limited")
	ErrTimeout       = errors.New("generation request timed out")
	ErrUnreachable   = errors.New("generation service unreachable")
	ErrRejected      = errors.New("generation request rejected")
	ErrEmptyResponse = errors.New("generation response contained no content")
)

// MapHTTPStatus maps generation errors to the status codes surfaced to API callers.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrOverloaded), errors.Is(err, ErrUnreachable):
		return http.StatusServiceUnavailable
	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, ErrRejected), errors.Is(err, ErrEmptyResponse):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
