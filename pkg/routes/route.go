package routes

import "net/http"

// Route pairs a method and path pattern with its handler. Pattern is
// relative to the owning group's prefix and may be empty for the
// collection root.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}
