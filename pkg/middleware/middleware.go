package middleware

import "net/http"

// System is an ordered middleware stack. Use appends; Apply wraps a handler
// so the first middleware added is the outermost at request time.
type System interface {
	Use(mw func(http.Handler) http.Handler)
	Apply(handler http.Handler) http.Handler
}

type stack struct {
	fns []func(http.Handler) http.Handler
}

// New returns an empty System.
func New() System {
	return &stack{}
}

func (s *stack) Use(fn func(http.Handler) http.Handler) {
	s.fns = append(s.fns, fn)
}

func (s *stack) Apply(handler http.Handler) http.Handler {
	wrapped := handler
	for i := len(s.fns) - 1; i >= 0; i-- {
		wrapped = s.fns[i](wrapped)
	}
	return wrapped
}
