package module

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/mano7284/PRD2workflow-Backend/pkg/middleware"
)

// Module mounts an inner router beneath a single-level path prefix. Requests
// reach the inner router with the prefix stripped, after passing through the
// module's own middleware stack.
type Module struct {
	prefix string
	inner  http.Handler
	stack  middleware.System
}

// New builds a Module for the given prefix (e.g. "/api"). The prefix must be
// non-empty, start with a slash, and contain exactly one path segment;
// anything else panics since it is a wiring mistake, not a runtime condition.
func New(prefix string, inner http.Handler) *Module {
	if err := checkPrefix(prefix); err != nil {
		panic(err)
	}
	return &Module{prefix: prefix, inner: inner, stack: middleware.New()}
}

// Prefix returns the mount point.
func (m *Module) Prefix() string {
	return m.prefix
}

// Use appends middleware to the module stack.
func (m *Module) Use(mw func(http.Handler) http.Handler) {
	m.stack.Use(mw)
}

// Handler returns the inner router wrapped in the module middleware.
func (m *Module) Handler() http.Handler {
	return m.stack.Apply(m.inner)
}

// Serve rewrites the request path relative to the module prefix and hands it
// to the wrapped inner router. The incoming request is shallow-copied so the
// caller's URL is left untouched.
func (m *Module) Serve(w http.ResponseWriter, req *http.Request) {
	inner := new(http.Request)
	*inner = *req
	inner.URL = new(url.URL)
	*inner.URL = *req.URL
	inner.URL.Path = stripPrefix(req.URL.Path, m.prefix)
	inner.URL.RawPath = ""

	m.Handler().ServeHTTP(w, inner)
}

func stripPrefix(full, prefix string) string {
	rest := full[len(prefix):]
	if rest == "" {
		return "/"
	}
	return rest
}

func checkPrefix(prefix string) error {
	switch {
	case prefix == "":
		return fmt.Errorf("module prefix cannot be empty")
	case !strings.HasPrefix(prefix, "/"):
		return fmt.Errorf("module prefix must start with /: %s", prefix)
	case strings.Count(prefix, "/") != 1:
		return fmt.Errorf("module prefix must be single-level sub-path: %s", prefix)
	}
	return nil
}
