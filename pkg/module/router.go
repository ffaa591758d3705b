package module

import (
	"net/http"
	"strings"
)

// Router dispatches by first path segment to a mounted Module, with a plain
// ServeMux fallback for paths no module claims (probes, redirects).
type Router struct {
	mounts map[string]*Module
	native *http.ServeMux
}

func NewRouter() *Router {
	return &Router{
		mounts: make(map[string]*Module),
		native: http.NewServeMux(),
	}
}

// Mount registers a module under its prefix. A later Mount with the same
// prefix replaces the earlier one.
func (r *Router) Mount(m *Module) {
	r.mounts[m.prefix] = m
}

// HandleNative registers a handler on the fallback mux, outside any module.
func (r *Router) HandleNative(pattern string, handler http.HandlerFunc) {
	r.native.HandleFunc(pattern, handler)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	path := trimTrailingSlash(req)

	if m, ok := r.mounts[firstSegment(path)]; ok {
		m.Serve(w, req)
		return
	}
	r.native.ServeHTTP(w, req)
}

// firstSegment reduces "/api/v1/things" to "/api".
func firstSegment(path string) string {
	parts := strings.SplitN(path, "/", 3)
	if len(parts) >= 2 {
		return "/" + parts[1]
	}
	return path
}

func trimTrailingSlash(req *http.Request) string {
	path := req.URL.Path
	if len(path) > 1 && strings.HasSuffix(path, "/") {
		path = strings.TrimSuffix(path, "/")
		req.URL.Path = path
	}
	return path
}
