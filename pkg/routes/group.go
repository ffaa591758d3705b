package routes

import "net/http"

// Group collects routes under a shared prefix. Children nest beneath the
// parent prefix, so a tree of groups flattens to absolute patterns at
// registration time.
type Group struct {
	Prefix   string
	Routes   []Route
	Children []Group
}

// Register walks each group tree and installs every route on the mux using
// Go 1.22 method-qualified patterns.
func Register(mux *http.ServeMux, groups ...Group) {
	for _, g := range groups {
		g.register(mux, "")
	}
}

func (g Group) register(mux *http.ServeMux, parent string) {
	prefix := parent + g.Prefix
	for _, r := range g.Routes {
		mux.HandleFunc(r.Method+" "+prefix+r.Pattern, r.Handler)
	}
	for _, child := range g.Children {
		child.register(mux, prefix)
	}
}
