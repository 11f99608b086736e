// Package registry collects the routes declared by controllers and mounts them on a gin router.
package registry

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Route is one HTTP endpoint declared by a controller.
// Validators run in order before Handler; any of them may abort the request.
type Route struct {
	Method     string
	Path       string
	Validators []gin.HandlerFunc
	Handler    gin.HandlerFunc
	Summary    string
	Tags       []string
}

// Controller exposes the routes it serves, relative to the registry base path
type Controller interface {
	Routes() []Route
}

// Registry is the route table of the API
type Registry struct {
	basePath string
	routes   []Route
}

var methods = map[string]bool{
	http.MethodGet:    true,
	http.MethodPost:   true,
	http.MethodPut:    true,
	http.MethodPatch:  true,
	http.MethodDelete: true,
}

// New creates a registry whose routes are served below basePath
func New(basePath string) *Registry {
	return &Registry{basePath: "/" + strings.Trim(basePath, "/")}
}

// BasePath returns the normalized prefix, "/" when none was given
func (r *Registry) BasePath() string {
	return r.basePath
}

// Register adds every route of the given controllers.
// A route without a known method, a path or a handler is a programming error and panics.
func (r *Registry) Register(controllers ...Controller) {
	for _, ctrl := range controllers {
		for _, route := range ctrl.Routes() {
			route.Method = strings.ToUpper(route.Method)
			if !methods[route.Method] {
				panic(fmt.Sprintf("registry: unsupported method %q for %q", route.Method, route.Path))
			}
			if route.Path == "" || route.Path[0] != '/' {
				panic(fmt.Sprintf("registry: path %q must start with '/'", route.Path))
			}
			if route.Handler == nil {
				panic(fmt.Sprintf("registry: %s %s has no handler", route.Method, route.Path))
			}
			route.Path = r.join(route.Path)
			r.routes = append(r.routes, route)
		}
	}
}

// Routes returns every registered route with its full path
func (r *Registry) Routes() []Route {
	out := make([]Route, len(r.routes))
	copy(out, r.routes)
	return out
}

// Mount registers every route on router, validators first
func (r *Registry) Mount(router gin.IRoutes) {
	for _, route := range r.routes {
		chain := make([]gin.HandlerFunc, 0, len(route.Validators)+1)
		chain = append(chain, route.Validators...)
		chain = append(chain, route.Handler)
		router.Handle(route.Method, route.Path, chain...)
	}
}

func (r *Registry) join(path string) string {
	if r.basePath == "/" {
		return path
	}
	if path == "/" {
		return r.basePath
	}
	return r.basePath + path
}
