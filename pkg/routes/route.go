package routes

import "net/http"

// Route binds an HTTP method and path pattern to a handler.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// pattern returns the ServeMux pattern for r under prefix.
func (r Route) pattern(prefix string) string {
	path := prefix + r.Pattern
	if path == "" {
		path = "/"
	}
	return r.Method + " " + path
}
