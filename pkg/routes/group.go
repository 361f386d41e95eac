// Package routes declares HTTP route groups and registers them on a ServeMux.
package routes

import "net/http"

// Group organizes routes and nested groups under a common prefix.
type Group struct {
	Prefix   string
	Routes   []Route
	Children []Group
}

// Register adds every route in groups to mux, prefixed by basePath.
func Register(mux *http.ServeMux, basePath string, groups ...Group) {
	for _, group := range groups {
		register(mux, basePath, group)
	}
}

func register(mux *http.ServeMux, parent string, group Group) {
	prefix := parent + group.Prefix
	for _, route := range group.Routes {
		mux.HandleFunc(route.pattern(prefix), route.Handler)
	}
	for _, child := range group.Children {
		register(mux, prefix, child)
	}
}
