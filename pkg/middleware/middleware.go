// Package middleware provides composable HTTP middleware.
package middleware

import "net/http"

// Middleware wraps an http.Handler with additional behavior.
type Middleware func(http.Handler) http.Handler

// Stack is an ordered list of middleware applied outermost-first.
type Stack []Middleware

// Use appends mw to the stack.
func (s *Stack) Use(mw Middleware) {
	*s = append(*s, mw)
}

// Apply wraps handler so that the first middleware added runs first.
func (s Stack) Apply(handler http.Handler) http.Handler {
	for i := len(s) - 1; i >= 0; i-- {
		handler = s[i](handler)
	}
	return handler
}
