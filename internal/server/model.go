package server

import (
	"context"
	"fmt"
	"net/http"
)

type Action string

type Method string

const (
	Root Action = ""
	Data Action = "data"
	Api  Action = "api"

	GET Method = "GET"

	ContentJson = "application/json"
	ContentHtml = "text/html; charset=utf-8"
	ContentPng  = "image/png"
	ContentText = "text/plain; charset=utf-8"
)

// Handler processes a request and returns the payload with the status code.
// A zero code is treated as http.StatusOK.
type Handler func(ctx context.Context, r *http.Request) (payload []byte, code int, err error)

type Route struct {
	Action      Action
	Path        string
	Method      Method
	ContentType string
	Exec        Handler
}

func (r Route) pattern() string {
	switch {
	case r.Action == Root:
		return fmt.Sprintf("/%s", r.Path)
	case r.Path == "":
		return fmt.Sprintf("/%s", r.Action)
	default:
		return fmt.Sprintf("/%s/%s", r.Action, r.Path)
	}
}

// RouteBuilder helps with the construction of a route.
type RouteBuilder struct {
	route Route
}

// NewRoute creates a new route builder for the given method and action.
func NewRoute(method Method, action Action) *RouteBuilder {
	return &RouteBuilder{route: Route{
		Action:      action,
		Method:      method,
		ContentType: ContentJson,
	}}
}

// WithPath sets the path of the route under the action.
func (rb *RouteBuilder) WithPath(path string) *RouteBuilder {
	rb.route.Path = path
	return rb
}

// WithContentType sets the content type of the successful responses.
func (rb *RouteBuilder) WithContentType(contentType string) *RouteBuilder {
	rb.route.ContentType = contentType
	return rb
}

// Handler sets the handler for the route.
func (rb *RouteBuilder) Handler(exec Handler) *RouteBuilder {
	rb.route.Exec = exec
	return rb
}

// Create returns the route.
func (rb *RouteBuilder) Create() Route {
	return rb.route
}
