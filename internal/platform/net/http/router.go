// Package http is the transport layer: the router seam over chi, the server and the response envelope
package http

import "net/http"

// Handler is the handler func type mounted on a Router
type Handler = func(http.ResponseWriter, *http.Request)

// Router is the routing surface modules mount against
type Router interface {
	Get(path string, h Handler)
	Post(path string, h Handler)
	Delete(path string, h Handler)
	Handle(path string, h http.Handler)
	Use(mw ...func(http.Handler) http.Handler)
	Route(pattern string, fn func(Router))

	// Mux is the handler for the whole tree this router belongs to
	Mux() http.Handler
}
