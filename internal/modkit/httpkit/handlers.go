// Package httpkit is what modules use to mount endpoints: return style handlers,
// query binding, path params and the versioned api scope
package httpkit

import (
	"net/http"
	"strings"

	perr "launchdeck/internal/platform/errors"
	phttp "launchdeck/internal/platform/net/http"
	"launchdeck/internal/platform/net/http/bind"

	"github.com/go-chi/chi/v5"
)

// Router is the platform routing seam
type Router = phttp.Router

// HandlerFunc returns data for a 200 envelope, a phttp.Response for anything else, or an error
type HandlerFunc = func(*http.Request) (any, error)

// Created wraps data in a 201
func Created(data any) phttp.Response { return phttp.Created(data) }

// NoContent is an empty 204
func NoContent() phttp.Response { return phttp.NoContent() }

// Call adapts fn to the platform handler type
func Call(fn HandlerFunc) phttp.Handler {
	return phttp.Handle(func(r *http.Request) phttp.Response {
		out, err := fn(r)
		if err != nil {
			return phttp.Error(err)
		}
		if resp, ok := out.(phttp.Response); ok {
			return resp
		}
		return phttp.OK(out)
	})
}

// WithQuery binds and validates the query string into T before calling fn
func WithQuery[T any](fn func(*http.Request, T) (any, error)) HandlerFunc {
	return func(r *http.Request) (any, error) {
		in, err := bind.ParseQuery[T](r)
		if err != nil {
			return nil, err
		}
		return fn(r, in)
	}
}

// Get mounts fn under GET
func Get(r Router, path string, fn HandlerFunc) { r.Get(path, Call(fn)) }

// Post mounts fn under POST
func Post(r Router, path string, fn HandlerFunc) { r.Post(path, Call(fn)) }

// Delete mounts fn under DELETE
func Delete(r Router, path string, fn HandlerFunc) { r.Delete(path, Call(fn)) }

// GetQuery mounts a query bound fn under GET
func GetQuery[T any](r Router, path string, fn func(*http.Request, T) (any, error)) {
	Get(r, path, WithQuery(fn))
}

// PostQuery mounts a query bound fn under POST; dashboard transitions carry no body
func PostQuery[T any](r Router, path string, fn func(*http.Request, T) (any, error)) {
	Post(r, path, WithQuery(fn))
}

// MustParam returns the trimmed path parameter name or an invalid argument error when blank
func MustParam(r *http.Request, name string) (string, error) {
	v := strings.TrimSpace(chi.URLParam(r, name))
	if v == "" {
		return "", perr.WithField(perr.InvalidArgf("%s is required", name), name)
	}
	return v, nil
}
