package modkit

import (
	"net/http"

	phttp "launchdeck/internal/platform/net/http"
)

// Option configures a module Base
type Option func(*Base)

// WithName sets the module name used in logs and the port registry
func WithName(name string) Option {
	return func(b *Base) { b.name = name }
}

// WithPrefix sets the path the module mounts under
func WithPrefix(prefix string) Option {
	return func(b *Base) { b.prefix = prefix }
}

// WithMiddlewares appends per module middleware
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Base) { b.mw = append(b.mw, mw...) }
}

// WithPorts injects ports owned by other modules; the consuming module defines T
func WithPorts[T any](p T) Option {
	return func(b *Base) { b.injected = p }
}

// WithRoutes attaches extra endpoints after the module's own
func WithRoutes(fn func(phttp.Router)) Option {
	return func(b *Base) {
		if fn != nil {
			b.extra = append(b.extra, fn)
		}
	}
}
