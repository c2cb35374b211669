// Package modkit assembles API modules from options and shared deps
package modkit

import (
	"net/http"

	"launchdeck/internal/modkit/module"
	"launchdeck/internal/platform/config"
	"launchdeck/internal/platform/logger"
	phttp "launchdeck/internal/platform/net/http"
	str "launchdeck/internal/platform/strings"
)

// Module is the contract every API module satisfies
type Module = module.Module

// Deps are handed to every module constructor
type Deps struct {
	Cfg config.Conf
	Log *logger.Logger
}

// Logger returns d.Log or a component logger named after the module
func (d Deps) Logger(component string) *logger.Logger {
	if d.Log != nil {
		l := d.Log.With().Str("component", component).Logger()
		return &l
	}
	return logger.Named(component)
}

// Base carries a module's built options and mounts its routes; modules embed it
type Base struct {
	name     string
	prefix   string
	mw       []func(http.Handler) http.Handler
	injected any
	exported any
	own      []func(phttp.Router)
	extra    []func(phttp.Router)
}

// Build applies opts in order and returns the resulting Base
func Build(opts ...Option) Base {
	var b Base
	for _, o := range opts {
		o(&b)
	}
	return b
}

// Handle adds the module's own route registration; it runs before any WithRoutes hooks
func (b *Base) Handle(fn func(phttp.Router)) {
	if fn != nil {
		b.own = append(b.own, fn)
	}
}

// Export sets the port set other modules can pull with module.PortsOf
func (b *Base) Export(ports any) { b.exported = ports }

// Ports returns the exported port set
func (b *Base) Ports() any { return b.exported }

// Name returns the module name; it panics when unset
func (b *Base) Name() string { return str.MustString(b.name, "module name") }

// Prefix returns the normalized route prefix; it panics when unset
func (b *Base) Prefix() string { return str.MustPrefix(b.prefix) }

// Middlewares returns the per module middleware in mount order
func (b *Base) Middlewares() []func(http.Handler) http.Handler { return b.mw }

// MountRoutes mounts the module under its prefix with its own middleware
func (b *Base) MountRoutes(r phttp.Router) {
	r.Route(b.Prefix(), func(rr phttp.Router) {
		if len(b.mw) > 0 {
			rr.Use(b.mw...)
		}
		for _, fn := range b.own {
			fn(rr)
		}
		for _, fn := range b.extra {
			fn(rr)
		}
	})
}

// Injected returns the port set passed with WithPorts when it has type T
func Injected[T any](b *Base) (T, bool) {
	v, ok := b.injected.(T)
	return v, ok
}
