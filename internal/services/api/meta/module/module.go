// Package module mounts the meta endpoints under /meta
package module

import (
	"time"

	modkit "launchdeck/internal/modkit"
	"launchdeck/internal/modkit/httpkit"
	metahttp "launchdeck/internal/services/api/meta/http"
)

// Module is the meta module; it exports no ports
type Module struct {
	modkit.Base
	startedAt time.Time
}

// New constructs the meta module; a nil catalog skips the readiness check
func New(deps modkit.Deps, catalog metahttp.StatusSource, opts ...modkit.Option) *Module {
	m := &Module{
		Base:      modkit.Build(append([]modkit.Option{modkit.WithName("meta"), modkit.WithPrefix("/meta")}, opts...)...),
		startedAt: time.Now(),
	}
	m.Handle(func(r httpkit.Router) {
		metahttp.Register(r, metahttp.Deps{
			ServiceName: "launchdeck-api",
			StartedAt:   m.startedAt,
			Catalog:     catalog,
		})
	})
	return m
}
