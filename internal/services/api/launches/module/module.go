// Package module mounts the launch catalog under /launches
package module

import (
	modkit "launchdeck/internal/modkit"
	"launchdeck/internal/modkit/httpkit"
	"launchdeck/internal/services/api/launches/domain"
	launcheshttp "launchdeck/internal/services/api/launches/http"
	launchessvc "launchdeck/internal/services/api/launches/service"
)

// Ports is what the launches module exports to the rest of the API
type Ports struct {
	Catalog domain.CatalogPort
}

// Module is the launches module
type Module struct {
	modkit.Base
	svc launchessvc.Service
}

// New constructs the launches module over an already loaded catalog
func New(deps modkit.Deps, catalog launchessvc.Service, opts ...modkit.Option) *Module {
	if catalog == nil {
		panic("launches module requires a catalog")
	}
	m := &Module{
		Base: modkit.Build(append([]modkit.Option{modkit.WithName("launches"), modkit.WithPrefix("/launches")}, opts...)...),
		svc:  catalog,
	}
	m.Export(Ports{Catalog: catalog})
	m.Handle(func(r httpkit.Router) { launcheshttp.Register(r, m.svc) })
	return m
}
