// Package module mounts dashboard sessions under /dashboard
package module

import (
	"time"

	modkit "launchdeck/internal/modkit"
	"launchdeck/internal/modkit/httpkit"
	"launchdeck/internal/platform/config"
	dashhttp "launchdeck/internal/services/api/dashboard/http"
	dashsvc "launchdeck/internal/services/api/dashboard/service"
	launchdom "launchdeck/internal/services/api/launches/domain"
	crewdom "launchdeck/internal/services/crew/domain"
)

// Ports are the dependencies the dashboard takes from other modules through modkit.WithPorts
type Ports struct {
	Catalog  launchdom.CatalogPort
	Resolver crewdom.ResolverPort
}

// FromConfig reads SESSION_TTL, MAX_SESSIONS and CREW_PREFETCH
func FromConfig(cfg config.Conf) dashsvc.Config {
	return dashsvc.Config{
		TTL:         cfg.MayDuration("SESSION_TTL", 30*time.Minute),
		MaxSessions: cfg.MayInt("MAX_SESSIONS", 1024),
		Prefetch:    cfg.MayBool("CREW_PREFETCH", true),
	}
}

// Module is the dashboard module
type Module struct {
	modkit.Base
	svc *dashsvc.Store
}

// New constructs the dashboard module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("dashboard"), modkit.WithPrefix("/dashboard")}, opts...)...)

	p, ok := modkit.Injected[Ports](&b)
	if !ok || p.Catalog == nil || p.Resolver == nil {
		panic("dashboard module requires Ports{Catalog, Resolver}")
	}
	cfg := FromConfig(deps.Cfg)
	deps.Logger("dashboard").Debug().
		Dur("session_ttl", cfg.TTL).
		Int("max_sessions", cfg.MaxSessions).
		Bool("crew_prefetch", cfg.Prefetch).
		Msg("dashboard sessions configured")

	m := &Module{Base: b, svc: dashsvc.New(p.Catalog, p.Resolver, cfg)}
	m.Handle(func(r httpkit.Router) { dashhttp.Register(r, m.svc) })
	return m
}

// Close stops background crew resolutions
func (m *Module) Close() { m.svc.Close() }
