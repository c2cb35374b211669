// Package api provides the HTTP API for the application
package api

import (
	"time"

	"launchdeck/internal/platform/config"
	"launchdeck/internal/platform/logger"
	phttp "launchdeck/internal/platform/net/http"

	"launchdeck/internal/modkit"
	"launchdeck/internal/modkit/httpkit"
	"launchdeck/internal/modkit/module"
	"launchdeck/internal/modkit/swaggerkit"

	dashmod "launchdeck/internal/services/api/dashboard/module"
	launchesmod "launchdeck/internal/services/api/launches/module"
	launchessvc "launchdeck/internal/services/api/launches/service"
	metamod "launchdeck/internal/services/api/meta/module"
	crewdom "launchdeck/internal/services/crew/domain"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	Catalog        launchessvc.Service
	Resolver       crewdom.ResolverPort
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
// the returned func stops background work owned by the modules
func Mount(r phttp.Router, opt Options) func() {
	deps := modkit.Deps{Cfg: opt.Config, Log: opt.Logger}
	log := deps.Logger("api")

	// the launches module owns the catalog port the others read from
	launches := launchesmod.New(deps, opt.Catalog)
	catalog := module.MustPortsOf[launchesmod.Ports](launches).Catalog

	dashboard := dashmod.New(
		deps,
		modkit.WithPorts(dashmod.Ports{
			Catalog:  catalog,
			Resolver: opt.Resolver,
		}),
	)

	mods := []module.Module{
		metamod.New(deps, catalog),
		launches,
		dashboard,
	}

	stack := httpkit.CommonStack(httpkit.StackOptions{
		CORSOrigins: opt.Config.MayCSV("CORS_ORIGINS", []string{"http://localhost:5173"}),
		Slow:        opt.Config.MayDuration("SLOW_REQUEST", 500*time.Millisecond),
		Timeout:     opt.Config.MayDuration("REQUEST_TIMEOUT", 30*time.Second),
		MaxInFlight: opt.Config.MayInt("MAX_INFLIGHT", 256),
	})

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
			log.Debug().Str("module", m.Name()).Msg("module mounted")
		}
	})

	return func() {
		for _, m := range mods {
			if c, ok := m.(interface{ Close() }); ok {
				c.Close()
			}
		}
	}
}
