// @title         Launchdeck API
// @version       1.0
// @description   Launch catalog, per-year stats, dashboard sessions and crew enrichment

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"launchdeck/internal/adapters/nasa"
	"launchdeck/internal/adapters/spacex"
	"launchdeck/internal/platform/config"
	"launchdeck/internal/platform/logger"
	phttp "launchdeck/internal/platform/net/http"

	"launchdeck/internal/services/api"
	launchessvc "launchdeck/internal/services/api/launches/service"
	crewsvc "launchdeck/internal/services/crew/service"

	"golang.org/x/sync/errgroup"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	sxCfg := root.Prefix("SPACEX_") // launch data lives under SPACEX_*
	nasaCfg := root.Prefix("NASA_") // supplementary data lives under NASA_*

	// bring up logging early
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	launches := spacex.NewClient(spacex.Options{
		BaseURL:    sxCfg.MayURL("BASE_URL", spacex.BaseURLDefault),
		Timeout:    sxCfg.MayDuration("TIMEOUT", 15*time.Second),
		MaxRetries: sxCfg.MayInt("MAX_RETRIES", 2),
		RetryBase:  sxCfg.MayDuration("RETRY_BASE", 500*time.Millisecond),
		RPS:        sxCfg.MayFloat64("RPS", 0),
	})
	pictures := nasa.NewClient(nasa.Options{
		BaseURL:    nasaCfg.MayURL("BASE_URL", nasa.BaseURLDefault),
		APIKey:     nasaCfg.MayString("API_KEY", nasa.DemoKey),
		Timeout:    nasaCfg.MayDuration("TIMEOUT", 10*time.Second),
		MaxRetries: nasaCfg.MayInt("MAX_RETRIES", 1),
		RetryBase:  nasaCfg.MayDuration("RETRY_BASE", time.Second),
		RPS:        nasaCfg.MayFloat64("RPS", 1),
	})

	resolver := crewsvc.New(launches, pictures)

	// the launch set is fetched once; a failure leaves an empty catalog marked failed
	catalog := launchessvc.New(launches, resolver)
	loadCtx, cancelLoad := context.WithTimeout(ctx, apiCfg.MayDuration("LOAD_TIMEOUT", time.Minute))
	st := catalog.Load(loadCtx)
	cancelLoad()
	l.Info().Str("status", st.Status).Int("launches", st.Count).Msg("catalog ready")

	// http server (reads CORE_API_API_PORT)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	closeAPI := api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Logger:         l,
			Catalog:        catalog,
			Resolver:       resolver,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)
	defer closeAPI()

	// run until a signal arrives, then drain
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(gctx) })
	g.Go(func() error {
		<-gctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), apiCfg.MayDuration("SHUTDOWN_TIMEOUT", 10*time.Second))
		defer cancel()
		return srv.Shutdown(shutCtx)
	})
	if err := g.Wait(); err != nil {
		l.Error().Err(err).Msg("http server stopped")
		return
	}
	l.Info().Msg("http server stopped")
}
