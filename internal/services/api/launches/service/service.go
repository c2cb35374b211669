// Package service contains the launch catalog workflows
package service

import (
	"context"
	"sync"
	"time"

	"launchdeck/internal/core/launch"
	"launchdeck/internal/core/selection"
	"launchdeck/internal/core/stats"
	perr "launchdeck/internal/platform/errors"
	"launchdeck/internal/platform/logger"
	"launchdeck/internal/services/api/launches/domain"
	crewdom "launchdeck/internal/services/crew/domain"

	"golang.org/x/sync/singleflight"
)

// Service defines the catalog service contract
type Service interface {
	domain.CatalogPort
	List(ctx context.Context, in domain.ListInput) ([]domain.LaunchCard, error)
	Detail(ctx context.Context, id string) (domain.LaunchDetail, error)
	StatsView(ctx context.Context) (domain.StatsResponse, error)
	Crew(ctx context.Context, id string) (domain.CrewResponse, error)
}

// Catalog holds the launch set fetched once at startup and its derived stats
type Catalog struct {
	loader   domain.LoaderPort
	resolver crewdom.ResolverPort
	log      logger.Logger
	now      func() time.Time

	once    sync.Once
	flights singleflight.Group
	mu      sync.RWMutex
	all     []launch.Launch
	byID    map[string]int
	stats   stats.Stats
	status  domain.LoadStatus
}

var _ Service = (*Catalog)(nil)

// New constructs a catalog; Load must be called before it serves data
func New(loader domain.LoaderPort, resolver crewdom.ResolverPort) *Catalog {
	if loader == nil {
		panic("launches.Catalog requires a non nil LoaderPort")
	}
	if resolver == nil {
		panic("launches.Catalog requires a non nil ResolverPort")
	}
	return &Catalog{
		loader:   loader,
		resolver: resolver,
		log:      *logger.Named("catalog"),
		now:      time.Now,
		all:      []launch.Launch{},
		byID:     map[string]int{},
		stats:    stats.Compute(nil),
		status:   domain.LoadStatus{Status: domain.LoadPending},
	}
}

// Load fetches the launch set exactly once; later calls return the recorded status
// a failed fetch leaves the catalog empty and is reported through Status
func (c *Catalog) Load(ctx context.Context) domain.LoadStatus {
	c.once.Do(func() {
		raw, err := c.loader.LoadLaunches(ctx)
		st := domain.LoadStatus{LoadedAt: c.now().UTC()}
		if err != nil {
			c.log.Error().Err(err).Msg("error fetching launches")
			raw = nil
			st.Status = domain.LoadFailed
			st.Error = err.Error()
		}

		seen := make(map[string]struct{}, len(raw))
		uniq := make([]launch.Launch, 0, len(raw))
		for _, l := range raw {
			if _, dup := seen[l.ID]; dup {
				c.log.Warn().Str("launch_id", l.ID).Msg("duplicate launch id dropped")
				continue
			}
			seen[l.ID] = struct{}{}
			uniq = append(uniq, l)
		}

		all := launch.SortDesc(uniq)
		byID := make(map[string]int, len(all))
		for i, l := range all {
			byID[l.ID] = i
		}
		st.Count = len(all)
		if st.Status == "" {
			st.Status = domain.LoadOK
			if len(all) == 0 {
				st.Status = domain.LoadEmpty
			}
		}

		c.mu.Lock()
		c.all = all
		c.byID = byID
		c.stats = stats.Compute(all)
		c.status = st
		c.mu.Unlock()

		c.log.Info().Str("status", st.Status).Int("launches", st.Count).Int("years", len(c.stats.Years)).Msg("launch catalog loaded")
	})
	return c.Status()
}

// Launches returns every launch newest first
func (c *Catalog) Launches() []launch.Launch {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.all
}

// Launch looks up one launch by id
func (c *Catalog) Launch(id string) (launch.Launch, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.byID[id]
	if !ok {
		return launch.Launch{}, false
	}
	return c.all[i], true
}

// Stats returns the per-year aggregates
func (c *Catalog) Stats() stats.Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}

// Status returns the load status
func (c *Catalog) Status() domain.LoadStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status
}

// List returns the filtered view as launch cards, newest first
func (c *Catalog) List(_ context.Context, in domain.ListInput) ([]domain.LaunchCard, error) {
	o, err := selection.ParseOutcome(in.Filter)
	if err != nil {
		return nil, err
	}
	view := selection.Apply(c.Launches(), selection.FilterState{Year: in.Year, Outcome: o})
	return Cards(view), nil
}

// Detail returns the detail payload for id
func (c *Catalog) Detail(_ context.Context, id string) (domain.LaunchDetail, error) {
	l, ok := c.Launch(id)
	if !ok {
		return domain.LaunchDetail{}, perr.NotFoundf("launch %s not found", id)
	}
	return Detail(l), nil
}

// StatsView returns the aggregates in wire form
func (c *Catalog) StatsView(_ context.Context) (domain.StatsResponse, error) {
	s := c.Stats()
	return domain.StatsResponse{
		Years:            s.Years,
		YearLaunchCounts: s.YearLaunchCounts,
		YearSuccessRates: s.YearSuccessRates,
		Buckets:          s.Buckets(),
		Total:            s.Total(),
	}, nil
}

// Crew resolves a fresh enriched roster for id
// concurrent requests for the same launch share one resolution
func (c *Catalog) Crew(ctx context.Context, id string) (domain.CrewResponse, error) {
	l, ok := c.Launch(id)
	if !ok {
		return domain.CrewResponse{}, perr.NotFoundf("launch %s not found", id)
	}
	fctx := context.WithoutCancel(ctx)
	ch := c.flights.DoChan(l.ID, func() (any, error) {
		return c.resolver.Resolve(fctx, l), nil
	})
	select {
	case res := <-ch:
		crew, _ := res.Val.([]crewdom.EnrichedCrewMember)
		if crew == nil {
			crew = []crewdom.EnrichedCrewMember{}
		}
		return domain.CrewResponse{LaunchID: l.ID, Crew: crew}, nil
	case <-ctx.Done():
		return domain.CrewResponse{}, perr.Wrapf(ctx.Err(), perr.ErrorCodeUnavailable, "crew resolution for %s interrupted", l.ID)
	}
}
