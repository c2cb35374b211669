// Package service contains dashboard session workflows
package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"launchdeck/internal/core/launch"
	"launchdeck/internal/core/selection"
	perr "launchdeck/internal/platform/errors"
	"launchdeck/internal/platform/logger"
	"launchdeck/internal/services/api/dashboard/domain"
	launchdom "launchdeck/internal/services/api/launches/domain"
	launchsvc "launchdeck/internal/services/api/launches/service"
	crewdom "launchdeck/internal/services/crew/domain"
	crewsvc "launchdeck/internal/services/crew/service"

	"github.com/google/uuid"
)

// Config for the session store
type Config struct {
	TTL         time.Duration
	MaxSessions int
	// Prefetch starts crew resolution in the background whenever the detail launch changes
	Prefetch bool
}

// Service defines the dashboard service contract
type Service interface {
	domain.ServicePort
}

type session struct {
	id      string
	mu      sync.Mutex
	m       *selection.Machine
	crew    *crewsvc.Tracker
	touched time.Time
	target  string
}

// Store keeps one filter/selection machine and one crew slot per session
type Store struct {
	catalog  launchdom.CatalogPort
	resolver crewdom.ResolverPort
	cfg      Config
	log      logger.Logger
	now      func() time.Time

	base   context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	sessions map[string]*session
}

var _ Service = (*Store)(nil)

// New constructs a session store
func New(catalog launchdom.CatalogPort, resolver crewdom.ResolverPort, cfg Config) *Store {
	if catalog == nil {
		panic("dashboard.Store requires a non nil CatalogPort")
	}
	if resolver == nil {
		panic("dashboard.Store requires a non nil ResolverPort")
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 30 * time.Minute
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = 1024
	}
	base, cancel := context.WithCancel(context.Background())
	return &Store{
		catalog:  catalog,
		resolver: resolver,
		cfg:      cfg,
		log:      *logger.Named("dashboard"),
		now:      time.Now,
		base:     base,
		cancel:   cancel,
		sessions: map[string]*session{},
	}
}

// Close cancels every crew resolution the store started
func (s *Store) Close() { s.cancel() }

// Create starts a session, optionally restoring a filter state
func (s *Store) Create(_ context.Context, f selection.FilterState) (domain.State, error) {
	m := selection.New(s.catalog.Launches())
	m.Apply(f)

	ss := &session{
		id:      uuid.NewString(),
		m:       m,
		crew:    crewsvc.NewTracker(),
		touched: s.now(),
	}

	s.mu.Lock()
	s.sweepLocked()
	s.evictLocked(s.cfg.MaxSessions - 1)
	s.sessions[ss.id] = ss
	n := len(s.sessions)
	s.mu.Unlock()

	s.log.Debug().Str("session_id", ss.id).Int("sessions", n).Msg("dashboard session created")

	ss.mu.Lock()
	defer ss.mu.Unlock()
	return s.settle(ss, m.Snapshot()), nil
}

// Get returns the current state of a session
func (s *Store) Get(_ context.Context, sid string) (domain.State, error) {
	return s.with(sid, func(ss *session) (selection.Snapshot, error) {
		return ss.m.Snapshot(), nil
	})
}

// SetYear sets or clears the year filter
func (s *Store) SetYear(_ context.Context, sid string, year *int) (domain.State, error) {
	return s.with(sid, func(ss *session) (selection.Snapshot, error) {
		return ss.m.SetYear(year), nil
	})
}

// SetFilter sets the outcome filter
func (s *Store) SetFilter(_ context.Context, sid string, o selection.Outcome) (domain.State, error) {
	return s.with(sid, func(ss *session) (selection.Snapshot, error) {
		return ss.m.SetOutcome(o), nil
	})
}

// Select points the selection at a launch
func (s *Store) Select(_ context.Context, sid, launchID string) (domain.State, error) {
	return s.with(sid, func(ss *session) (selection.Snapshot, error) {
		return ss.m.Select(launchID)
	})
}

// SetGrid toggles the grid display mode
func (s *Store) SetGrid(_ context.Context, sid string, minimized bool) (domain.State, error) {
	return s.with(sid, func(ss *session) (selection.Snapshot, error) {
		return ss.m.SetGridMinimized(minimized), nil
	})
}

// Crew returns the enrichment for the session's detail launch
// a selection outside the current view has no detail, so its slot is empty
// the slot is claimed under the session lock so a concurrent transition cannot be overtaken by a stale target
func (s *Store) Crew(ctx context.Context, sid string) (domain.CrewState, error) {
	ss, err := s.lookup(sid)
	if err != nil {
		return domain.CrewState{}, err
	}
	ss.mu.Lock()
	target, ok := detailTarget(ss.m.Snapshot())
	if !ok {
		ss.mu.Unlock()
		return domain.CrewState{Ready: true, Crew: []crewdom.EnrichedCrewMember{}}, nil
	}
	done := ss.crew.Join(s.base, s.resolver, target)
	ss.mu.Unlock()

	return ss.crew.Wait(ctx, done), nil
}

// Delete drops a session
func (s *Store) Delete(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ss, ok := s.sessions[sid]
	if !ok {
		return perr.NotFoundf("session %s not found", sid)
	}
	s.dropLocked(ss)
	return nil
}

// Len returns the number of live sessions
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep drops sessions idle for longer than the TTL and returns how many were dropped
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweepLocked()
}

func (s *Store) lookup(sid string) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ss, ok := s.sessions[sid]
	if !ok {
		return nil, perr.NotFoundf("session %s not found", sid)
	}
	ss.touched = s.now()
	return ss, nil
}

// with applies one transition under the session lock so transitions land in arrival order
func (s *Store) with(sid string, fn func(*session) (selection.Snapshot, error)) (domain.State, error) {
	ss, err := s.lookup(sid)
	if err != nil {
		return domain.State{}, err
	}
	ss.mu.Lock()
	defer ss.mu.Unlock()

	snap, err := fn(ss)
	if err != nil {
		return domain.State{}, err
	}
	return s.settle(ss, snap), nil
}

// settle renders the state and kicks off crew resolution when the detail launch changed
// callers hold ss.mu
func (s *Store) settle(ss *session, snap selection.Snapshot) domain.State {
	st := s.render(ss.id, snap)
	target, ok := detailTarget(snap)
	if !ok {
		ss.target = ""
		return st
	}
	if target.ID != ss.target {
		ss.target = target.ID
		if s.cfg.Prefetch {
			ss.crew.Start(s.base, s.resolver, target)
		}
	}
	return st
}

func (s *Store) render(sid string, snap selection.Snapshot) domain.State {
	st := s.catalog.Stats()
	out := domain.State{
		SessionID: sid,
		Filter: domain.Filter{
			Year:   snap.Filter.Year,
			Filter: string(snap.Filter.Outcome),
		},
		Query:         snap.Filter.Query().Encode(),
		Years:         st.Years,
		View:          launchsvc.Cards(snap.View),
		Count:         len(snap.View),
		InView:        snap.InView,
		GridMinimized: snap.GridMinimized,
		CatalogStatus: s.catalog.Status(),
	}
	if snap.Filter.Year != nil {
		if b, ok := st.Bucket(*snap.Filter.Year); ok {
			out.YearStats = &b
		}
	}
	if snap.Selection != nil {
		out.SelectionID = snap.Selection.ID
		if snap.InView {
			d := launchsvc.Detail(*snap.Selection)
			out.Detail = &d
		}
	}
	return out
}

func detailTarget(snap selection.Snapshot) (launch.Launch, bool) {
	if snap.Selection == nil || !snap.InView {
		return launch.Launch{}, false
	}
	return *snap.Selection, true
}

// dropLocked removes ss and stops its crew resolution; callers hold s.mu
func (s *Store) dropLocked(ss *session) {
	delete(s.sessions, ss.id)
	ss.crew.Stop()
}

// sweepLocked drops idle sessions; callers hold s.mu
func (s *Store) sweepLocked() int {
	cutoff := s.now().Add(-s.cfg.TTL)
	n := 0
	for _, ss := range s.sessions {
		if ss.touched.Before(cutoff) {
			s.dropLocked(ss)
			n++
		}
	}
	if n > 0 {
		s.log.Debug().Int("dropped", n).Msg("idle dashboard sessions swept")
	}
	return n
}

// evictLocked drops the least recently used sessions until at most keep remain; callers hold s.mu
func (s *Store) evictLocked(keep int) {
	if keep < 0 {
		keep = 0
	}
	over := len(s.sessions) - keep
	if over <= 0 {
		return
	}
	all := make([]*session, 0, len(s.sessions))
	for _, ss := range s.sessions {
		all = append(all, ss)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].touched.Before(all[j].touched) })
	for _, ss := range all[:over] {
		s.dropLocked(ss)
	}
	s.log.Warn().Int("evicted", over).Msg("dashboard session cap reached")
}
