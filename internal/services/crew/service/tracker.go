package service

import (
	"context"
	"sync"

	"launchdeck/internal/core/launch"
	"launchdeck/internal/platform/logger"
	dom "launchdeck/internal/services/crew/domain"
)

// Ticket tags one resolution with the launch it was started for
type Ticket struct {
	LaunchID   string
	Generation uint64
}

// Tracker owns one detail slot and only applies the newest resolution to it
// every Begin supersedes earlier tickets; their completions are discarded on arrival
type Tracker struct {
	mu       sync.Mutex
	gen      uint64
	launchID string
	crew     []dom.EnrichedCrewMember
	ready    bool
	cancel   context.CancelFunc
	done     chan struct{}

	log logger.Logger
}

// NewTracker returns an empty slot
func NewTracker() *Tracker {
	return &Tracker{log: *logger.Named("crew_tracker")}
}

// Begin starts a resolution for launchID; the returned context is cancelled once superseded
func (t *Tracker) Begin(ctx context.Context, launchID string) (context.Context, Ticket) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.beginLocked(ctx, launchID)
}

func (t *Tracker) beginLocked(ctx context.Context, launchID string) (context.Context, Ticket) {
	if t.cancel != nil {
		t.cancel()
	}
	if t.done != nil {
		close(t.done)
	}
	t.gen++
	t.launchID = launchID
	t.crew = nil
	t.ready = false
	t.done = make(chan struct{})

	cctx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	return cctx, Ticket{LaunchID: launchID, Generation: t.gen}
}

// Commit applies crew if tk is still the newest ticket; it reports whether the result was applied
func (t *Tracker) Commit(tk Ticket, crew []dom.EnrichedCrewMember) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if tk.Generation != t.gen || tk.LaunchID != t.launchID {
		t.log.Debug().
			Str("launch_id", tk.LaunchID).
			Uint64("generation", tk.Generation).
			Str("current_launch_id", t.launchID).
			Uint64("current_generation", t.gen).
			Msg("stale crew resolution discarded")
		return false
	}
	if crew == nil {
		crew = []dom.EnrichedCrewMember{}
	}
	t.crew = crew
	t.ready = true
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	if t.done != nil {
		close(t.done)
		t.done = nil
	}
	return true
}

// Current returns the slot contents
func (t *Tracker) Current() dom.Enrichment {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.currentLocked()
}

func (t *Tracker) currentLocked() dom.Enrichment {
	out := dom.Enrichment{LaunchID: t.launchID, Generation: t.gen, Ready: t.ready}
	if t.ready {
		out.Crew = make([]dom.EnrichedCrewMember, len(t.crew))
		copy(out.Crew, t.crew)
	}
	return out
}

// Start supersedes the slot with l and resolves it in the background
// the ticket is taken before Start returns, so call order decides which launch wins
func (t *Tracker) Start(ctx context.Context, r dom.ResolverPort, l launch.Launch) Ticket {
	rctx, tk := t.Begin(ctx, l.ID)
	go func() {
		t.Commit(tk, r.Resolve(rctx, l))
	}()
	return tk
}

// Resolve runs a fresh resolution for l and commits it unless a newer one started meanwhile
// it returns the slot contents afterwards, which belong to whichever launch is newest
func (t *Tracker) Resolve(ctx context.Context, r dom.ResolverPort, l launch.Launch) dom.Enrichment {
	rctx, tk := t.Begin(ctx, l.ID)
	crew := r.Resolve(rctx, l)
	t.Commit(tk, crew)
	return t.Current()
}

// Join claims the slot for l and returns the channel closed when its resolution settles
// a resolution rooted on base starts only when the slot holds another launch; nil means l is already resolved
// callers that must order Join against Start hold their own lock across the call
func (t *Tracker) Join(base context.Context, r dom.ResolverPort, l launch.Launch) <-chan struct{} {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.launchID == l.ID && t.gen > 0 {
		if t.ready {
			return nil
		}
		return t.done
	}
	rctx, tk := t.beginLocked(base, l.ID)
	go func() {
		t.Commit(tk, r.Resolve(rctx, l))
	}()
	return t.done
}

// Wait blocks until done closes or ctx ends and returns the slot contents
func (t *Tracker) Wait(ctx context.Context, done <-chan struct{}) dom.Enrichment {
	if done != nil {
		select {
		case <-done:
		case <-ctx.Done():
		}
	}
	return t.Current()
}

// Ensure joins or starts the resolution for l and waits for it on ctx
// the resolution itself runs on base, so a caller leaving early does not abort it
func (t *Tracker) Ensure(ctx, base context.Context, r dom.ResolverPort, l launch.Launch) dom.Enrichment {
	return t.Wait(ctx, t.Join(base, r, l))
}

// Stop cancels any in-flight resolution and empties the slot; late completions are discarded
func (t *Tracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	if t.done != nil {
		close(t.done)
		t.done = nil
	}
	t.gen++
	t.launchID = ""
	t.crew = nil
	t.ready = false
}
