// Package service resolves enriched crew rosters
package service

import (
	"context"
	"strings"

	"launchdeck/internal/adapters/nasa"
	"launchdeck/internal/adapters/spacex"
	"launchdeck/internal/core/launch"
	"launchdeck/internal/platform/logger"
	dom "launchdeck/internal/services/crew/domain"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Resolver fans out member and supplementary lookups for a roster
type Resolver struct {
	members dom.MemberPort
	supp    dom.SupplementPort
	log     logger.Logger
}

var _ dom.ResolverPort = (*Resolver)(nil)

// New constructs a Resolver
func New(members dom.MemberPort, supp dom.SupplementPort) *Resolver {
	if members == nil {
		panic("crew.Resolver requires a non nil MemberPort")
	}
	if supp == nil {
		panic("crew.Resolver requires a non nil SupplementPort")
	}
	return &Resolver{members: members, supp: supp, log: *logger.Named("crew")}
}

// Resolve fetches every roster entry concurrently and joins by roster index
// members whose profile lookup fails are dropped; a failed supplement leaves NasaData nil
func (r *Resolver) Resolve(ctx context.Context, l launch.Launch) []dom.EnrichedCrewMember {
	if len(l.Crew) == 0 {
		return []dom.EnrichedCrewMember{}
	}

	slots := make([]*dom.EnrichedCrewMember, len(l.Crew))
	g, gctx := errgroup.WithContext(ctx)
	for i, ref := range l.Crew {
		g.Go(func() error {
			m := r.members.FetchCrewMember(gctx, ref.Crew)
			if m == nil {
				return nil
			}
			e := enrich(*m, ref)
			e.NasaData = supplement(r.supp.FetchNASAAstronautData(gctx, m.Name))
			slots[i] = &e
			return nil
		})
	}
	_ = g.Wait()

	out := make([]dom.EnrichedCrewMember, 0, len(slots))
	for _, s := range slots {
		if s != nil {
			out = append(out, *s)
		}
	}
	if dropped := len(l.Crew) - len(out); dropped > 0 {
		r.log.Warn().Str("launch_id", l.ID).Int("dropped", dropped).Int("roster", len(l.Crew)).Msg("crew members unresolved")
	}
	return out
}

// label title-cases a wire value; a Caser is stateful so each call builds its own
func label(s string) string {
	return cases.Title(language.English).String(strings.TrimSpace(s))
}

func enrich(m spacex.CrewMember, ref launch.CrewRef) dom.EnrichedCrewMember {
	role := ref.Role
	if role == "" {
		role = m.Role
	}
	roleLabel := "Crew Member"
	if role != "" {
		roleLabel = label(role)
	}
	return dom.EnrichedCrewMember{
		ID:          m.ID,
		Name:        m.Name,
		Role:        role,
		RoleLabel:   roleLabel,
		Status:      m.Status,
		StatusLabel: label(m.Status),
		Image:       m.Image,
		Agency:      m.Agency,
		Wikipedia:   m.Wikipedia,
	}
}

func supplement(p *nasa.Picture) *dom.Supplement {
	if p == nil {
		return nil
	}
	return &dom.Supplement{Title: p.Title, Explanation: p.Explanation, URL: p.URL, Date: p.Date}
}
