package domain

import (
	"context"

	"launchdeck/internal/adapters/nasa"
	"launchdeck/internal/adapters/spacex"
	"launchdeck/internal/core/launch"
)

// MemberPort fetches a crew profile by id; nil means the lookup failed
type MemberPort interface {
	FetchCrewMember(ctx context.Context, id string) *spacex.CrewMember
}

// SupplementPort fetches supplementary text keyed by member name; nil means the lookup failed
type SupplementPort interface {
	FetchNASAAstronautData(ctx context.Context, name string) *nasa.Picture
}

// ResolverPort resolves an enriched roster for a launch
type ResolverPort interface {
	Resolve(ctx context.Context, l launch.Launch) []EnrichedCrewMember
}
