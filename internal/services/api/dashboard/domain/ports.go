package domain

import (
	"context"

	"launchdeck/internal/core/selection"
)

// ServicePort is consumed by handlers
type ServicePort interface {
	Create(ctx context.Context, f selection.FilterState) (State, error)
	Get(ctx context.Context, sid string) (State, error)
	SetYear(ctx context.Context, sid string, year *int) (State, error)
	SetFilter(ctx context.Context, sid string, o selection.Outcome) (State, error)
	Select(ctx context.Context, sid, launchID string) (State, error)
	SetGrid(ctx context.Context, sid string, minimized bool) (State, error)
	Crew(ctx context.Context, sid string) (CrewState, error)
	Delete(ctx context.Context, sid string) error
}
