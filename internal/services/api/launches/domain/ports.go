package domain

import (
	"context"

	"launchdeck/internal/core/launch"
	"launchdeck/internal/core/stats"
)

// LoaderPort fetches the raw launch set and reports failures
type LoaderPort interface {
	LoadLaunches(ctx context.Context) ([]launch.Launch, error)
}

// CatalogPort is consumed by handlers and by the dashboard module
type CatalogPort interface {
	Launches() []launch.Launch
	Launch(id string) (launch.Launch, bool)
	Stats() stats.Stats
	Status() LoadStatus
}
