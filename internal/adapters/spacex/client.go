// Package spacex reads launches and crew members from the SpaceX v4 REST API
package spacex

import (
	"context"
	"net/url"
	"strings"
	"time"

	"launchdeck/internal/adapters/upstream"
	"launchdeck/internal/core/launch"
	"launchdeck/internal/platform/logger"
)

// BaseURLDefault is the public v4 endpoint
const BaseURLDefault = "https://api.spacexdata.com/v4"

// CrewMember is a crew profile as served by /crew/{id}
type CrewMember struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Role      string   `json:"role,omitempty"`
	Status    string   `json:"status"`
	Image     string   `json:"image"`
	Agency    string   `json:"agency"`
	Wikipedia string   `json:"wikipedia"`
	Launches  []string `json:"launches,omitempty"`
}

// Options configures the Client
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
	RetryBase  time.Duration
	RPS        float64
}

// Client is the launch data client
type Client struct {
	up  *upstream.Client
	log logger.Logger
}

// NewClient creates a Client over the shared upstream transport
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = BaseURLDefault
	}
	return &Client{
		up: upstream.NewClient(upstream.Options{
			Name:       "spacex",
			BaseURL:    o.BaseURL,
			Timeout:    o.Timeout,
			MaxRetries: o.MaxRetries,
			RetryBase:  o.RetryBase,
			RPS:        o.RPS,
		}),
		log: *logger.Named("spacex"),
	}
}

// Upstream exposes the transport so tests can swap seams
func (c *Client) Upstream() *upstream.Client { return c.up }

// LoadLaunches fetches every launch and normalizes optional link fields
func (c *Client) LoadLaunches(ctx context.Context) ([]launch.Launch, error) {
	var raw []launch.Launch
	if err := c.up.GetJSON(ctx, "/launches", nil, &raw); err != nil {
		return nil, err
	}
	out := make([]launch.Launch, 0, len(raw))
	invalid := 0
	for _, l := range raw {
		if !l.DateValid {
			invalid++
		}
		out = append(out, l.Normalize())
	}
	if invalid > 0 {
		c.log.Warn().Int("count", invalid).Msg("launches with unparseable date_utc excluded from year buckets")
	}
	return out, nil
}

// FetchLaunches is LoadLaunches with failures logged and converted to an empty result
func (c *Client) FetchLaunches(ctx context.Context) []launch.Launch {
	out, err := c.LoadLaunches(ctx)
	if err != nil {
		c.log.Error().Err(err).Msg("error fetching launches")
		return []launch.Launch{}
	}
	return out
}

// FetchCrewMember fetches one crew profile; failures are logged and yield nil
func (c *Client) FetchCrewMember(ctx context.Context, id string) *CrewMember {
	id = strings.TrimSpace(id)
	if id == "" {
		c.log.Warn().Msg("crew member lookup skipped: empty id")
		return nil
	}
	var m CrewMember
	if err := c.up.GetJSON(ctx, "/crew/"+url.PathEscape(id), nil, &m); err != nil {
		c.log.Error().Err(err).Str("crew_id", id).Msg("error fetching crew member")
		return nil
	}
	if m.ID == "" {
		m.ID = id
	}
	return &m
}
