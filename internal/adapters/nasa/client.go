// Package nasa reads the astronomy picture of the day used as supplementary crew text
package nasa

import (
	"context"
	"net/url"
	"time"

	"launchdeck/internal/adapters/upstream"
	"launchdeck/internal/platform/logger"
)

const (
	// BaseURLDefault is the public api.nasa.gov endpoint
	BaseURLDefault = "https://api.nasa.gov"
	// DemoKey is NASA's shared low quota key
	DemoKey = "DEMO_KEY"
)

// Picture is one APOD record; Explanation is the supplementary text
type Picture struct {
	Title       string `json:"title"`
	Explanation string `json:"explanation"`
	URL         string `json:"url,omitempty"`
	HDURL       string `json:"hdurl,omitempty"`
	MediaType   string `json:"media_type,omitempty"`
	Date        string `json:"date,omitempty"`
}

// Options configures the Client
type Options struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	MaxRetries int
	RetryBase  time.Duration
	RPS        float64
}

// Client is the APOD client
type Client struct {
	up  *upstream.Client
	key string
	log logger.Logger
}

// NewClient creates a Client; an empty key falls back to DEMO_KEY
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = BaseURLDefault
	}
	if o.APIKey == "" {
		o.APIKey = DemoKey
	}
	return &Client{
		up: upstream.NewClient(upstream.Options{
			Name:       "nasa",
			BaseURL:    o.BaseURL,
			Timeout:    o.Timeout,
			MaxRetries: o.MaxRetries,
			RetryBase:  o.RetryBase,
			RPS:        o.RPS,
		}),
		key: o.APIKey,
		log: *logger.Named("nasa"),
	}
}

// Upstream exposes the transport so tests can swap seams
func (c *Client) Upstream() *upstream.Client { return c.up }

// FetchNASAAstronautData returns the first record of a one item random APOD draw
// name is not sent upstream: the endpoint has no person lookup, so every member
// receives whatever picture the endpoint returns
func (c *Client) FetchNASAAstronautData(ctx context.Context, name string) *Picture {
	q := url.Values{}
	q.Set("api_key", c.key)
	q.Set("count", "1")

	var out []Picture
	if err := c.up.GetJSON(ctx, "/planetary/apod", q, &out); err != nil {
		c.log.Error().Err(err).Str("name", name).Msg("error fetching NASA astronaut data")
		return nil
	}
	if len(out) == 0 {
		c.log.Warn().Str("name", name).Msg("NASA APOD returned no records")
		return nil
	}
	p := out[0]
	return &p
}
