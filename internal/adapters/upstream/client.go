// Package upstream provides a resilient read-only JSON client shared by the launch and astronomy adapters
package upstream

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	perr "launchdeck/internal/platform/errors"
	"launchdeck/internal/platform/logger"

	"golang.org/x/time/rate"
)

const (
	defaultTimeout   = 10 * time.Second
	defaultUA        = "launchdeck"
	defaultMaxRetry  = 2
	defaultRetryBase = 500 * time.Millisecond
	maxBackoff       = 30 * time.Second
	maxBody          = 16 << 20
)

// Options configures the Client
type Options struct {
	// Name tags log lines, e.g. "spacex" or "nasa"
	Name      string
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	// Retry config for transport errors, 429 and transient 5xx
	MaxRetries int
	RetryBase  time.Duration

	// RPS throttles outgoing requests; 0 disables the limiter
	RPS   float64
	Burst int
}

// Client issues GET requests with retries, rate limit handling and optional throttling
type Client struct {
	http    *http.Client
	opts    Options
	limiter *rate.Limiter
	log     logger.Logger
	now     func() time.Time
	sleep   func(context.Context, time.Duration) error
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	o.BaseURL = strings.TrimRight(o.BaseURL, "/")
	if o.Name == "" {
		o.Name = "upstream"
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxRetries < 0 {
		o.MaxRetries = 0
	}
	if o.RetryBase <= 0 {
		o.RetryBase = defaultRetryBase
	}
	var lim *rate.Limiter
	if o.RPS > 0 {
		burst := o.Burst
		if burst <= 0 {
			burst = 1
		}
		lim = rate.NewLimiter(rate.Limit(o.RPS), burst)
	}
	return &Client{
		http:    &http.Client{Timeout: o.Timeout},
		opts:    o,
		limiter: lim,
		log:     *logger.Named(o.Name),
		now:     time.Now,
		sleep:   sleepCtx,
	}
}

// WithHTTPClient swaps the transport, used by tests
func (c *Client) WithHTTPClient(h *http.Client) *Client {
	c.http = h
	return c
}

// WithSleep swaps the backoff sleeper, used by tests; fn must return ctx.Err() once ctx is done
func (c *Client) WithSleep(fn func(context.Context, time.Duration) error) *Client {
	c.sleep = fn
	return c
}

// BaseURL returns the configured base url without a trailing slash
func (c *Client) BaseURL() string { return c.opts.BaseURL }

// Do issues a GET for path with query and returns a 2xx response whose body the caller must close
func (c *Client) Do(ctx context.Context, path string, query url.Values) (*http.Response, error) {
	u := c.opts.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	attempts := 0
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "%s limiter wait failed", c.opts.Name)
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "%s new request failed", c.opts.Name)
		}
		req.Header.Set("User-Agent", c.opts.UserAgent)
		req.Header.Set("Accept", "application/json")

		start := c.now()
		resp, err := c.http.Do(req)
		lat := c.now().Sub(start)

		if err != nil {
			if ctx.Err() != nil || !c.shouldRetry(attempts) {
				return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "%s request failed", c.opts.Name)
			}
			back := c.backoff(attempts)
			c.log.Warn().Err(err).Dur("retry_in", back).Int("attempt", attempts).Str("path", path).Msg("transport error retrying")
			if err := c.sleep(ctx, back); err != nil {
				return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "%s retry wait interrupted", c.opts.Name)
			}
			attempts++
			continue
		}

		ri := parseRateHeaders(resp.Header)
		c.log.Debug().
			Str("path", path).
			Int("status", resp.StatusCode).
			Int("attempt", attempts).
			Dur("latency", lat).
			Bool("rate_limited", ri.limited).
			Time("rate_reset", ri.reset).
			Int("retry_after_s", ri.retryAfter).
			Msg("http response")

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return resp, nil
		}

		if !perr.IsRetryableStatus(resp.StatusCode) {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
			_ = resp.Body.Close()
			c.log.Debug().Str("path", path).Str("body", string(body)).Msg("upstream error body")
			return nil, perr.FromStatusf(resp.StatusCode, "%s %s", c.opts.Name, path)
		}

		_ = drainAndClose(resp.Body)
		if !c.shouldRetry(attempts) {
			return nil, perr.FromStatusf(resp.StatusCode, "%s %s retries exhausted", c.opts.Name, path)
		}
		wait := computeWait(ri, c.now())
		if wait <= 0 {
			wait = c.backoff(attempts)
		}
		wait = min(wait, maxBackoff)
		c.log.Warn().Dur("retry_in", wait).Int("attempt", attempts).Int("status", resp.StatusCode).Str("path", path).Msg("transient upstream error retrying")
		if err := c.sleep(ctx, wait); err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "%s retry wait interrupted", c.opts.Name)
		}
		attempts++
	}
}

// GetJSON fetches path and decodes the body into dst
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, dst any) error {
	resp, err := c.Do(ctx, path, query)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error().Err(cerr).Str("path", path).Msg("close body failed")
		}
	}()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "%s read body failed", c.opts.Name)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeJSON, "%s decode %s failed", c.opts.Name, path)
	}
	return nil
}

func (c *Client) backoff(attempt int) time.Duration {
	d := c.opts.RetryBase << uint(attempt)
	if d <= 0 || d > maxBackoff {
		return maxBackoff
	}
	return d
}

func (c *Client) shouldRetry(attempt int) bool {
	return attempt < c.opts.MaxRetries
}
