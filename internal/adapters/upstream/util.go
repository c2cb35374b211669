package upstream

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// rateInfo is what the upstream says about its quota on one response
type rateInfo struct {
	limited    bool // X-RateLimit-Remaining present and exhausted
	reset      time.Time
	retryAfter int
}

func parseRateHeaders(h http.Header) rateInfo {
	var ri rateInfo
	if rem := strings.TrimSpace(h.Get("X-RateLimit-Remaining")); rem != "" {
		ri.limited = atoi(rem) <= 0
	}
	if sec := atoi(h.Get("X-RateLimit-Reset")); sec > 0 {
		ri.reset = time.Unix(int64(sec), 0).UTC()
	}
	ri.retryAfter = atoi(h.Get("Retry-After"))
	return ri
}

// computeWait picks the server requested pause; 0 means fall back to backoff
func computeWait(ri rateInfo, now time.Time) time.Duration {
	if ri.retryAfter > 0 {
		return time.Duration(ri.retryAfter) * time.Second
	}
	if ri.limited && ri.reset.After(now) {
		return ri.reset.Sub(now)
	}
	return 0
}

// sleepCtx waits for d or until ctx is done
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func atoi(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	i, _ := strconv.Atoi(s)
	return i
}

func drainAndClose(rc io.ReadCloser) error {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, 512))
	return rc.Close()
}
