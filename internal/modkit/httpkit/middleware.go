package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"launchdeck/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	// CORSOrigins lists the allowed browser origins; empty allows none
	CORSOrigins []string
	// Slow marks requests at or above this duration as warn in the access log
	Slow time.Duration
	// Timeout cancels the request context; 0 means 30s
	Timeout time.Duration
	// MaxInFlight caps concurrent requests; 0 disables the cap
	MaxInFlight int
}

// CommonStack returns the baseline middleware slice for the versioned api
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	stack := []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.RequestContext(),

		// safety
		middleware.RecoverJSON,

		// cache / freshness
		middleware.NoCache(),

		// observability
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.Slow}),

		middleware.CORS(middleware.CORSOptions{
			AllowedOrigins: o.CORSOrigins,
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.StripSlashes(),
		middleware.Timeout(o.Timeout),
	}
	if o.MaxInFlight > 0 {
		stack = append(stack, middleware.Throttle(o.MaxInFlight, o.Timeout))
	}
	return stack
}
