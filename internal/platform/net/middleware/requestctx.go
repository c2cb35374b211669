package middleware

import (
	"net/http"
	"strings"

	"launchdeck/internal/platform/logger"
	pnet "launchdeck/internal/platform/net"
)

// SessionHeader carries a dashboard session id on requests outside the session routes
const SessionHeader = "X-Session-ID"

// RequestContext copies the request id and an optional session id onto the request context
// so logger.C and pnet readers see the same values; run it after RequestID
// the request id is echoed back in the X-Request-ID response header
func RequestContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			rid := pnet.RequestID(ctx)
			sid := strings.TrimSpace(r.Header.Get(SessionHeader))
			if rid != "" {
				w.Header().Set("X-Request-ID", rid)
			}

			ctx = pnet.WithRequest(ctx, rid, sid)
			ctx = logger.WithRequest(ctx, rid, sid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
