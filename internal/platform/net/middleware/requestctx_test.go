package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	pnet "launchdeck/internal/platform/net"
	"launchdeck/internal/platform/net/middleware"

	"github.com/stretchr/testify/assert"
)

func TestRequestContext_CopiesIDs(t *testing.T) {
	var rid, sid string
	h := middleware.RequestID()(middleware.RequestContext()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid, sid = pnet.RequestID(r.Context()), pnet.SessionID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})))

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-ID", "rid-1")
	req.Header.Set(middleware.SessionHeader, " sess-9 ")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "rid-1", rid)
	assert.Equal(t, "sess-9", sid)
	assert.Equal(t, "rid-1", rr.Header().Get("X-Request-ID"))
}

func TestRequestContext_WithoutIDs(t *testing.T) {
	var sid string
	rr := httptest.NewRecorder()
	middleware.RequestContext()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		sid = pnet.SessionID(r.Context())
	})).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Empty(t, sid)
	assert.Empty(t, rr.Header().Get("X-Request-ID"))
}
