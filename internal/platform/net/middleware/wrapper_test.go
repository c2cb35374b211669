package middleware_test

import (
	"compress/flate"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"launchdeck/internal/platform/net/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chain(h http.Handler, mws ...func(http.Handler) http.Handler) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

func TestCompress_WhenAccepted(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, "["+strings.Repeat(`{"id":"x"},`, 400)+"{}]")
	})

	req := httptest.NewRequest(http.MethodGet, "/launches", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	middleware.Compress(flate.BestSpeed)(h).ServeHTTP(rr, req)

	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
}

func TestCORS_DefaultsAllowSessionHeader(t *testing.T) {
	cors := middleware.CORS(middleware.CORSOptions{AllowedOrigins: []string{"http://localhost:5173"}})
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/dashboard/sessions", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", middleware.SessionHeader)
	rr := httptest.NewRecorder()
	cors(h).ServeHTTP(rr, req)

	assert.Contains(t, []int{http.StatusOK, http.StatusNoContent}, rr.Code)
	assert.Equal(t, "http://localhost:5173", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), "POST")
	assert.NotEmpty(t, rr.Header().Get("Access-Control-Allow-Headers"))
}

func TestCORS_RejectsUnknownOrigin(t *testing.T) {
	cors := middleware.CORS(middleware.CORSOptions{AllowedOrigins: []string{"http://localhost:5173"}})
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://elsewhere.example")
	rr := httptest.NewRecorder()
	cors(h).ServeHTTP(rr, req)

	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestWrappers_BaselineChain(t *testing.T) {
	var rid string
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid = w.Header().Get("X-Request-ID")
		_, ok := r.Context().Deadline()
		assert.True(t, ok, "timeout must set a deadline")
		assert.Equal(t, "/launches", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})
	wrapped := chain(h,
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.RequestContext(),
		middleware.NoCache(),
		middleware.Heartbeat("/health"),
		middleware.StripSlashes(),
		middleware.Timeout(time.Second),
	)

	rr := httptest.NewRecorder()
	wrapped.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/launches/", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rid)
	assert.NotEmpty(t, rr.Header().Get("Cache-Control"))

	rr = httptest.NewRecorder()
	wrapped.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, ".", rr.Body.String())
}

func TestThrottle_RejectsOverflow(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(entered)
		<-release
		w.WriteHeader(http.StatusOK)
	})
	wrapped := middleware.Throttle(1, 10*time.Millisecond)(h)

	first := httptest.NewRecorder()
	done := make(chan struct{})
	go func() {
		defer close(done)
		wrapped.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	}()
	<-entered

	second := httptest.NewRecorder()
	wrapped.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)

	close(release)
	<-done
	assert.Equal(t, http.StatusOK, first.Code)
}
