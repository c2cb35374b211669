// Package http serves /meta: liveness, readiness against the startup catalog load, build info and uptime
package http

import (
	"net/http"
	"time"

	"launchdeck/internal/core/version"
	"launchdeck/internal/modkit/httpkit"
	launchdom "launchdeck/internal/services/api/launches/domain"
)

// StatusSource reports how the startup launch fetch went
type StatusSource interface {
	Status() launchdom.LoadStatus
}

// Deps are what the meta handlers read
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Catalog     StatusSource
}

// HealthResponse is the liveness payload
type HealthResponse struct {
	OK      bool   `json:"ok"      example:"true"`
	Service string `json:"service" example:"launchdeck-api"`
	Started string `json:"started" example:"2026-10-19T08:00:00Z"`
	Now     string `json:"now"     example:"2026-10-19T08:05:00Z"`
}

// ReadyCheck is one dependency check: ok, fail, empty, skipped or unknown
type ReadyCheck struct {
	Name     string `json:"name"   example:"catalog"`
	Status   string `json:"status" example:"ok"`
	Error    string `json:"error,omitempty" example:"spacex request failed: dial tcp: i/o timeout"`
	Launches int    `json:"launches,omitempty" example:"187"`
	LoadedAt string `json:"loaded_at,omitempty" example:"2026-10-19T08:00:01Z"`
}

// ReadyResponse rolls the checks up into ok, degraded or fail
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"`
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-10-19T08:05:00Z"`
}

// ServiceResponse is the uptime payload; Uptime is in seconds
type ServiceResponse struct {
	Name    string `json:"name"    example:"launchdeck-api"`
	Started string `json:"started" example:"2026-10-19T08:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// catalogStates maps the load status to the check status
var catalogStates = map[string]string{
	launchdom.LoadOK:     "ok",
	launchdom.LoadFailed: "fail",
	launchdom.LoadEmpty:  "empty",
}

type handlers struct {
	Deps
	now func() time.Time
}

// Register mounts the meta routes on r
func Register(r httpkit.Router, d Deps) {
	h := &handlers{Deps: d, now: time.Now}
	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
}

func stamp(t time.Time) string { return t.UTC().Format(time.RFC3339) }

// @Summary Liveness
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /meta/health [get]
func (h *handlers) health(*http.Request) (any, error) {
	return HealthResponse{OK: true, Service: h.ServiceName, Started: stamp(h.StartedAt), Now: stamp(h.now())}, nil
}

// @Summary Readiness; the catalog check reports the one time launch fetch
// @Description A failed fetch leaves the service up with an empty catalog, so readiness stays 200 and reports fail
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse
// @Router /meta/ready [get]
func (h *handlers) ready(*http.Request) (any, error) {
	c := h.catalogCheck()
	overall := "degraded"
	if c.Status == "ok" || c.Status == "fail" {
		overall = c.Status
	}
	return ReadyResponse{Status: overall, Checks: []ReadyCheck{c}, Now: stamp(h.now())}, nil
}

func (h *handlers) catalogCheck() ReadyCheck {
	c := ReadyCheck{Name: "catalog", Status: "skipped"}
	if h.Catalog == nil {
		return c
	}
	st := h.Catalog.Status()
	c.Status = "unknown"
	if s, ok := catalogStates[st.Status]; ok {
		c.Status = s
		c.Error = st.Error
		c.Launches = st.Count
		if !st.LoadedAt.IsZero() {
			c.LoadedAt = stamp(st.LoadedAt)
		}
	}
	return c
}

// @Summary Build info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo
// @Router /meta/version [get]
func (h *handlers) version(*http.Request) (any, error) { return version.Info(), nil }

// @Summary Uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse
// @Router /meta/service [get]
func (h *handlers) service(*http.Request) (any, error) {
	return ServiceResponse{
		Name:    h.ServiceName,
		Started: stamp(h.StartedAt),
		Uptime:  int64(h.now().Sub(h.StartedAt) / time.Second),
	}, nil
}
