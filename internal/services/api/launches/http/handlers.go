// Package http provides http transport for the launch catalog
package http

import (
	stdhttp "net/http"

	"launchdeck/internal/modkit/httpkit"
	"launchdeck/internal/services/api/launches/domain"
	svc "launchdeck/internal/services/api/launches/service"
)

// Register mounts catalog endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// filtered view, newest first
	httpkit.GetQuery[domain.ListInput](r, "/", h.list)

	httpkit.Get(r, "/stats", h.stats)
	httpkit.Get(r, "/status", h.status)
	httpkit.Get(r, "/{id}", h.detail)
	httpkit.Get(r, "/{id}/crew", h.crew)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /launches Launches launchesList
// @Summary Launch cards filtered by year and outcome, newest first
// @Tags Launches
// @Produce json
// @Param year query int false "Calendar year (UTC)"
// @Param filter query string false "all, success or crewed"
// @Success 200 {array} domain.LaunchCard "ok"
// @Router /launches [get]
func (h *handlers) list(r *stdhttp.Request, in domain.ListInput) (any, error) {
	return h.svc.List(r.Context(), in)
}

// swagger:route GET /launches/stats Launches launchesStats
// @Summary Launch counts and success rates per year
// @Tags Launches
// @Produce json
// @Success 200 {object} domain.StatsResponse "ok"
// @Router /launches/stats [get]
func (h *handlers) stats(r *stdhttp.Request) (any, error) {
	return h.svc.StatsView(r.Context())
}

// swagger:route GET /launches/status Launches launchesStatus
// @Summary Result of the startup fetch
// @Tags Launches
// @Produce json
// @Success 200 {object} domain.LoadStatus "ok"
// @Router /launches/status [get]
func (h *handlers) status(_ *stdhttp.Request) (any, error) {
	return h.svc.Status(), nil
}

// swagger:route GET /launches/{id} Launches launchesDetail
// @Summary Launch detail
// @Tags Launches
// @Produce json
// @Param id path string true "Launch id"
// @Success 200 {object} domain.LaunchDetail "ok"
// @Router /launches/{id} [get]
func (h *handlers) detail(r *stdhttp.Request) (any, error) {
	id, err := httpkit.MustParam(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.Detail(r.Context(), id)
}

// swagger:route GET /launches/{id}/crew Launches launchesCrew
// @Summary Enriched crew roster, resolved fresh on every call
// @Tags Launches
// @Produce json
// @Param id path string true "Launch id"
// @Success 200 {object} domain.CrewResponse "ok"
// @Router /launches/{id}/crew [get]
func (h *handlers) crew(r *stdhttp.Request) (any, error) {
	id, err := httpkit.MustParam(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.Crew(r.Context(), id)
}
