// Package http provides http transport for dashboard sessions
package http

import (
	stdhttp "net/http"

	"launchdeck/internal/core/selection"
	"launchdeck/internal/modkit/httpkit"
	"launchdeck/internal/services/api/dashboard/domain"
	svc "launchdeck/internal/services/api/dashboard/service"
)

// Register mounts session endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostQuery[domain.CreateInput](r, "/sessions", h.create)
	httpkit.Get(r, "/sessions/{sid}", h.get)
	httpkit.Delete(r, "/sessions/{sid}", h.remove)

	// transitions
	httpkit.PostQuery[domain.YearInput](r, "/sessions/{sid}/year", h.setYear)
	httpkit.PostQuery[domain.FilterInput](r, "/sessions/{sid}/filter", h.setFilter)
	httpkit.PostQuery[domain.GridInput](r, "/sessions/{sid}/grid", h.setGrid)
	httpkit.Post(r, "/sessions/{sid}/select/{id}", h.selectLaunch)

	// detail slot
	httpkit.Get(r, "/sessions/{sid}/crew", h.crew)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /dashboard/sessions Dashboard dashboardCreate
// @Summary Start a dashboard session, optionally from a shared year/filter query
// @Tags Dashboard
// @Produce json
// @Param year query int false "Calendar year (UTC)"
// @Param filter query string false "all, success or crewed"
// @Success 201 {object} domain.State "created"
// @Router /dashboard/sessions [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	o, err := selection.ParseOutcome(in.Filter)
	if err != nil {
		return nil, err
	}
	st, err := h.svc.Create(r.Context(), selection.FilterState{Year: in.Year, Outcome: o})
	if err != nil {
		return nil, err
	}
	return httpkit.Created(st), nil
}

// swagger:route GET /dashboard/sessions/{sid} Dashboard dashboardGet
// @Summary Current session state
// @Tags Dashboard
// @Produce json
// @Param sid path string true "Session id"
// @Success 200 {object} domain.State "ok"
// @Router /dashboard/sessions/{sid} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	sid, err := httpkit.MustParam(r, "sid")
	if err != nil {
		return nil, err
	}
	return h.svc.Get(r.Context(), sid)
}

// swagger:route DELETE /dashboard/sessions/{sid} Dashboard dashboardDelete
// @Summary End a session
// @Tags Dashboard
// @Param sid path string true "Session id"
// @Success 204 "no content"
// @Router /dashboard/sessions/{sid} [delete]
func (h *handlers) remove(r *stdhttp.Request) (any, error) {
	sid, err := httpkit.MustParam(r, "sid")
	if err != nil {
		return nil, err
	}
	if err := h.svc.Delete(r.Context(), sid); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}

// swagger:route POST /dashboard/sessions/{sid}/year Dashboard dashboardYear
// @Summary Set the year filter; omit year to clear it
// @Tags Dashboard
// @Produce json
// @Param sid path string true "Session id"
// @Param year query int false "Calendar year (UTC)"
// @Success 200 {object} domain.State "ok"
// @Router /dashboard/sessions/{sid}/year [post]
func (h *handlers) setYear(r *stdhttp.Request, in domain.YearInput) (any, error) {
	sid, err := httpkit.MustParam(r, "sid")
	if err != nil {
		return nil, err
	}
	return h.svc.SetYear(r.Context(), sid, in.Year)
}

// swagger:route POST /dashboard/sessions/{sid}/filter Dashboard dashboardFilter
// @Summary Set the outcome filter
// @Tags Dashboard
// @Produce json
// @Param sid path string true "Session id"
// @Param filter query string true "all, success or crewed"
// @Success 200 {object} domain.State "ok"
// @Router /dashboard/sessions/{sid}/filter [post]
func (h *handlers) setFilter(r *stdhttp.Request, in domain.FilterInput) (any, error) {
	sid, err := httpkit.MustParam(r, "sid")
	if err != nil {
		return nil, err
	}
	o, err := selection.ParseOutcome(in.Filter)
	if err != nil {
		return nil, err
	}
	return h.svc.SetFilter(r.Context(), sid, o)
}

// swagger:route POST /dashboard/sessions/{sid}/grid Dashboard dashboardGrid
// @Summary Minimize or expand the launch grid
// @Tags Dashboard
// @Produce json
// @Param sid path string true "Session id"
// @Param minimized query bool false "true to minimize"
// @Success 200 {object} domain.State "ok"
// @Router /dashboard/sessions/{sid}/grid [post]
func (h *handlers) setGrid(r *stdhttp.Request, in domain.GridInput) (any, error) {
	sid, err := httpkit.MustParam(r, "sid")
	if err != nil {
		return nil, err
	}
	return h.svc.SetGrid(r.Context(), sid, in.Minimized)
}

// swagger:route POST /dashboard/sessions/{sid}/select/{id} Dashboard dashboardSelect
// @Summary Select a launch for the detail panel
// @Tags Dashboard
// @Produce json
// @Param sid path string true "Session id"
// @Param id path string true "Launch id"
// @Success 200 {object} domain.State "ok"
// @Router /dashboard/sessions/{sid}/select/{id} [post]
func (h *handlers) selectLaunch(r *stdhttp.Request) (any, error) {
	sid, err := httpkit.MustParam(r, "sid")
	if err != nil {
		return nil, err
	}
	id, err := httpkit.MustParam(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.Select(r.Context(), sid, id)
}

// swagger:route GET /dashboard/sessions/{sid}/crew Dashboard dashboardCrew
// @Summary Enriched crew for the session's detail launch
// @Tags Dashboard
// @Produce json
// @Param sid path string true "Session id"
// @Success 200 {object} domain.CrewState "ok"
// @Router /dashboard/sessions/{sid}/crew [get]
func (h *handlers) crew(r *stdhttp.Request) (any, error) {
	sid, err := httpkit.MustParam(r, "sid")
	if err != nil {
		return nil, err
	}
	return h.svc.Crew(r.Context(), sid)
}
