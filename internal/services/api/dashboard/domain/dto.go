// Package domain holds DTOs for dashboard sessions
package domain

import (
	"launchdeck/internal/core/stats"
	launchdom "launchdeck/internal/services/api/launches/domain"
	crewdom "launchdeck/internal/services/crew/domain"
)

// CreateInput restores a session from a shareable query string
type CreateInput struct {
	Year   *int   `json:"year" query:"year" validate:"omitempty,min=1900,max=3000" example:"2021"`
	Filter string `json:"filter" query:"filter" validate:"omitempty,oneof=all success crewed" example:"success"`
}

// YearInput sets the year filter; a missing year clears it
type YearInput struct {
	Year *int `json:"year" query:"year" validate:"omitempty,min=1900,max=3000" example:"2021"`
}

// FilterInput sets the outcome filter
type FilterInput struct {
	Filter string `json:"filter" query:"filter" validate:"required,oneof=all success crewed" example:"crewed"`
}

// GridInput sets the grid display mode
type GridInput struct {
	Minimized bool `json:"minimized" query:"minimized" example:"true"`
}

// Filter is the wire form of the filter state
type Filter struct {
	Year   *int   `json:"year" example:"2021"`
	Filter string `json:"filter" example:"all"`
}

// State is everything the presentation layer needs after a transition
type State struct {
	SessionID     string                  `json:"session_id" example:"0b0c5d8e-8f0e-4a43-9d7c-3a8f6c0d2b11"`
	Filter        Filter                  `json:"filter"`
	Query         string                  `json:"query" example:"year=2021&filter=crewed"`
	Years         []int                   `json:"years"`
	YearStats     *stats.YearBucket       `json:"year_stats,omitempty"`
	View          []launchdom.LaunchCard  `json:"view"`
	Count         int                     `json:"count" example:"4"`
	SelectionID   string                  `json:"selection_id,omitempty"`
	InView        bool                    `json:"in_view"`
	Detail        *launchdom.LaunchDetail `json:"detail,omitempty"`
	GridMinimized bool                    `json:"grid_minimized"`
	CatalogStatus launchdom.LoadStatus    `json:"catalog_status"`
}

// CrewState is the detail slot enrichment for a session
type CrewState = crewdom.Enrichment
