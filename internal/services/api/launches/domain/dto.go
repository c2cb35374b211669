// Package domain holds DTOs for the launch catalog http and service contracts
package domain

import (
	"time"

	"launchdeck/internal/core/launch"
	"launchdeck/internal/core/stats"
	crewdom "launchdeck/internal/services/crew/domain"
)

// ListInput narrows the catalog; both filters are optional
type ListInput struct {
	Year   *int   `json:"year" query:"year" validate:"omitempty,min=1900,max=3000" example:"2021"`
	Filter string `json:"filter" query:"filter" validate:"omitempty,oneof=all success crewed" example:"crewed"`
}

// LaunchCard is the grid entry for one launch
type LaunchCard struct {
	ID           string `json:"id" example:"5eb87d46ffd86e000604b388"`
	Name         string `json:"name" example:"Crew-2"`
	DateUTC      string `json:"date_utc" example:"2021-04-23T09:49:00.000Z"`
	Year         *int   `json:"year" example:"2021"`
	FlightNumber int    `json:"flight_number" example:"121"`
	Success      *bool  `json:"success"`
	OutcomeLabel string `json:"outcome_label" example:"Success"`
	Crewed       bool   `json:"crewed"`
	CrewCount    int    `json:"crew_count" example:"4"`
	Thumbnail    string `json:"thumbnail,omitempty"`
	Upcoming     bool   `json:"upcoming"`
}

// LaunchDetail is the detail panel payload
type LaunchDetail struct {
	LaunchCard
	Details        string              `json:"details"`
	Rocket         string              `json:"rocket,omitempty"`
	Launchpad      string              `json:"launchpad,omitempty"`
	Coordinates    *launch.Coordinates `json:"coordinates,omitempty"`
	Links          launch.Links        `json:"links"`
	EmbedURL       string              `json:"embed_url,omitempty"`
	Crew           []launch.CrewRef    `json:"crew"`
	Payloads       []launch.Payload    `json:"payloads"`
	PayloadSummary string              `json:"payload_summary"`
	Orbit          string              `json:"orbit"`
}

// CrewResponse is an enriched roster for one launch
type CrewResponse struct {
	LaunchID string                       `json:"launch_id"`
	Crew     []crewdom.EnrichedCrewMember `json:"crew"`
}

// StatsResponse carries the per-year aggregates
type StatsResponse struct {
	Years            []int              `json:"years"`
	YearLaunchCounts map[int]int        `json:"year_launch_counts"`
	YearSuccessRates map[int]float64    `json:"year_success_rates"`
	Buckets          []stats.YearBucket `json:"buckets"`
	Total            int                `json:"total" example:"187"`
}

// Load states reported by the catalog
const (
	LoadPending = "pending"
	LoadOK      = "ok"
	LoadEmpty   = "empty"
	LoadFailed  = "failed"
)

// LoadStatus tells an empty catalog apart from a failed fetch
type LoadStatus struct {
	Status   string    `json:"status" example:"ok"`
	Count    int       `json:"count" example:"187"`
	LoadedAt time.Time `json:"loaded_at"`
	Error    string    `json:"error,omitempty"`
}
