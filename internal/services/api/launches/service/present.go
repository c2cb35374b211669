package service

import (
	"fmt"
	"strings"

	"launchdeck/internal/core/launch"
	"launchdeck/internal/services/api/launches/domain"
)

// OutcomeLabel renders the tri-state success flag
func OutcomeLabel(l launch.Launch) string {
	switch {
	case l.Success == nil:
		return "Unknown"
	case *l.Success:
		return "Success"
	default:
		return "Failed"
	}
}

// Card maps a launch to its grid entry
func Card(l launch.Launch) domain.LaunchCard {
	c := domain.LaunchCard{
		ID:           l.ID,
		Name:         l.Name,
		DateUTC:      l.DateRaw,
		FlightNumber: l.FlightNumber,
		Success:      l.Success,
		OutcomeLabel: OutcomeLabel(l),
		Crewed:       l.Crewed(),
		CrewCount:    len(l.Crew),
		Thumbnail:    l.Thumbnail(),
		Upcoming:     l.Upcoming,
	}
	if y, ok := l.Year(); ok {
		c.Year = &y
	}
	return c
}

// Cards maps a view in order
func Cards(in []launch.Launch) []domain.LaunchCard {
	out := make([]domain.LaunchCard, 0, len(in))
	for _, l := range in {
		out = append(out, Card(l))
	}
	return out
}

// Detail maps a launch to the detail panel payload
func Detail(l launch.Launch) domain.LaunchDetail {
	l = l.Normalize()
	d := domain.LaunchDetail{
		LaunchCard:     Card(l),
		Details:        l.Details,
		Rocket:         l.Rocket,
		Launchpad:      l.Launchpad,
		Coordinates:    l.Coordinates,
		Links:          l.Links,
		EmbedURL:       l.EmbedURL(),
		Crew:           l.Crew,
		Payloads:       l.Payloads,
		PayloadSummary: payloadSummary(l.Payloads),
		Orbit:          "Not specified",
	}
	if d.Details == "" {
		d.Details = "No details available"
	}
	if len(l.Payloads) > 0 && l.Payloads[0].Orbit != "" {
		d.Orbit = l.Payloads[0].Orbit
	}
	return d
}

func payloadSummary(ps []launch.Payload) string {
	if len(ps) == 0 {
		return "No payload information available."
	}
	types := make([]string, 0, len(ps))
	for _, p := range ps {
		if p.Type != "" {
			types = append(types, p.Type)
		}
	}
	if len(types) == 0 {
		return fmt.Sprintf("This mission carried %d payload(s) to space.", len(ps))
	}
	return fmt.Sprintf("This mission carried %d payload(s) to space, contributing to %s research.", len(ps), strings.Join(types, ", "))
}
