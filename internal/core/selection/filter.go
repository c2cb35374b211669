// Package selection implements the dashboard filter and selection state machine
package selection

import (
	"net/url"
	"strconv"
	"strings"

	"launchdeck/internal/core/launch"
	perr "launchdeck/internal/platform/errors"
)

// Outcome narrows launches to all, successful only or crewed only
type Outcome string

const (
	// OutcomeAll matches every launch
	OutcomeAll Outcome = "all"
	// OutcomeSuccess matches launches whose success flag is explicitly true
	OutcomeSuccess Outcome = "success"
	// OutcomeCrewed matches launches with a non-empty crew roster
	OutcomeCrewed Outcome = "crewed"
)

// Outcomes lists the accepted filter values in display order
var Outcomes = []Outcome{OutcomeAll, OutcomeSuccess, OutcomeCrewed}

// ParseOutcome maps a wire value to an Outcome; empty means all and values are case sensitive
func ParseOutcome(s string) (Outcome, error) {
	switch Outcome(strings.TrimSpace(s)) {
	case "", OutcomeAll:
		return OutcomeAll, nil
	case OutcomeSuccess:
		return OutcomeSuccess, nil
	case OutcomeCrewed:
		return OutcomeCrewed, nil
	}
	return "", perr.WithField(perr.InvalidArgf("unknown outcome filter %q", s), "filter")
}

// FilterState is the user selected year and outcome filter
type FilterState struct {
	Year    *int    `json:"year"`
	Outcome Outcome `json:"filter"`
}

func (f FilterState) clone() FilterState {
	f.Year = copyYear(f.Year)
	return f
}

func copyYear(y *int) *int {
	if y == nil {
		return nil
	}
	v := *y
	return &v
}

// Matches is the conjunction of the year and outcome predicates
func (f FilterState) Matches(l launch.Launch) bool {
	if f.Year != nil {
		y, ok := l.Year()
		if !ok || y != *f.Year {
			return false
		}
	}
	switch f.Outcome {
	case OutcomeSuccess:
		return l.Succeeded()
	case OutcomeCrewed:
		return l.Crewed()
	default:
		return true
	}
}

// Query renders the shareable query string; year is omitted when unset and filter when all
func (f FilterState) Query() url.Values {
	q := url.Values{}
	if f.Year != nil {
		q.Set("year", strconv.Itoa(*f.Year))
	}
	if f.Outcome != "" && f.Outcome != OutcomeAll {
		q.Set("filter", string(f.Outcome))
	}
	return q
}

// ParseQuery restores a FilterState from a shareable query string
func ParseQuery(q url.Values) (FilterState, error) {
	o, err := ParseOutcome(q.Get("filter"))
	if err != nil {
		return FilterState{}, err
	}
	y, err := ParseYear(q.Get("year"))
	if err != nil {
		return FilterState{}, err
	}
	return FilterState{Year: y, Outcome: o}, nil
}

// ParseYear parses an optional year; empty clears the filter
func ParseYear(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	y, err := strconv.Atoi(s)
	if err != nil {
		return nil, perr.WithField(perr.InvalidArgf("year must be an integer"), "year")
	}
	return &y, nil
}

// Apply filters launches, which must already be sorted newest first
func Apply(sorted []launch.Launch, f FilterState) []launch.Launch {
	out := make([]launch.Launch, 0, len(sorted))
	for _, l := range sorted {
		if f.Matches(l) {
			out = append(out, l)
		}
	}
	return out
}
