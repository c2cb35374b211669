// Package stats derives per-year launch aggregates from the full launch set
package stats

import (
	"sort"

	"launchdeck/internal/core/launch"
)

// YearBucket is the derived aggregate for one calendar year
type YearBucket struct {
	Year        int     `json:"year" example:"2021"`
	Launches    int     `json:"launches" example:"31"`
	Successes   int     `json:"successes" example:"31"`
	SuccessRate float64 `json:"success_rate" example:"1"`
}

// Stats is the aggregation output; recomputed whenever the launch set changes
type Stats struct {
	Years            []int           `json:"years"`
	YearLaunchCounts map[int]int     `json:"year_launch_counts"`
	YearSuccessRates map[int]float64 `json:"year_success_rates"`

	successes map[int]int
}

// Compute buckets launches by UTC calendar year; records with invalid dates are skipped
func Compute(launches []launch.Launch) Stats {
	s := Stats{
		Years:            []int{},
		YearLaunchCounts: map[int]int{},
		YearSuccessRates: map[int]float64{},
		successes:        map[int]int{},
	}
	for _, l := range launches {
		y, ok := l.Year()
		if !ok {
			continue
		}
		if _, seen := s.YearLaunchCounts[y]; !seen {
			s.Years = append(s.Years, y)
		}
		s.YearLaunchCounts[y]++
		if l.Succeeded() {
			s.successes[y]++
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(s.Years)))
	for _, y := range s.Years {
		s.YearSuccessRates[y] = Rate(s.successes[y], s.YearLaunchCounts[y])
	}
	return s
}

// Rate returns successes/total clamped to [0,1]; 0 when total is 0
func Rate(successes, total int) float64 {
	if total <= 0 || successes <= 0 {
		return 0
	}
	if successes >= total {
		return 1
	}
	return float64(successes) / float64(total)
}

// Bucket returns the aggregate for year y; ok is false when no launch falls in y
func (s Stats) Bucket(y int) (YearBucket, bool) {
	n, ok := s.YearLaunchCounts[y]
	if !ok {
		return YearBucket{}, false
	}
	return YearBucket{
		Year:        y,
		Launches:    n,
		Successes:   s.successes[y],
		SuccessRate: s.YearSuccessRates[y],
	}, true
}

// Buckets lists every year's aggregate, newest year first
func (s Stats) Buckets() []YearBucket {
	out := make([]YearBucket, 0, len(s.Years))
	for _, y := range s.Years {
		b, _ := s.Bucket(y)
		out = append(out, b)
	}
	return out
}

// Total returns the number of launches that were bucketed
func (s Stats) Total() int {
	n := 0
	for _, c := range s.YearLaunchCounts {
		n += c
	}
	return n
}
