// Package launch holds the launch record as served by the launch data API
package launch

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"
	"time"
)

// Launch is one rocket launch record, immutable once fetched
type Launch struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	DateUTC      time.Time    `json:"-"`
	DateRaw      string       `json:"date_utc"`
	DateValid    bool         `json:"-"`
	Success      *bool        `json:"success"`
	FlightNumber int          `json:"flight_number"`
	Crew         []CrewRef    `json:"crew"`
	Payloads     []Payload    `json:"payloads"`
	Links        Links        `json:"links"`
	Launchpad    string       `json:"launchpad"`
	Rocket       string       `json:"rocket"`
	Details      string       `json:"details"`
	Upcoming     bool         `json:"upcoming"`
	Coordinates  *Coordinates `json:"coordinates,omitempty"`
}

// CrewRef is a roster entry: a crew member reference id and the role flown
type CrewRef struct {
	Crew string `json:"crew"`
	Role string `json:"role,omitempty"`
}

// Payload is a payload reference; v4 returns bare ids, richer sources return objects
type Payload struct {
	ID    string `json:"id"`
	Type  string `json:"type,omitempty"`
	Orbit string `json:"orbit,omitempty"`
}

// Links groups the optional media attached to a launch
type Links struct {
	Patch     Patch  `json:"patch"`
	Flickr    Flickr `json:"flickr"`
	Webcast   string `json:"webcast,omitempty"`
	YoutubeID string `json:"youtube_id,omitempty"`
	Article   string `json:"article,omitempty"`
	Wikipedia string `json:"wikipedia,omitempty"`
}

// Patch holds mission patch image urls
type Patch struct {
	Small string `json:"small,omitempty"`
	Large string `json:"large,omitempty"`
}

// Flickr holds photo urls; both slices are always non-nil after Normalize
type Flickr struct {
	Small    []string `json:"small"`
	Original []string `json:"original"`
}

// Coordinates is an optional launchpad location
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// UnmarshalJSON accepts both the legacy id-only roster entry and the {crew, role} object
func (c *CrewRef) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var id string
		if err := json.Unmarshal(b, &id); err != nil {
			return err
		}
		*c = CrewRef{Crew: id}
		return nil
	}
	var obj struct {
		Crew string `json:"crew"`
		ID   string `json:"id"`
		Role string `json:"role"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	id := obj.Crew
	if id == "" {
		id = obj.ID
	}
	*c = CrewRef{Crew: id, Role: obj.Role}
	return nil
}

// UnmarshalJSON accepts a bare payload id or a payload object
func (p *Payload) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var id string
		if err := json.Unmarshal(b, &id); err != nil {
			return err
		}
		*p = Payload{ID: id}
		return nil
	}
	type plain Payload
	var obj plain
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	*p = Payload(obj)
	return nil
}

// UnmarshalJSON decodes the raw record and parses date_utc; an unparseable date leaves DateValid false
func (l *Launch) UnmarshalJSON(b []byte) error {
	type plain Launch
	var raw struct {
		plain
		LaunchpadLat  *float64 `json:"launchpad_lat"`
		LaunchpadLong *float64 `json:"launchpad_long"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*l = Launch(raw.plain)
	if l.Coordinates == nil && raw.LaunchpadLat != nil && raw.LaunchpadLong != nil {
		l.Coordinates = &Coordinates{Lat: *raw.LaunchpadLat, Lng: *raw.LaunchpadLong}
	}
	l.DateUTC, l.DateValid = ParseDate(l.DateRaw)
	return nil
}

// ParseDate parses an API timestamp; returns ok=false when s is empty or malformed
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// Normalize guarantees links.patch, links.flickr.original and links.flickr.small exist
func (l Launch) Normalize() Launch {
	if l.Links.Flickr.Small == nil {
		l.Links.Flickr.Small = []string{}
	}
	if l.Links.Flickr.Original == nil {
		l.Links.Flickr.Original = []string{}
	}
	if l.Crew == nil {
		l.Crew = []CrewRef{}
	}
	if l.Payloads == nil {
		l.Payloads = []Payload{}
	}
	return l
}

// Year returns the UTC calendar year of date_utc; ok is false when the date is invalid
func (l Launch) Year() (int, bool) {
	if !l.DateValid {
		return 0, false
	}
	return l.DateUTC.Year(), true
}

// Succeeded reports success only when the tri-state flag is explicitly true
func (l Launch) Succeeded() bool { return l.Success != nil && *l.Success }

// Crewed reports whether the roster is non-empty
func (l Launch) Crewed() bool { return len(l.Crew) > 0 }

// Thumbnail picks the best card image: patch, then first flickr original, then first flickr small
func (l Launch) Thumbnail() string {
	if l.Links.Patch.Small != "" {
		return l.Links.Patch.Small
	}
	if len(l.Links.Flickr.Original) > 0 {
		return l.Links.Flickr.Original[0]
	}
	if len(l.Links.Flickr.Small) > 0 {
		return l.Links.Flickr.Small[0]
	}
	return ""
}

// EmbedURL derives a youtube embed url from the webcast link or youtube id
func (l Launch) EmbedURL() string {
	id := l.Links.YoutubeID
	if id == "" && l.Links.Webcast != "" {
		w := l.Links.Webcast
		if i := strings.Index(w, "v="); i >= 0 {
			id = w[i+2:]
			if j := strings.IndexAny(id, "&#"); j >= 0 {
				id = id[:j]
			}
		} else if i := strings.Index(w, "youtu.be/"); i >= 0 {
			id = strings.TrimSuffix(w[i+len("youtu.be/"):], "/")
		}
	}
	if id == "" {
		return ""
	}
	return "https://www.youtube.com/embed/" + id
}

// Newer reports whether a sorts before b in the descending date order
// invalid dates sort after every valid one
func Newer(a, b Launch) bool {
	if a.DateValid != b.DateValid {
		return a.DateValid
	}
	return a.DateUTC.After(b.DateUTC)
}

// SortDesc returns a copy of in sorted newest first; ties keep their input order
func SortDesc(in []Launch) []Launch {
	out := make([]Launch, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool { return Newer(out[i], out[j]) })
	return out
}

// Bool returns a pointer to b, handy for building tri-state fixtures
func Bool(b bool) *bool { return &b }
