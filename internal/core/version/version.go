// Package version reports what build of launchdeck is running
package version

import "runtime/debug"

// BuildInfo identifies a build
type BuildInfo struct {
	Service   string `json:"service"    example:"launchdeck-api"`
	Version   string `json:"version"    example:"v0.3.0"`
	Commit    string `json:"commit"     example:"9f1c2ab"`
	Date      string `json:"date"       example:"2026-10-19"`
	GoVersion string `json:"go_version" example:"go1.25.0"`
}

// set with -ldflags "-X launchdeck/internal/core/version.version=v0.3.0 -X ...commit=... -X ...date=..."
var (
	version = "dev"
	commit  = ""
	date    = ""
)

// readBuildInfo is swapped in tests
var readBuildInfo = debug.ReadBuildInfo

// Info returns the linker stamped values, falling back to the vcs settings go build embeds
func Info() BuildInfo {
	out := BuildInfo{Service: "launchdeck-api", Version: version, Commit: commit, Date: date}
	if bi, ok := readBuildInfo(); ok {
		out.GoVersion = bi.GoVersion
		for _, s := range bi.Settings {
			switch {
			case s.Key == "vcs.revision" && out.Commit == "":
				out.Commit = s.Value
			case s.Key == "vcs.time" && out.Date == "":
				out.Date = s.Value
			}
		}
	}
	if out.Commit == "" {
		out.Commit = "none"
	}
	if out.Date == "" {
		out.Date = "unknown"
	}
	return out
}
