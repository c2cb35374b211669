// Package strings has the small string and slice guards used while wiring modules
package strings

import std "strings"

// IfEmpty returns def when in has no elements
func IfEmpty[T any](in, def []T) []T {
	if len(in) > 0 {
		return in
	}
	return def
}

// MustString panics with "<what> is required" when s is blank
func MustString(s, what string) string {
	if std.TrimSpace(s) != "" {
		return s
	}
	panic(what + " is required")
}

// MustPrefix normalizes a mount path to one leading slash and no trailing slash
// it panics when nothing but slashes and spaces remain
func MustPrefix(s string) string {
	trimmed := std.Trim(s, " /")
	if trimmed == "" {
		panic("route prefix is required")
	}
	return "/" + trimmed
}
