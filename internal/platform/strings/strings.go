// Package strings holds small string and slice helpers
package strings

import std "strings"

// IfEmpty returns def if in is empty, otherwise in
func IfEmpty[T any](in []T, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// Or returns the trimmed s, or def when s is blank
func Or(s, def string) string {
	if s = std.TrimSpace(s); s == "" {
		return def
	}
	return s
}

// MustPrefix normalizes a route prefix like /trends: one leading slash, no trailing slash
// panics if nothing is left after trimming
func MustPrefix(s string) string {
	s = "/" + std.Trim(std.TrimSpace(s), " /")
	if s == "/" {
		panic("route prefix is required")
	}
	return s
}
