// Package dataset loads the published word statistics tables and holds them as
// one immutable value for the lifetime of the process
package dataset

import (
	"strings"

	perr "wordtrends/internal/platform/errors"
)

// Granularity is the time resolution of a table
type Granularity string

const (
	// Monthly tables have (year, month, category) column headers
	Monthly Granularity = "monthly"
	// Yearly tables have (year, category) column headers
	Yearly Granularity = "yearly"
)

// Granularities lists every granularity in display order
func Granularities() []Granularity { return []Granularity{Monthly, Yearly} }

// ParseGranularity accepts a granularity name, case insensitive
func ParseGranularity(s string) (Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "monthly", "month":
		return Monthly, nil
	case "yearly", "year":
		return Yearly, nil
	}
	return "", perr.WithField(perr.InvalidArgf("unknown granularity %q", s), "granularity")
}

// Depth is the number of column header rows in the source CSV
func (g Granularity) Depth() int {
	switch g {
	case Monthly:
		return 3
	case Yearly:
		return 2
	}
	return 0
}

// Valid reports whether g is known
func (g Granularity) Valid() bool { return g.Depth() > 0 }

func (g Granularity) String() string { return string(g) }
