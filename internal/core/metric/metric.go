// Package metric names the statistics a table can hold and how each one is presented
package metric

import (
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	perr "wordtrends/internal/platform/errors"
)

// Metric is one of the statistics a dataset publishes per word and bucket
type Metric string

const (
	// Frequency is the raw occurrence count
	Frequency Metric = "freq"
	// Proportion is the share of all tokens, stored as a fraction
	Proportion Metric = "prop"
	// Rank is the position by frequency, 1 is most common
	Rank Metric = "rank"
)

// All lists every metric in display order
func All() []Metric { return []Metric{Frequency, Proportion, Rank} }

// Parse accepts a short code or a long name, case insensitive
func Parse(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "freq", "frequency":
		return Frequency, nil
	case "prop", "proportion":
		return Proportion, nil
	case "rank":
		return Rank, nil
	}
	return "", perr.WithField(perr.InvalidArgf("unknown metric %q", s), "metric")
}

// Valid reports whether m is a known metric
func (m Metric) Valid() bool {
	switch m {
	case Frequency, Proportion, Rank:
		return true
	}
	return false
}

// Label is the human name shown in pickers
func (m Metric) Label() string {
	switch m {
	case Frequency:
		return "Frequency"
	case Proportion:
		return "Proportion"
	case Rank:
		return "Rank"
	}
	return string(m)
}

func (m Metric) String() string { return string(m) }

// Presentation is the fixed rendering hint for a metric
type Presentation struct {
	AxisTitle string `json:"axis_title"`
	// Reversed draws the y axis top to bottom, best rank on top
	Reversed bool `json:"reversed"`
	// Percent formats values as percentages; stored values stay fractions
	Percent bool `json:"percent"`
}

var presentations = map[Metric]Presentation{
	Frequency:  {AxisTitle: "Frequency"},
	Proportion: {AxisTitle: "Proportion (%)", Percent: true},
	Rank:       {AxisTitle: "Rank", Reversed: true},
}

// Present returns the presentation of m
// unknown metrics get a plain ascending axis titled by the raw code
func Present(m Metric) Presentation {
	if p, ok := presentations[m]; ok {
		return p
	}
	return Presentation{AxisTitle: string(m)}
}

// TickFormat is the d3 style format string of the axis
func (p Presentation) TickFormat() string {
	if p.Percent {
		return ",.2%"
	}
	return ","
}

var printer = message.NewPrinter(language.English)

// Format renders v for an axis tick or a table cell
// percent: grouped with two decimals; otherwise grouped, decimals only when v is fractional
func (p Presentation) Format(v float64) string {
	switch {
	case math.IsNaN(v):
		return ""
	case p.Percent:
		return printer.Sprintf("%.2f%%", v*100)
	case v == math.Trunc(v) && math.Abs(v) < 1e15:
		return printer.Sprintf("%d", int64(v))
	default:
		return printer.Sprintf("%.2f", v)
	}
}
