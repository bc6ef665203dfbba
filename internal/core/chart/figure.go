// Package chart turns extraction results into figures and draws them
package chart

import (
	"fmt"

	"wordtrends/internal/core/dataset"
	"wordtrends/internal/core/metric"
	"wordtrends/internal/core/series"
)

const (
	monthlyTitle = "Words Across Subreddits Over Time (Monthly aggregates). " +
		"Use lowercase singular nouns while searching. If searching for multiple nouns, separate by commas"
	yearlyTitle = "Words Across Subreddits Over Time (Yearly aggregates)"

	legendTitle = "Word in Subreddit"
	tickAngle   = -45

	// NotFoundColor is the color of a not found note
	NotFoundColor = "red"
)

// XAxis is the categorical time axis
type XAxis struct {
	Title     string   `json:"title"`
	Labels    []string `json:"labels"`
	TickAngle int      `json:"tick_angle"`
}

// YAxis is the value axis
type YAxis struct {
	Title      string `json:"title"`
	Reversed   bool   `json:"reversed"`
	Percent    bool   `json:"percent"`
	TickFormat string `json:"tick_format"`
}

// Trace is one line, named "<word> in <category>"
type Trace struct {
	Name     string        `json:"name"`
	Word     string        `json:"word"`
	Category string        `json:"category"`
	Mode     string        `json:"mode"`
	Values   series.Values `json:"values"`
}

// Annotation is a free text note centered on the plot
type Annotation struct {
	Text  string `json:"text"`
	Color string `json:"color"`
}

// Figure is everything needed to draw one chart
type Figure struct {
	Granularity dataset.Granularity `json:"granularity"`
	Metric      metric.Metric       `json:"metric"`
	Title       string              `json:"title"`
	XAxis       XAxis               `json:"xaxis"`
	YAxis       YAxis               `json:"yaxis"`
	LegendTitle string              `json:"legend_title"`
	Traces      []Trace             `json:"traces"`
	Annotations []Annotation        `json:"annotations"`
	NotFound    []string            `json:"not_found"`
}

// TraceName is the legend entry of a (word, category) line
func TraceName(word, category string) string { return fmt.Sprintf("%s in %s", word, category) }

// NotFoundText is the note shown for a word missing from the table
func NotFoundText(word string) string { return word + " not found" }

// Titles returns the chart title and x axis title of g
func Titles(g dataset.Granularity) (title, xTitle string) {
	if g == dataset.Yearly {
		return yearlyTitle, "Time (Year)"
	}
	return monthlyTitle, "Time"
}

// BuildFigure lays out res for granularity g and metric m
func BuildFigure(g dataset.Granularity, m metric.Metric, res series.Result) Figure {
	p := metric.Present(m)
	title, xTitle := Titles(g)

	fig := Figure{
		Granularity: g,
		Metric:      m,
		Title:       title,
		XAxis: XAxis{
			Title:     xTitle,
			Labels:    nonNil(res.Labels),
			TickAngle: tickAngle,
		},
		YAxis: YAxis{
			Title:      p.AxisTitle,
			Reversed:   p.Reversed,
			Percent:    p.Percent,
			TickFormat: p.TickFormat(),
		},
		LegendTitle: legendTitle,
		Traces:      make([]Trace, 0, len(res.Series)),
		Annotations: make([]Annotation, 0, len(res.NotFound)),
		NotFound:    nonNil(res.NotFound),
	}
	for _, s := range res.Series {
		fig.Traces = append(fig.Traces, Trace{
			Name:     TraceName(s.Word, s.Category),
			Word:     s.Word,
			Category: s.Category,
			Mode:     "lines+markers",
			Values:   s.Values,
		})
	}
	for _, w := range res.NotFound {
		fig.Annotations = append(fig.Annotations, Annotation{Text: NotFoundText(w), Color: NotFoundColor})
	}
	return fig
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
