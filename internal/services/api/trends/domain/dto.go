// Package domain holds the trends request and response types
package domain

import (
	"wordtrends/internal/core/chart"
	"wordtrends/internal/core/dataset"
	"wordtrends/internal/core/metric"
	"wordtrends/internal/core/series"
)

// request limits
const (
	MaxWords      = 20
	MaxCategories = 16
)

// SeriesInput selects what to extract
// empty granularity, metric and categories fall back to monthly, freq and the default category
type SeriesInput struct {
	Granularity string            `json:"granularity,omitempty" validate:"omitempty,max=16" example:"monthly"`
	Metric      string            `json:"metric,omitempty" validate:"omitempty,max=16" example:"freq"`
	Words       string            `json:"words" validate:"max=1024,max_words=20" example:"cat,dog"`
	Categories  series.StringList `json:"categories,omitempty" validate:"max=16,dive,required,max=64" example:"Conservative"`
}

// ChartQuery is SeriesInput plus image options, read from the query string
type ChartQuery struct {
	SeriesInput
	Format string `json:"format,omitempty" validate:"omitempty,max=8" example:"svg"`
	Width  int    `json:"width,omitempty" validate:"gte=0" example:"1024"`
	Height int    `json:"height,omitempty" validate:"gte=0" example:"576"`
}

// MetricOption describes one selectable metric
type MetricOption struct {
	Code       metric.Metric `json:"code" example:"freq"`
	Label      string        `json:"label" example:"Frequency"`
	AxisTitle  string        `json:"axis_title" example:"Frequency"`
	Reversed   bool          `json:"reversed"`
	Percent    bool          `json:"percent"`
	TickFormat string        `json:"tick_format" example:","`
}

// Defaults is the initial selection of a client
type Defaults struct {
	Granularity dataset.Granularity `json:"granularity" example:"monthly"`
	Metric      metric.Metric       `json:"metric" example:"freq"`
	Words       string              `json:"words" example:""`
	Categories  []string            `json:"categories" example:"Conservative"`
}

// OptionsResponse lists everything a client can select
type OptionsResponse struct {
	LoadID          string                `json:"load_id"`
	Categories      []string              `json:"categories"`
	DefaultCategory string                `json:"default_category" example:"Conservative"`
	Metrics         []MetricOption        `json:"metrics"`
	Granularities   []dataset.Granularity `json:"granularities"`
	MissingPolicy   string                `json:"missing_policy" example:"zero"`
	Defaults        Defaults              `json:"defaults"`
}

// Figure is the chart description returned by POST /series
type Figure = chart.Figure

// Image is one rendered chart
type Image struct {
	ContentType string
	ETag        string
	Data        []byte
	NotFound    []string
	Cached      bool
}
