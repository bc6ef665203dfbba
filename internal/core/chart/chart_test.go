package chart

import (
	"bytes"
	"math"
	"reflect"
	"strings"
	"testing"

	"wordtrends/internal/core/dataset"
	"wordtrends/internal/core/metric"
	"wordtrends/internal/core/series"
	perr "wordtrends/internal/platform/errors"
)

func sample() series.Result {
	return series.Result{
		Labels: []string{"2020-01", "2020-02", "2020-03"},
		Series: []series.Series{
			{Word: "cat", Category: "Liberal", Values: series.Values{5, 7, 6}},
			{Word: "cat", Category: "politics", Values: series.Values{1, math.NaN(), 2}},
		},
		NotFound: []string{"dog", "emu"},
	}
}

func TestBuildFigureMonthly(t *testing.T) {
	fig := BuildFigure(dataset.Monthly, metric.Frequency, sample())

	if !strings.HasPrefix(fig.Title, "Words Across Subreddits Over Time (Monthly aggregates).") {
		t.Fatalf("title = %q", fig.Title)
	}
	if fig.XAxis.Title != "Time" || fig.XAxis.TickAngle != -45 {
		t.Fatalf("xaxis = %+v", fig.XAxis)
	}
	if fig.YAxis.Title != "Frequency" || fig.YAxis.Reversed || fig.YAxis.Percent {
		t.Fatalf("yaxis = %+v", fig.YAxis)
	}
	if fig.LegendTitle != "Word in Subreddit" {
		t.Fatalf("legend = %q", fig.LegendTitle)
	}
	if len(fig.Traces) != 2 || fig.Traces[0].Name != "cat in Liberal" || fig.Traces[1].Name != "cat in politics" {
		t.Fatalf("traces = %+v", fig.Traces)
	}
	want := []Annotation{{Text: "dog not found", Color: "red"}, {Text: "emu not found", Color: "red"}}
	if !reflect.DeepEqual(fig.Annotations, want) {
		t.Fatalf("annotations = %+v", fig.Annotations)
	}
}

func TestBuildFigureYearlyPresentation(t *testing.T) {
	fig := BuildFigure(dataset.Yearly, metric.Rank, series.Result{})
	if fig.Title != "Words Across Subreddits Over Time (Yearly aggregates)" || fig.XAxis.Title != "Time (Year)" {
		t.Fatalf("yearly titles = %q / %q", fig.Title, fig.XAxis.Title)
	}
	if fig.YAxis.Title != "Rank" || !fig.YAxis.Reversed {
		t.Fatalf("rank axis = %+v", fig.YAxis)
	}
	// empty result still gives non-nil slices for JSON
	if fig.Traces == nil || fig.Annotations == nil || fig.NotFound == nil || fig.XAxis.Labels == nil {
		t.Fatalf("nil slices in empty figure: %+v", fig)
	}

	prop := BuildFigure(dataset.Yearly, metric.Proportion, series.Result{})
	if prop.YAxis.Title != "Proportion (%)" || !prop.YAxis.Percent || prop.YAxis.TickFormat != ",.2%" {
		t.Fatalf("prop axis = %+v", prop.YAxis)
	}
}

func TestRenderSVG(t *testing.T) {
	fig := BuildFigure(dataset.Monthly, metric.Frequency, sample())
	var buf bytes.Buffer
	if err := Render(&buf, fig, Options{}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"<svg", "cat in Liberal", "dog not found", "2020-02"} {
		if !strings.Contains(out, want) {
			t.Fatalf("svg missing %q", want)
		}
	}
}

func TestRenderPNG(t *testing.T) {
	fig := BuildFigure(dataset.Yearly, metric.Rank, sample())
	var buf bytes.Buffer
	if err := Render(&buf, fig, Options{Format: PNG, Width: 640, Height: 360}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Fatalf("not a png")
	}
}

func TestRenderEdgeCases(t *testing.T) {
	cases := map[string]series.Result{
		"empty":         {},
		"only missing":  {NotFound: []string{"dog"}},
		"single bucket": {Labels: []string{"2020"}, Series: []series.Series{{Word: "a", Category: "B", Values: series.Values{3}}}},
		"flat zero":     {Labels: []string{"2020", "2021"}, Series: []series.Series{{Word: "a", Category: "B", Values: series.Values{0, 0}}}},
		"all absent":    {Labels: []string{"2020", "2021"}, Series: []series.Series{{Word: "a", Category: "B", Values: series.Values{math.NaN(), math.NaN()}}}},
	}
	for name, res := range cases {
		for _, m := range metric.All() {
			var buf bytes.Buffer
			if err := Render(&buf, BuildFigure(dataset.Yearly, m, res), Options{}); err != nil {
				t.Fatalf("%s/%s: %v", name, m, err)
			}
		}
	}
}

func TestOptionsNormalize(t *testing.T) {
	o, err := Options{}.Normalize()
	if err != nil || o.Format != SVG || o.Width != DefaultWidth || o.Height != DefaultHeight {
		t.Fatalf("defaults = %+v, %v", o, err)
	}
	for _, bad := range []Options{{Width: 10}, {Height: MaxSide + 1}, {Format: "gif"}} {
		if _, err := bad.Normalize(); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
			t.Fatalf("Normalize(%+v) err = %v", bad, err)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat(""); err != nil || f != SVG || f.ContentType() != "image/svg+xml" {
		t.Fatalf("empty = %v %v", f, err)
	}
	if f, err := ParseFormat("PNG"); err != nil || f != PNG || f.ContentType() != "image/png" {
		t.Fatalf("png = %v %v", f, err)
	}
	if _, err := ParseFormat("jpeg"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestYTicks(t *testing.T) {
	ticks := yTicks(0, 0.37, 6, metric.Present(metric.Proportion))
	if len(ticks) < 2 {
		t.Fatalf("ticks = %+v", ticks)
	}
	if ticks[0].Value != 0 || ticks[len(ticks)-1].Value < 0.37 {
		t.Fatalf("ticks do not cover range: %+v", ticks)
	}
	for i := 1; i < len(ticks); i++ {
		if ticks[i].Value <= ticks[i-1].Value {
			t.Fatalf("ticks not ascending: %+v", ticks)
		}
	}
	if !strings.HasSuffix(ticks[1].Label, "%") {
		t.Fatalf("percent label = %q", ticks[1].Label)
	}
}

func TestXTicks(t *testing.T) {
	labels := make([]string, 100)
	for i := range labels {
		labels[i] = "x"
	}
	ticks := xTicks(labels, 20)
	// 20 labels plus two bookends
	if len(ticks) > 22 {
		t.Fatalf("too many ticks: %d", len(ticks))
	}
	if lo, hi := tickBounds(ticks); lo != -0.5 || hi != 99.5 {
		t.Fatalf("bounds = %v..%v", lo, hi)
	}
	if lo, hi := tickBounds(xTicks([]string{"2020"}, 20)); hi <= lo {
		t.Fatalf("single bucket range is empty")
	}
}

func TestWrap(t *testing.T) {
	measure := func(s string) int { return len(s) }
	got := wrap("aa bb cc dd", 5, measure)
	if !reflect.DeepEqual(got, []string{"aa bb", "cc dd"}) {
		t.Fatalf("wrap = %q", got)
	}
	if wrap("", 5, measure) != nil {
		t.Fatalf("wrap empty should be nil")
	}
}
