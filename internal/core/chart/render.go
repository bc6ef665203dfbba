package chart

import (
	"io"
	"math"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"wordtrends/internal/core/metric"
	perr "wordtrends/internal/platform/errors"
)

// Format is an image encoding
type Format string

const (
	// SVG is the default format
	SVG Format = "svg"
	// PNG is a raster image
	PNG Format = "png"
)

// ParseFormat accepts svg or png, empty means svg
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "svg":
		return SVG, nil
	case "png":
		return PNG, nil
	}
	return "", perr.WithField(perr.InvalidArgf("unknown image format %q", s), "format")
}

// ContentType is the http media type of f
func (f Format) ContentType() string {
	if f == PNG {
		return "image/png"
	}
	return "image/svg+xml"
}

// size limits, pixels
const (
	DefaultWidth  = 1024
	DefaultHeight = 576
	MinSide       = 240
	MaxSide       = 4096
)

// Options controls image output
type Options struct {
	Format Format
	Width  int
	Height int
}

// Normalize fills defaults and checks bounds
func (o Options) Normalize() (Options, error) {
	if o.Format == "" {
		o.Format = SVG
	}
	if o.Format != SVG && o.Format != PNG {
		return o, perr.WithField(perr.InvalidArgf("unknown image format %q", o.Format), "format")
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Width < MinSide || o.Width > MaxSide {
		return o, perr.WithField(perr.InvalidArgf("width must be in %d..%d", MinSide, MaxSide), "width")
	}
	if o.Height < MinSide || o.Height > MaxSide {
		return o, perr.WithField(perr.InvalidArgf("height must be in %d..%d", MinSide, MaxSide), "height")
	}
	return o, nil
}

const (
	titleFontSize  = 12.0
	titlePadTop    = 8
	titleLineGap   = 4
	xLabelPitch    = 36 // px per rotated x label
	bottomPad      = 72
	maxTitleLines  = 3
	notFoundFont   = 14.0
	notFoundOffset = 0.08
)

// Render draws fig into w
// absent values are left out of their line; traces with no values at all are not drawn
func Render(w io.Writer, fig Figure, opts Options) error {
	opts, err := opts.Normalize()
	if err != nil {
		return err
	}

	present := metric.Present(fig.Metric)
	lo, hi := yRange(fig.Traces, fig.Metric)
	yt := yTicks(lo, hi, 6, present)
	lo, hi = tickBounds(yt)

	xt := xTicks(fig.XAxis.Labels, opts.Width/xLabelPitch)
	xlo, xhi := tickBounds(xt)

	var drawn []gochart.Series
	for _, tr := range fig.Traces {
		xs := make([]float64, 0, len(tr.Values))
		ys := make([]float64, 0, len(tr.Values))
		for i, v := range tr.Values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			xs = append(xs, float64(i))
			ys = append(ys, v)
		}
		if len(xs) == 0 {
			continue
		}
		drawn = append(drawn, gochart.ContinuousSeries{
			Name:    tr.Name,
			Style:   gochart.Style{StrokeWidth: 2, DotWidth: 3},
			XValues: xs,
			YValues: ys,
		})
	}
	if len(drawn) == 0 {
		// go-chart refuses to draw without a series
		drawn = append(drawn, gochart.ContinuousSeries{
			Style:   gochart.Style{Hidden: true},
			XValues: []float64{xlo, xhi},
			YValues: []float64{lo, hi},
		})
	}
	if len(fig.Annotations) > 0 {
		notes := make([]gochart.Value2, 0, len(fig.Annotations))
		for i, a := range fig.Annotations {
			notes = append(notes, gochart.Value2{
				XValue: (xlo + xhi) / 2,
				YValue: lo + (hi-lo)*(0.5-notFoundOffset*float64(i)),
				Label:  a.Text,
				Style: gochart.Style{
					FontColor:   drawing.ColorRed,
					FontSize:    notFoundFont,
					StrokeColor: drawing.ColorRed,
					FillColor:   drawing.ColorWhite,
				},
			})
		}
		drawn = append(drawn, gochart.AnnotationSeries{Name: "not found", Annotations: notes})
	}

	ch := gochart.Chart{
		Width:  opts.Width,
		Height: opts.Height,
		Background: gochart.Style{Padding: gochart.Box{
			Top:    titleHeight(fig.Title),
			Left:   16,
			Right:  16,
			Bottom: bottomPad,
		}},
		XAxis: gochart.XAxis{
			Name:      fig.XAxis.Title,
			Range:     &gochart.ContinuousRange{Min: xlo, Max: xhi},
			Ticks:     xt,
			TickStyle: gochart.Style{TextRotationDegrees: -float64(fig.XAxis.TickAngle)},
		},
		YAxis: gochart.YAxis{
			Name:  fig.YAxis.Title,
			Range: &gochart.ContinuousRange{Min: lo, Max: hi, Descending: fig.YAxis.Reversed},
			Ticks: yt,
		},
		Series: drawn,
	}
	ch.Elements = []gochart.Renderable{titleElement(fig.Title, opts.Width), gochart.Legend(&ch)}

	provider := gochart.SVG
	if opts.Format == PNG {
		provider = gochart.PNG
	}
	if err := ch.Render(provider, w); err != nil {
		return perr.Wrap(err, perr.ErrorCodeRender, "chart: render failed")
	}
	return nil
}

// titleHeight reserves room above the canvas for the wrapped title
func titleHeight(title string) int {
	if title == "" {
		return 20
	}
	return titlePadTop + maxTitleLines*(int(titleFontSize*1.4)+titleLineGap) + 8
}

// titleElement draws title centered and word wrapped to the image width
// go-chart's own title is a single line
func titleElement(title string, width int) gochart.Renderable {
	return func(r gochart.Renderer, _ gochart.Box, defaults gochart.Style) {
		if title == "" {
			return
		}
		if defaults.Font != nil {
			r.SetFont(defaults.Font)
		}
		r.SetFontSize(titleFontSize)
		r.SetFontColor(drawing.ColorBlack)

		lines := wrap(title, width-40, func(s string) int { return r.MeasureText(s).Width() })
		if len(lines) > maxTitleLines {
			lines = lines[:maxTitleLines]
		}
		y := titlePadTop
		for _, ln := range lines {
			box := r.MeasureText(ln)
			y += box.Height() + titleLineGap
			r.Text(ln, (width-box.Width())/2, y)
		}
	}
}

// wrap breaks text on spaces so that each line measures at most max
func wrap(text string, max int, measure func(string) int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	cur := words[0]
	for _, w := range words[1:] {
		next := cur + " " + w
		if measure(next) > max {
			lines = append(lines, cur)
			cur = w
			continue
		}
		cur = next
	}
	return append(lines, cur)
}
