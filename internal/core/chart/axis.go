package chart

import (
	"math"

	gochart "github.com/wcharczuk/go-chart/v2"

	"wordtrends/internal/core/metric"
)

// valueBounds scans every drawable value; ok is false when there is none
func valueBounds(traces []Trace) (lo, hi float64, ok bool) {
	lo, hi = math.MaxFloat64, -math.MaxFloat64
	for _, tr := range traces {
		for _, v := range tr.Values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
			ok = true
		}
	}
	return lo, hi, ok
}

// yRange picks a padded value range
// counts and shares start at zero; ranks start at their best observed value
func yRange(traces []Trace, m metric.Metric) (float64, float64) {
	lo, hi, ok := valueBounds(traces)
	if !ok {
		if m == metric.Rank {
			return 1, 10
		}
		return 0, 1
	}
	if m != metric.Rank && lo > 0 {
		lo = 0
	}
	if hi <= lo {
		hi = lo + 1
	}
	pad := (hi - lo) * 0.05
	if m != metric.Rank && lo == 0 {
		return lo, hi + pad
	}
	return lo - pad, hi + pad
}

// niceStep picks a 1/2/2.5/5 x 10^k step giving about n ticks over span
func niceStep(span float64, n int) float64 {
	if n < 2 {
		n = 2
	}
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	best, bestScore := mag, math.MaxFloat64
	for _, c := range []float64{1, 2, 2.5, 5, 10} {
		step := c * mag
		count := math.Ceil(span / step)
		if score := math.Abs(count - float64(n)); score < bestScore {
			best, bestScore = step, score
		}
	}
	return best
}

// yTicks snaps [lo, hi] outward to whole steps and labels every step
// go-chart takes the axis range from the outermost ticks
func yTicks(lo, hi float64, n int, p metric.Presentation) []gochart.Tick {
	if hi <= lo {
		hi = lo + 1
	}
	step := niceStep(hi-lo, n)
	start := math.Floor(lo/step) * step
	end := math.Ceil(hi/step) * step
	if end <= start {
		end = start + step
	}
	var ticks []gochart.Tick
	for i := 0; ; i++ {
		v := start + float64(i)*step
		if v > end+step/2 {
			break
		}
		// clear float noise such as 0.30000000000000004
		v = math.Round(v/step) * step
		ticks = append(ticks, gochart.Tick{Value: v, Label: p.Format(v)})
	}
	return ticks
}

// xTicks labels bucket indexes, thinned to at most max labels
// empty bookend ticks at -0.5 and n-0.5 keep the x range non-zero for a single bucket
func xTicks(labels []string, max int) []gochart.Tick {
	n := len(labels)
	if n == 0 {
		return []gochart.Tick{{Value: 0}, {Value: 1}}
	}
	every := 1
	if max > 0 && n > max {
		every = (n + max - 1) / max
	}
	ticks := make([]gochart.Tick, 0, n/every+2)
	ticks = append(ticks, gochart.Tick{Value: -0.5})
	for i := 0; i < n; i += every {
		ticks = append(ticks, gochart.Tick{Value: float64(i), Label: labels[i]})
	}
	ticks = append(ticks, gochart.Tick{Value: float64(n) - 0.5})
	return ticks
}

func tickBounds(ticks []gochart.Tick) (float64, float64) {
	lo, hi := math.MaxFloat64, -math.MaxFloat64
	for _, t := range ticks {
		lo = math.Min(lo, t.Value)
		hi = math.Max(hi, t.Value)
	}
	return lo, hi
}
