package dataset

import (
	"slices"
	"sort"
	"time"

	"github.com/google/uuid"

	"wordtrends/internal/core/metric"
	"wordtrends/internal/core/series"
	perr "wordtrends/internal/platform/errors"
)

// Frames maps each loaded granularity to one frame per metric
type Frames map[Granularity]map[metric.Metric]series.Frame

// Options tunes dataset construction
type Options struct {
	// Categories is the known category enumeration; empty derives it from the tables
	Categories []string
	// DefaultCategory preselected by clients; empty means the first category
	DefaultCategory string
	// Now stamps LoadedAt, time.Now when nil
	Now func() time.Time
}

// Dataset is the immutable set of tables served by the process
// build it once, share the pointer, never mutate it
type Dataset struct {
	id       uuid.UUID
	loadedAt time.Time

	frames     Frames
	grans      []Granularity
	categories []string
	known      map[string]struct{}
	defaultCat string
}

// New validates frames and freezes them into a Dataset
// every loaded granularity must hold a frame for every metric
func New(frames Frames, opts Options) (*Dataset, error) {
	if len(frames) == 0 {
		return nil, perr.InvalidArgf("dataset: no tables")
	}

	d := &Dataset{
		id:     uuid.New(),
		frames: make(Frames, len(frames)),
	}
	for _, g := range Granularities() {
		byMetric, ok := frames[g]
		if !ok {
			continue
		}
		own := make(map[metric.Metric]series.Frame, len(byMetric))
		for _, m := range metric.All() {
			f, ok := byMetric[m]
			if !ok || f == nil {
				return nil, perr.InvalidArgf("dataset: %s has no %s table", g, m)
			}
			own[m] = f
		}
		d.frames[g] = own
		d.grans = append(d.grans, g)
	}
	for g := range frames {
		if !g.Valid() {
			return nil, perr.InvalidArgf("dataset: unknown granularity %q", g)
		}
	}

	if len(opts.Categories) > 0 {
		d.categories = slices.Clone(opts.Categories)
	} else {
		d.categories = d.tableCategories()
	}
	d.known = make(map[string]struct{}, len(d.categories))
	for _, c := range d.categories {
		d.known[c] = struct{}{}
	}

	switch {
	case opts.DefaultCategory != "":
		if _, ok := d.known[opts.DefaultCategory]; !ok {
			return nil, perr.InvalidArgf("dataset: default category %q is not known", opts.DefaultCategory)
		}
		d.defaultCat = opts.DefaultCategory
	case len(d.categories) > 0:
		d.defaultCat = d.categories[0]
	}

	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	d.loadedAt = now().UTC()
	return d, nil
}

// tableCategories is the sorted union of categories across all frames
func (d *Dataset) tableCategories() []string {
	set := map[string]struct{}{}
	for _, byMetric := range d.frames {
		for _, f := range byMetric {
			for _, c := range f.Categories() {
				set[c] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// ID identifies this load; it changes on every process start
func (d *Dataset) ID() uuid.UUID { return d.id }

// LoadedAt is when the dataset was built
func (d *Dataset) LoadedAt() time.Time { return d.loadedAt }

// Granularities lists the loaded granularities in display order
func (d *Dataset) Granularities() []Granularity { return slices.Clone(d.grans) }

// Has reports whether g is loaded
func (d *Dataset) Has(g Granularity) bool {
	_, ok := d.frames[g]
	return ok
}

// Categories returns the known category enumeration
func (d *Dataset) Categories() []string { return slices.Clone(d.categories) }

// DefaultCategory returns the category preselected by clients
func (d *Dataset) DefaultCategory() string { return d.defaultCat }

// KnownCategory reports whether c belongs to the enumeration
func (d *Dataset) KnownCategory(c string) bool {
	_, ok := d.known[c]
	return ok
}

// Frame returns the table for (g, m)
func (d *Dataset) Frame(g Granularity, m metric.Metric) (series.Frame, error) {
	byMetric, ok := d.frames[g]
	if !ok {
		if !g.Valid() {
			return nil, perr.WithField(perr.InvalidArgf("unknown granularity %q", g), "granularity")
		}
		return nil, perr.WithField(perr.NotFoundf("granularity %q is not loaded", g), "granularity")
	}
	f, ok := byMetric[m]
	if !ok {
		return nil, perr.WithField(perr.InvalidArgf("unknown metric %q", m), "metric")
	}
	return f, nil
}

// TableSummary describes one loaded table
type TableSummary struct {
	Granularity Granularity   `json:"granularity"`
	Metric      metric.Metric `json:"metric"`
	Words       int           `json:"words"`
	Columns     int           `json:"columns"`
	Buckets     int           `json:"buckets"`
	First       string        `json:"first,omitempty"`
	Last        string        `json:"last,omitempty"`
	Categories  []string      `json:"categories"`
}

// Summary describes the whole dataset
type Summary struct {
	ID              string         `json:"id"`
	LoadedAt        time.Time      `json:"loaded_at"`
	Categories      []string       `json:"categories"`
	DefaultCategory string         `json:"default_category"`
	Tables          []TableSummary `json:"tables"`
}

// Summary reports per table counts in granularity then metric order
func (d *Dataset) Summary() Summary {
	s := Summary{
		ID:              d.id.String(),
		LoadedAt:        d.loadedAt,
		Categories:      d.Categories(),
		DefaultCategory: d.defaultCat,
	}
	for _, g := range d.grans {
		for _, m := range metric.All() {
			f := d.frames[g][m]
			labels := f.Labels()
			ts := TableSummary{
				Granularity: g,
				Metric:      m,
				Words:       f.Words(),
				Columns:     f.Columns(),
				Buckets:     len(labels),
				Categories:  f.Categories(),
			}
			if len(labels) > 0 {
				ts.First, ts.Last = labels[0], labels[len(labels)-1]
			}
			s.Tables = append(s.Tables, ts)
		}
	}
	return s
}
