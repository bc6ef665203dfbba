// Package service runs extractions and renders charts against the loaded dataset
package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"wordtrends/internal/core/chart"
	"wordtrends/internal/core/dataset"
	"wordtrends/internal/core/metric"
	"wordtrends/internal/core/series"
	perr "wordtrends/internal/platform/errors"
	"wordtrends/internal/platform/logger"
	"wordtrends/internal/platform/metrics"
	"wordtrends/internal/services/api/trends/domain"
)

// Service is the trends service port
type Service = domain.ServicePort

// Options tunes the service
type Options struct {
	// Policy fills missing data points, ZeroFill when nil
	Policy series.MissingPolicy
	// CacheSize bounds the rendered chart cache, 0 disables it
	CacheSize int
	// Metrics receives extraction and render observations, may be nil
	Metrics *metrics.Metrics
}

type svc struct {
	ds      *dataset.Dataset
	policy  series.MissingPolicy
	metrics *metrics.Metrics
	cache   *lru.Cache[string, domain.Image]
	flight  singleflight.Group
	render  func(*bytes.Buffer, chart.Figure, chart.Options) error
}

// New builds the service over an immutable dataset
func New(ds *dataset.Dataset, opt Options) (Service, error) {
	if ds == nil {
		return nil, perr.Unavailablef("trends: dataset not loaded")
	}
	s := &svc{
		ds:      ds,
		policy:  opt.Policy,
		metrics: opt.Metrics,
		render: func(b *bytes.Buffer, fig chart.Figure, o chart.Options) error {
			return chart.Render(b, fig, o)
		},
	}
	if s.policy == nil {
		s.policy = series.ZeroFill
	}
	if opt.CacheSize > 0 {
		c, err := lru.New[string, domain.Image](opt.CacheSize)
		if err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "trends: chart cache")
		}
		s.cache = c
	}
	return s, nil
}

// Options lists the selectable values of the loaded dataset
func (s *svc) Options(_ context.Context) domain.OptionsResponse {
	ms := make([]domain.MetricOption, 0, len(metric.All()))
	for _, m := range metric.All() {
		p := metric.Present(m)
		ms = append(ms, domain.MetricOption{
			Code:       m,
			Label:      m.Label(),
			AxisTitle:  p.AxisTitle,
			Reversed:   p.Reversed,
			Percent:    p.Percent,
			TickFormat: p.TickFormat(),
		})
	}
	grans := s.ds.Granularities()
	def := dataset.Monthly
	if !s.ds.Has(def) && len(grans) > 0 {
		def = grans[0]
	}
	return domain.OptionsResponse{
		LoadID:          s.ds.ID().String(),
		Categories:      s.ds.Categories(),
		DefaultCategory: s.ds.DefaultCategory(),
		Metrics:         ms,
		Granularities:   grans,
		MissingPolicy:   s.policy.Name(),
		Defaults: domain.Defaults{
			Granularity: def,
			Metric:      metric.Frequency,
			Words:       "",
			Categories:  s.defaultCategories(),
		},
	}
}

// Series extracts the selection and lays it out as a figure
func (s *svc) Series(ctx context.Context, in domain.SeriesInput) (domain.Figure, error) {
	sel, err := s.resolve(in)
	if err != nil {
		return domain.Figure{}, err
	}
	return s.figure(ctx, sel), nil
}

// Chart renders the selection, serving repeats from the cache
func (s *svc) Chart(ctx context.Context, q domain.ChartQuery) (domain.Image, error) {
	sel, err := s.resolve(q.SeriesInput)
	if err != nil {
		return domain.Image{}, err
	}
	format, err := chart.ParseFormat(q.Format)
	if err != nil {
		return domain.Image{}, err
	}
	opts, err := chart.Options{Format: format, Width: q.Width, Height: q.Height}.Normalize()
	if err != nil {
		return domain.Image{}, err
	}

	key := sel.key(s.policy, opts)
	if s.cache != nil {
		if img, ok := s.cache.Get(key); ok {
			s.metrics.ObserveRender(string(opts.Format), "hit", 0)
			img.Cached = true
			return img, nil
		}
	}

	v, err, _ := s.flight.Do(key, func() (any, error) {
		return s.draw(ctx, sel, opts, key)
	})
	if err != nil {
		return domain.Image{}, err
	}
	return v.(domain.Image), nil
}

func (s *svc) draw(ctx context.Context, sel selection, opts chart.Options, key string) (domain.Image, error) {
	fig := s.figure(ctx, sel)

	start := time.Now()
	var buf bytes.Buffer
	if err := s.render(&buf, fig, opts); err != nil {
		if perr.CodeOf(err) == perr.ErrorCodeUnknown {
			err = perr.Wrap(err, perr.ErrorCodeRender, "render chart")
		}
		return domain.Image{}, err
	}
	elapsed := time.Since(start)

	img := domain.Image{
		ContentType: opts.Format.ContentType(),
		ETag:        s.etag(key),
		Data:        buf.Bytes(),
		NotFound:    fig.NotFound,
	}
	state := "off"
	if s.cache != nil {
		state = "miss"
		s.cache.Add(key, img)
		s.metrics.SetCacheEntries(s.cache.Len())
	}
	s.metrics.ObserveRender(string(opts.Format), state, elapsed)
	logger.C(ctx).Debug().
		Str("format", string(opts.Format)).
		Int("bytes", len(img.Data)).
		Dur("elapsed", elapsed).
		Msg("chart rendered")
	return img, nil
}

func (s *svc) figure(ctx context.Context, sel selection) domain.Figure {
	res := sel.frame.Extract(sel.req, s.policy)
	s.metrics.ObserveExtraction(string(sel.g), string(sel.m), len(res.Series), len(res.NotFound))
	if len(res.NotFound) > 0 {
		logger.C(ctx).Debug().Strs("not_found", res.NotFound).Str("granularity", string(sel.g)).Msg("words not found")
	}
	return chart.BuildFigure(sel.g, sel.m, res)
}

// etag is the load id plus a digest of the cache key
// the dataset never changes within a load so the pair identifies the bytes
func (s *svc) etag(key string) string {
	sum := sha256.Sum256([]byte(key))
	return `"` + s.ds.ID().String() + "-" + hex.EncodeToString(sum[:12]) + `"`
}

func (s *svc) defaultCategories() []string {
	if c := s.ds.DefaultCategory(); c != "" {
		return []string{c}
	}
	return []string{}
}

type selection struct {
	g     dataset.Granularity
	m     metric.Metric
	frame series.Frame
	req   series.Request
}

// resolve applies defaults and checks the selection against the dataset
func (s *svc) resolve(in domain.SeriesInput) (selection, error) {
	g := dataset.Monthly
	if strings.TrimSpace(in.Granularity) != "" {
		var err error
		if g, err = dataset.ParseGranularity(in.Granularity); err != nil {
			return selection{}, err
		}
	}
	m := metric.Frequency
	if strings.TrimSpace(in.Metric) != "" {
		var err error
		if m, err = metric.Parse(in.Metric); err != nil {
			return selection{}, err
		}
	}

	// nil means no selection was made; an explicit empty list draws nothing
	cats := make([]string, 0, len(in.Categories))
	for _, c := range in.Categories {
		c = strings.TrimSpace(c)
		if !s.ds.KnownCategory(c) {
			return selection{}, perr.WithField(perr.InvalidArgf("unknown category %q", c), "categories")
		}
		cats = append(cats, c)
	}
	if in.Categories == nil {
		cats = s.defaultCategories()
	}

	frame, err := s.ds.Frame(g, m)
	if err != nil {
		return selection{}, err
	}
	return selection{
		g:     g,
		m:     m,
		frame: frame,
		req:   series.Request{Words: series.ParseWords(in.Words), Categories: cats},
	}, nil
}

// key identifies a rendered image; word and category order matter since they set trace order
func (sel selection) key(p series.MissingPolicy, o chart.Options) string {
	var b strings.Builder
	for _, part := range []string{string(sel.g), string(sel.m), p.Name(), string(o.Format), strconv.Itoa(o.Width), strconv.Itoa(o.Height)} {
		b.WriteString(part)
		b.WriteByte('|')
	}
	b.WriteString(strings.Join(sel.req.Words, "\x1f"))
	b.WriteByte('|')
	b.WriteString(strings.Join(sel.req.Categories, "\x1f"))
	return b.String()
}
