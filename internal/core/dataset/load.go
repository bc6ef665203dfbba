package dataset

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"wordtrends/internal/core/metric"
	"wordtrends/internal/core/series"
	perr "wordtrends/internal/platform/errors"
	"wordtrends/internal/platform/logger"
)

// LoadOptions tunes Load
type LoadOptions struct {
	// Opener reads sources, NewSourceOpener(0) when nil
	Opener Opener
	// Concurrency caps parallel fetches, 0 means one per source
	Concurrency int
	// Now stamps the dataset, time.Now when nil
	Now func() time.Time
}

type job struct {
	g   Granularity
	m   metric.Metric
	src string
}

// Load fetches and parses every source in the manifest concurrently and builds the Dataset
// the first failing source cancels the rest and fails the load
func Load(ctx context.Context, man Manifest, opts LoadOptions) (*Dataset, error) {
	if err := man.Validate(); err != nil {
		return nil, err
	}
	opener := opts.Opener
	if opener == nil {
		opener = NewSourceOpener(0)
	}
	log := logger.Named("dataset")

	var jobs []job
	for _, g := range man.Granularities() {
		ms := man.Sources.For(g)
		for _, m := range metric.All() {
			jobs = append(jobs, job{g: g, m: m, src: man.resolve(ms.For(m))})
		}
	}

	var (
		mu     sync.Mutex
		frames = Frames{}
	)
	start := time.Now()

	eg, gctx := errgroup.WithContext(ctx)
	if opts.Concurrency > 0 {
		eg.SetLimit(opts.Concurrency)
	}
	for _, j := range jobs {
		eg.Go(func() error {
			t0 := time.Now()
			f, err := loadOne(gctx, opener, j)
			if err != nil {
				log.Error().Err(err).
					Str("granularity", j.g.String()).
					Str("metric", j.m.String()).
					Str("source", j.src).
					Msg("source failed")
				return err
			}
			log.Debug().
				Str("granularity", j.g.String()).
				Str("metric", j.m.String()).
				Int("words", f.Words()).
				Int("columns", f.Columns()).
				Dur("took", time.Since(t0)).
				Msg("source loaded")

			mu.Lock()
			defer mu.Unlock()
			if frames[j.g] == nil {
				frames[j.g] = map[metric.Metric]series.Frame{}
			}
			frames[j.g][j.m] = f
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	d, err := New(frames, Options{
		Categories:      man.Categories,
		DefaultCategory: man.DefaultCategory,
		Now:             opts.Now,
	})
	if err != nil {
		return nil, err
	}
	log.Info().
		Str("load_id", d.ID().String()).
		Int("tables", len(jobs)).
		Strs("categories", d.Categories()).
		Dur("took", time.Since(start)).
		Msg("dataset loaded")
	return d, nil
}

func loadOne(ctx context.Context, opener Opener, j job) (series.Frame, error) {
	rc, err := opener.Open(ctx, j.src)
	if err != nil {
		return nil, sourceErr(err, j)
	}
	defer func() { _ = rc.Close() }()

	f, err := parseFrame(j.g, rc)
	if err != nil {
		return nil, sourceErr(err, j)
	}
	return f, nil
}

// sourceErr tags err with the failing table, keeping a classified code
func sourceErr(err error, j job) error {
	code := perr.CodeOf(err)
	if code == perr.ErrorCodeUnknown {
		code = perr.ErrorCodeSource
		if perr.IsTransient(err) {
			code = perr.ErrorCodeUnavailable
		}
	}
	return perr.WithOp(perr.Wrapf(err, code, "dataset: %s/%s from %s", j.g, j.m, j.src), "load")
}
