// @title         wordtrends API
// @version       1.0
// @description   Word usage time series and charts across discussion communities

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wordtrends/internal/core/dataset"
	"wordtrends/internal/platform/config"
	"wordtrends/internal/platform/logger"
	"wordtrends/internal/platform/metrics"
	phttp "wordtrends/internal/platform/net/http"

	"wordtrends/internal/services/api"
)

func main() {
	root := config.New().Prefix("CORE_")
	apiCfg := root.Prefix("API_")
	dsCfg := root.Prefix("DATASET_") // manifest and loader tuning

	// bring up logging early
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New("wordtrends")

	// the dataset is loaded once, before anything listens
	ds := mustLoad(ctx, l, dsCfg, m)

	// http server (reads CORE_API_ADDR and the timeouts)
	srv := phttp.NewServer(apiCfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			Logger:         l,
			Dataset:        ds,
			Metrics:        m,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
			EnableMetrics:  apiCfg.MayBool("METRICS", true),
		},
	)

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}

func mustLoad(ctx context.Context, l *logger.Logger, cfg config.Conf, m *metrics.Metrics) *dataset.Dataset {
	set, err := dataset.FromConfig(cfg)
	if err != nil {
		l.Panic().Err(err).Msg("dataset config invalid")
	}

	start := time.Now()
	ds, err := dataset.Load(ctx, set.Manifest, set.Load)
	if err != nil {
		l.Panic().Err(err).Msg("dataset load failed")
	}

	m.ObserveDatasetLoad(ds.LoadedAt(), time.Since(start))
	for _, t := range ds.Summary().Tables {
		m.SetTableWords(t.Granularity.String(), t.Metric.String(), t.Words)
	}
	return ds
}
