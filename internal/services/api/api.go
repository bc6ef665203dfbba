// Package api provides the HTTP API for the application
package api

import (
	"time"

	"wordtrends/internal/core/dataset"
	"wordtrends/internal/modkit"
	"wordtrends/internal/modkit/httpkit"
	"wordtrends/internal/modkit/module"
	"wordtrends/internal/modkit/swaggerkit"
	"wordtrends/internal/platform/config"
	"wordtrends/internal/platform/logger"
	"wordtrends/internal/platform/metrics"
	phttp "wordtrends/internal/platform/net/http"

	// registers the OpenAPI document with swag
	_ "wordtrends/internal/services/api/docs"

	metamod "wordtrends/internal/services/api/meta/module"
	trendsmod "wordtrends/internal/services/api/trends/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	Dataset        *dataset.Dataset
	Metrics        *metrics.Metrics
	EnableSwagger  bool
	EnableProfiler bool
	EnableMetrics  bool
}

// Mount mounts the API service onto the given router
// the dataset must already be loaded; nothing here fetches
func Mount(r phttp.Router, opt Options) []modkit.Module {
	deps := modkit.Deps{
		Log:     opt.Logger,
		Cfg:     opt.Config,
		Dataset: opt.Dataset,
		Metrics: opt.Metrics,
	}
	api := opt.Config.Prefix("API_")
	stack := httpkit.StackOptions{
		LoadID:   deps.LoadID(),
		Slow:     api.MayDuration("SLOW_REQUEST", time.Second),
		Timeout:  api.MayDuration("REQUEST_TIMEOUT", 30*time.Second),
		Throttle: api.MayInt("MAX_INFLIGHT", 0),
		Origins:  api.MayCSV("CORS_ORIGINS", nil),
	}
	if opt.Metrics != nil {
		stack.Observe = opt.Metrics.ObserveHTTP
	}

	// root stack must be installed before any route
	r.Use(httpkit.RootStack(stack)...)

	mods := []modkit.Module{
		metamod.New(deps),
		trendsmod.New(deps, trendsmod.FromConfig(opt.Config)),
	}

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
	if opt.EnableMetrics && opt.Metrics != nil {
		r.Handle("/metrics", opt.Metrics.Handler())
	}

	httpkit.MountAPIV1(r, httpkit.CommonStack(stack), func(v1 httpkit.Router) {
		for _, m := range mods {
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(v1)
		}
	})
	return mods
}
