package module

import (
	"wordtrends/internal/core/series"
	"wordtrends/internal/platform/config"
)

// Options controls extraction and the chart cache
type Options struct {
	Policy    series.MissingPolicy
	CacheSize int
}

// FromConfig reads TRENDS_* values from process config/env
// MISSING is zero or absent; an unknown value panics at startup
func FromConfig(cfg config.Conf) Options {
	tc := cfg.Prefix("TRENDS_")
	name := tc.MayEnum("MISSING", series.ZeroFill.Name(), series.PolicyNames()...)
	policy, err := series.PolicyByName(name)
	if err != nil {
		policy = series.ZeroFill
	}
	return Options{
		Policy:    policy,
		CacheSize: max(tc.MayInt("CHART_CACHE", 256), 0),
	}
}
