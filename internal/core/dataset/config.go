package dataset

import (
	"time"

	"wordtrends/internal/platform/config"
)

// Settings is what the binaries read from CORE_DATASET_*
type Settings struct {
	Manifest    Manifest
	Load        LoadOptions
	HTTPTimeout time.Duration
}

// FromConfig reads the manifest path, the variant switch and loader tuning from cfg
// MANIFEST (yaml path, built-in manifest when unset), MONTHLY_ONLY, HTTP_TIMEOUT, CONCURRENCY
func FromConfig(cfg config.Conf) (Settings, error) {
	man := DefaultManifest()
	if p := cfg.MayPath("MANIFEST", ""); p != "" {
		m, err := LoadManifest(p)
		if err != nil {
			return Settings{}, err
		}
		man = m
	}
	if cfg.MayBool("MONTHLY_ONLY", false) {
		man = man.MonthlyOnly()
	}

	timeout := cfg.MayDuration("HTTP_TIMEOUT", 30*time.Second)
	conc := cfg.MayInt("CONCURRENCY", 0)
	if conc < 0 {
		conc = 0
	}
	return Settings{
		Manifest:    man,
		HTTPTimeout: timeout,
		Load: LoadOptions{
			Opener:      NewSourceOpener(timeout),
			Concurrency: conc,
		},
	}, nil
}
