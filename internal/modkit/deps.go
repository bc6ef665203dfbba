package modkit

import (
	"wordtrends/internal/core/dataset"
	"wordtrends/internal/platform/config"
	"wordtrends/internal/platform/logger"
	"wordtrends/internal/platform/metrics"
)

// Deps holds the process wide dependencies handed to every module
// the dataset is loaded before any module is built and never changes afterwards
type Deps struct {
	Log     *logger.Logger
	Cfg     config.Conf
	Dataset *dataset.Dataset
	Metrics *metrics.Metrics
}

// Logger returns a component logger for a module, falling back to the root logger
func (d Deps) Logger(component string) *logger.Logger {
	if d.Log == nil {
		return logger.Named(component)
	}
	ll := d.Log.With().Str("component", component).Logger()
	return &ll
}

// LoadID is the dataset load id, empty when no dataset is wired
func (d Deps) LoadID() string {
	if d.Dataset == nil {
		return ""
	}
	return d.Dataset.ID().String()
}
