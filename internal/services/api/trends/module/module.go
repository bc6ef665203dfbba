// Package module wires trends into the API using modkit
package module

import (
	modkit "wordtrends/internal/modkit"
	"wordtrends/internal/modkit/httpkit"
	trendshttp "wordtrends/internal/services/api/trends/http"
	trendssvc "wordtrends/internal/services/api/trends/service"
)

// Ports is what trends exposes to other modules
type Ports struct {
	Service trendssvc.Service
}

// Module implements the trends module
type Module struct {
	b     modkit.Built
	svc   trendssvc.Service
	ports any
}

// New constructs the trends module; opts override name, prefix and ports
// it panics when the service cannot be built, which only happens at startup
func New(deps modkit.Deps, o Options, opts ...modkit.Option) modkit.Module {
	svc, err := trendssvc.New(deps.Dataset, trendssvc.Options{
		Policy:    o.Policy,
		CacheSize: o.CacheSize,
		Metrics:   deps.Metrics,
	})
	if err != nil {
		deps.Logger("trends").Panic().Err(err).Msg("trends service")
	}

	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("trends"),
		modkit.WithPrefix("/trends"),
		modkit.WithPorts(Ports{Service: svc}),
	}, opts...)...)

	return &Module{b: b, svc: svc, ports: b.Ports}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) {
		trendshttp.Register(rr, m.svc)
	})
}

// Name returns the module name
func (m *Module) Name() string { return m.b.Name }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
