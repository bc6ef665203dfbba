// Package module wires meta endpoints into the API
package module

import (
	"time"

	modkit "wordtrends/internal/modkit"
	"wordtrends/internal/modkit/httpkit"
	"wordtrends/internal/platform/net/middleware"
	metahttp "wordtrends/internal/services/api/meta/http"
)

// ServiceName is reported by /meta/health and /meta/service
const ServiceName = "wordtrends-api"

// Module implements the modkit.Module interface
type Module struct {
	deps      modkit.Deps
	b         modkit.Built
	startedAt time.Time
}

// New constructs the meta module; probes are never cached
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
		modkit.WithMiddlewares(middleware.NoCache()),
	}, opts...)...)

	return &Module{deps: deps, b: b, startedAt: time.Now()}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) {
		metahttp.Register(rr, metahttp.Deps{
			ServiceName: ServiceName,
			StartedAt:   m.startedAt,
			Dataset:     m.deps.Dataset,
		})
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return m.b.Name }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return m.b.Ports }
