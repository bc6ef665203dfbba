// Package module defines the contract every API module satisfies and the
// helpers used to reach another module's ports
package module

import (
	phttp "wordtrends/internal/platform/net/http"
)

// Module is what api.Mount composes
// it lives apart from modkit so a module can export its own ports type without an import cycle
type Module interface {
	// MountRoutes mounts the module under its prefix on r
	MountRoutes(r phttp.Router)
	// Ports returns the module's port set, nil when it exposes none
	Ports() any
	// Name is the module name used in logs and the registry
	Name() string
}
