// Package modkit wires API modules: shared deps, build options and the module contract
package modkit

import "wordtrends/internal/modkit/module"

// Module is the surface api.Mount composes; see module.Module
type Module = module.Module

// Builder constructs a Module from shared deps and options
// modules expose New(deps Deps, opts ...Option) Module in this shape
type Builder func(Deps, ...Option) Module
