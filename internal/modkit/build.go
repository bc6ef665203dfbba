package modkit

import (
	"net/http"

	phttp "wordtrends/internal/platform/net/http"
	pstrings "wordtrends/internal/platform/strings"
)

// Built is the resolved option set a module keeps
type Built struct {
	Name     string
	Prefix   string
	Mw       []func(http.Handler) http.Handler
	Ports    any
	Register func(phttp.Router)
}

// Build applies opts in order; later options win
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	if c.register == nil {
		c.register = func(phttp.Router) {}
	}
	return Built{
		Name:     c.name,
		Prefix:   c.prefix,
		Mw:       append([]func(http.Handler) http.Handler(nil), c.mw...),
		Ports:    c.ports,
		Register: c.register,
	}
}

// Mount opens the module prefix on r, applies the module middleware,
// then runs own followed by any WithRegister hook
func (b Built) Mount(r phttp.Router, own func(phttp.Router)) {
	r.Route(pstrings.MustPrefix(b.Prefix), func(sub phttp.Router) {
		if len(b.Mw) > 0 {
			sub.Use(b.Mw...)
		}
		if own != nil {
			own(sub)
		}
		b.Register(sub)
	})
}
