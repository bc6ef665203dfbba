package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"wordtrends/internal/platform/net/middleware"
)

// StackOptions tunes the shared middleware stacks
type StackOptions struct {
	// LoadID is the dataset load id echoed on every response
	LoadID string
	// Observe receives every finished request, usually Metrics.ObserveHTTP
	Observe middleware.Observer
	// Slow marks requests at or above it as warnings in the access log
	Slow time.Duration
	// Timeout cancels API request contexts, 30s when zero
	Timeout time.Duration
	// Throttle caps in flight API requests, 0 disables it
	Throttle int
	// CORS origins, any origin when empty
	Origins []string
}

// RootStack is installed on the root router so every path gets
// correlation, panic recovery, access logging and the /health heartbeat
func RootStack(o StackOptions) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.RequestScope(o.LoadID),
		middleware.AccessLog(middleware.AccessLogOptions{Slow: o.Slow, Observe: o.Observe}),
		middleware.RecoverJSON,
		middleware.Heartbeat("/health"),
		middleware.StripSlashes(),
	}
}

// CommonStack is the per API middleware slice
// no-cache is left to modules since chart responses revalidate by ETag
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	timeout := o.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	mw := []func(http.Handler) http.Handler{
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.Origins}),
		middleware.Compress(flate.BestSpeed),
		middleware.Timeout(timeout),
	}
	if o.Throttle > 0 {
		mw = append(mw, middleware.Throttle(o.Throttle, o.Throttle*4, timeout))
	}
	return mw
}
