package middleware

import (
	"net/http"

	"wordtrends/internal/platform/logger"
	pnet "wordtrends/internal/platform/net"
)

// RequestScope copies the chi request id and the dataset load id onto the
// context for both pnet and the logger, and echoes both as response headers
// it must run after RequestID
func RequestScope(loadID string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			reqID := pnet.RequestID(ctx)
			ctx = pnet.WithRequest(ctx, reqID, loadID)
			ctx = logger.WithRequest(ctx, reqID, loadID)
			if reqID != "" {
				w.Header().Set("X-Request-ID", reqID)
			}
			if loadID != "" {
				w.Header().Set("X-Dataset-Load", loadID)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
