package middleware

import (
	"net/http"
	"runtime/debug"

	perr "wordtrends/internal/platform/errors"
	"wordtrends/internal/platform/logger"
	pnet "wordtrends/internal/platform/net"
	phttp "wordtrends/internal/platform/net/http"
)

// RecoverJSON turns a panic into a JSON 500 envelope and logs the stack
// http.ErrAbortHandler is re-panicked so the server can abort the connection
func RecoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}
			logger.C(r.Context()).Error().
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			status, env := pnet.Error(perr.PanicErrf("panic recovered"), pnet.RequestID(r.Context()))
			phttp.JSON(w, status, env)
		}()
		next.ServeHTTP(w, r)
	})
}
