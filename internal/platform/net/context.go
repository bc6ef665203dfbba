// Package net holds transport-neutral request helpers shared by HTTP and the CLI
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type ctxKey string

const keyLoadID ctxKey = "load_id"

// WithRequest stores the request id (where chi's RequestID middleware keeps it)
// and the id of the dataset load serving the request
func WithRequest(ctx context.Context, reqID, loadID string) context.Context {
	if reqID != "" {
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	if loadID != "" {
		ctx = context.WithValue(ctx, keyLoadID, loadID)
	}
	return ctx
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }

// LoadID returns the dataset load id on the context if present
func LoadID(ctx context.Context) string {
	s, _ := ctx.Value(keyLoadID).(string)
	return s
}
