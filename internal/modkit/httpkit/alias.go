// Package httpkit re-exports the platform http helpers modules need
// modules import this instead of internal/platform/net/http directly
package httpkit

import (
	"net/http"

	phttp "wordtrends/internal/platform/net/http"
)

type (
	// Envelope is the JSON response envelope
	Envelope = phttp.Envelope

	// Response is what return-style handlers produce
	Response = phttp.Response

	// Blob is a raw response body such as a rendered image
	Blob = phttp.Blob

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is the platform router seam
	Router = phttp.Router
)

// OK returns a 200 response
func OK(data any) Response { return phttp.OK(data) }

// NoContent returns a 204 response
func NoContent() Response { return phttp.NoContent() }

// Error returns a response that maps err to status and envelope
func Error(err error) Response { return phttp.Error(err) }

// Bytes returns a 200 response carrying b verbatim
func Bytes(b Blob) Response { return phttp.Bytes(b) }

// Handle adapts a Response-returning function
func Handle(fn func(*http.Request) Response) Handler { return phttp.Handle(fn) }
