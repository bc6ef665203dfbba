package httpkit

import (
	"net/http"

	phttp "wordtrends/internal/platform/net/http"
)

// GetJSON mounts a body-less GET that answers with an envelope
func GetJSON(r Router, path string, h func(*http.Request) (any, error)) {
	phttp.GetJSON(r, path, h)
}

// PostJSON mounts a POST that decodes and validates a T body
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	phttp.PostJSON(r, path, h)
}

// GetQuery mounts GET and HEAD for a handler whose input is parsed from the query string
func GetQuery[T any](r Router, path string, parse func(*http.Request) (T, error), h func(*http.Request, T) Response) {
	phttp.GetQuery(r, path, parse, h)
}
