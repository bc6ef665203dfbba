package http

import "net/http"

// GetJSON mounts a pure JSON handler for GET
func GetJSON(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, JSONHandlerNoBody(h))
}

// PostJSON mounts a pure JSON handler for POST
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, JSONHandler(h))
}

// GetQuery mounts a GET (and HEAD) handler whose input comes from the query string
func GetQuery[T any](r Router, path string, parse func(*http.Request) (T, error), h func(*http.Request, T) Response) {
	hf := QueryHandler(parse, h)
	r.Get(path, hf)
	r.Head(path, hf)
}
