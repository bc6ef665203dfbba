package http

import (
	"net/http"

	"wordtrends/internal/platform/net/http/bind"
)

// JSONHandler decodes and validates a T body, then wraps fn's result in an envelope
func JSONHandler[T any](fn func(*http.Request, T) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		in, err := bind.ParseJSON[T](r)
		if err != nil {
			return Error(err)
		}
		return result(fn(r, in))
	})
}

// JSONHandlerNoBody calls fn without reading a body and wraps its result
func JSONHandlerNoBody(fn func(*http.Request) (any, error)) Handler {
	return Handle(func(r *http.Request) Response { return result(fn(r)) })
}

// QueryHandler builds a T from the request with parse, validates it and calls fn
func QueryHandler[T any](parse func(*http.Request) (T, error), fn func(*http.Request, T) Response) Handler {
	return Handle(func(r *http.Request) Response {
		in, err := parse(r)
		if err != nil {
			return Error(err)
		}
		if err := bind.Validate(in); err != nil {
			return Error(err)
		}
		return fn(r, in)
	})
}

func result(out any, err error) Response {
	if err != nil {
		return Error(err)
	}
	return OK(out)
}
