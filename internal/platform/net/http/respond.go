// Package http holds the platform router seam, server and response helpers
package http

import (
	"encoding/json"
	stdhttp "net/http"
	"strconv"
	"strings"

	"wordtrends/internal/platform/logger"
	pnet "wordtrends/internal/platform/net"
)

// Envelope is the response body of every JSON endpoint
type Envelope = pnet.Wire

// JSON writes v as application/json with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// RespondOK writes a 200 envelope with data
func RespondOK(w stdhttp.ResponseWriter, r *stdhttp.Request, data any) {
	status, env := pnet.OK(data, pnet.RequestID(r.Context()))
	JSON(w, status, env)
}

// RespondError maps err to a status and envelope and writes it
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	status, env := pnet.Error(err, pnet.RequestID(r.Context()))
	if status >= stdhttp.StatusInternalServerError {
		logger.C(r.Context()).Error().Err(err).Int("status", status).Msg("request failed")
	}
	JSON(w, status, env)
}

// Blob is a non-JSON body such as a rendered chart
type Blob struct {
	ContentType  string
	ETag         string
	CacheControl string
	Data         []byte
}

// Response is what return-style handlers produce
type Response struct {
	Status int
	Body   any
	Blob   *Blob
	Header stdhttp.Header
}

// Handle adapts a Response-returning handler to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, r)
	}
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}
	if err, ok := resp.Body.(error); ok && err != nil {
		RespondError(w, r, err)
		return
	}

	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	switch {
	case status == stdhttp.StatusNoContent:
		w.WriteHeader(status)
	case resp.Blob != nil:
		resp.Blob.write(w, r, status)
	default:
		_, env := pnet.OK(resp.Body, pnet.RequestID(r.Context()))
		env.StatusCode, env.Status = status, stdhttp.StatusText(status)
		JSON(w, status, env)
	}
}

func (b *Blob) write(w stdhttp.ResponseWriter, r *stdhttp.Request, status int) {
	h := w.Header()
	if b.ETag != "" {
		h.Set("ETag", b.ETag)
		if etagMatch(r.Header.Get("If-None-Match"), b.ETag) {
			w.WriteHeader(stdhttp.StatusNotModified)
			return
		}
	}
	if b.CacheControl != "" {
		h.Set("Cache-Control", b.CacheControl)
	}
	h.Set("Content-Type", b.ContentType)
	h.Set("Content-Length", strconv.Itoa(len(b.Data)))
	w.WriteHeader(status)
	if r.Method != stdhttp.MethodHead {
		_, _ = w.Write(b.Data)
	}
}

// etagMatch implements the If-None-Match list comparison (weak, "*" matches all)
func etagMatch(header, etag string) bool {
	if header == "" {
		return false
	}
	want := strings.TrimPrefix(etag, "W/")
	for _, t := range strings.Split(header, ",") {
		t = strings.TrimSpace(t)
		if t == "*" || strings.TrimPrefix(t, "W/") == want {
			return true
		}
	}
	return false
}

// OK returns a 200 response
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// NoContent returns a 204 response
func NoContent() Response { return Response{Status: stdhttp.StatusNoContent} }

// Error returns a response that maps the error to status and envelope
func Error(err error) Response { return Response{Body: err} }

// Bytes returns a 200 response with a raw body
func Bytes(b Blob) Response { return Response{Status: stdhttp.StatusOK, Blob: &b} }
