package http

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "wordtrends/internal/platform/errors"
)

type inDTO struct {
	N int `json:"n" validate:"max=100"`
}

func TestJSONHandler(t *testing.T) {
	t.Parallel()

	h := JSONHandler(func(_ *http.Request, in inDTO) (any, error) {
		if in.N == 13 {
			return nil, errors.New("boom")
		}
		return map[string]int{"doubled": in.N * 2}, nil
	})
	do := func(body string) *httptest.ResponseRecorder {
		rr := httptest.NewRecorder()
		h(rr, httptest.NewRequest(http.MethodPost, "/x", bytes.NewBufferString(body)))
		return rr
	}

	if rr := do(`{"n":7}`); rr.Code != 200 || !strings.Contains(rr.Body.String(), `"doubled":14`) {
		t.Fatalf("success => %d %q", rr.Code, rr.Body.String())
	}
	if rr := do(`{`); rr.Code != http.StatusBadRequest {
		t.Fatalf("bad json => %d", rr.Code)
	}
	if rr := do(`{"n":500}`); rr.Code != http.StatusBadRequest || !strings.Contains(rr.Body.String(), "n must be at most 100") {
		t.Fatalf("validation => %d %q", rr.Code, rr.Body.String())
	}
	if rr := do(`{"n":13}`); rr.Code != 500 || !strings.Contains(rr.Body.String(), "boom") {
		t.Fatalf("handler error => %d %q", rr.Code, rr.Body.String())
	}
}

func TestJSONHandlerNoBody(t *testing.T) {
	t.Parallel()

	h := JSONHandlerNoBody(func(*http.Request) (any, error) {
		return nil, perr.NotFoundf("nothing here")
	})
	rr := httptest.NewRecorder()
	h(rr, httptest.NewRequest(http.MethodGet, "/x", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("code = %d, want 404", rr.Code)
	}
}

func TestQueryHandler(t *testing.T) {
	t.Parallel()

	parse := func(r *http.Request) (inDTO, error) {
		if r.URL.Query().Get("n") == "x" {
			return inDTO{}, perr.InvalidArgf("n must be a number")
		}
		if r.URL.Query().Get("n") == "big" {
			return inDTO{N: 1000}, nil
		}
		return inDTO{N: 2}, nil
	}
	h := QueryHandler(parse, func(_ *http.Request, in inDTO) Response { return OK(in.N) })

	cases := map[string]int{"/q": 200, "/q?n=x": http.StatusUnprocessableEntity, "/q?n=big": http.StatusBadRequest}
	for path, want := range cases {
		rr := httptest.NewRecorder()
		h(rr, httptest.NewRequest(http.MethodGet, path, nil))
		if rr.Code != want {
			t.Fatalf("%s => %d, want %d", path, rr.Code, want)
		}
	}
}
