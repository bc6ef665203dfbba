package net_test

import (
	"errors"
	"net/http"
	"testing"

	perr "wordtrends/internal/platform/errors"
	pnet "wordtrends/internal/platform/net"
)

func TestOK(t *testing.T) {
	status, w := pnet.OK(map[string]int{"x": 1}, "req-1")
	if status != http.StatusOK || w.StatusCode != http.StatusOK || w.Status != "OK" {
		t.Fatalf("status mismatch: %d %+v", status, w)
	}
	if w.RequestID != "req-1" || w.Data.(map[string]int)["x"] != 1 {
		t.Fatalf("wire mismatch: %+v", w)
	}
}

func TestNoContent(t *testing.T) {
	status, w := pnet.NoContent("req-3")
	if status != http.StatusNoContent || w.Data != nil {
		t.Fatalf("no content mismatch: %d %+v", status, w)
	}
}

func TestError(t *testing.T) {
	err := perr.WithField(perr.InvalidArgf("unknown metric %q", "zipf"), "metric")
	status, w := pnet.Error(err, "req-4")
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", status)
	}
	if w.Code != perr.ErrorCodeInvalidArgument || w.Reason != "invalid_argument" {
		t.Fatalf("code mismatch: %+v", w)
	}
	if w.Field != "metric" || w.Error != `unknown metric "zipf"` {
		t.Fatalf("message/field mismatch: %+v", w)
	}

	status, w = pnet.Error(errors.New("boom"), "")
	if status != http.StatusInternalServerError || w.Code != perr.ErrorCodeUnknown {
		t.Fatalf("foreign error mismatch: %d %+v", status, w)
	}

	status, _ = pnet.Error(nil, "")
	if status != http.StatusOK {
		t.Fatalf("nil error status = %d", status)
	}
}
