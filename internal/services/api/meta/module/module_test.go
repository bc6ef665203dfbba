package module

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"wordtrends/internal/core/dataset"
	"wordtrends/internal/core/dataset/datasettest"
	"wordtrends/internal/modkit"
	phttp "wordtrends/internal/platform/net/http"
	kit "wordtrends/internal/platform/testkit"
	metahttp "wordtrends/internal/services/api/meta/http"
)

type envelope[T any] struct {
	StatusCode int    `json:"status_code"`
	Reason     string `json:"reason"`
	Data       T      `json:"data"`
}

func router(t *testing.T, ds *dataset.Dataset) http.Handler {
	t.Helper()
	cr := chi.NewRouter()
	New(modkit.Deps{Dataset: ds}).MountRoutes(phttp.AdaptChi(cr))
	return cr
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestMeta_Loaded(t *testing.T) {
	ds := datasettest.Fixture(t)
	h := router(t, ds)

	for _, path := range []string{"/meta/health", "/meta/version", "/meta/service"} {
		rec := get(h, path)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s = %d", path, rec.Code)
		}
		if rec.Header().Get("Cache-Control") == "" {
			t.Fatalf("%s should not be cacheable", path)
		}
		kit.MustContain(t, rec.Body.String(), ServiceName)
	}

	rec := get(h, "/meta/ready")
	ready := kit.DecodeJSON[envelope[metahttp.ReadyResponse]](t, rec.Body.Bytes())
	if rec.Code != http.StatusOK || ready.Data.Status != "ok" || ready.Data.LoadID != ds.ID().String() || ready.Data.Tables != 6 {
		t.Fatalf("ready = %d %+v", rec.Code, ready.Data)
	}
	if ready.Data.LoadedAt != "2024-02-13T02:32:00Z" {
		t.Fatalf("loaded at = %q", ready.Data.LoadedAt)
	}

	rec = get(h, "/meta/dataset")
	sum := kit.DecodeJSON[envelope[dataset.Summary]](t, rec.Body.Bytes())
	if rec.Code != http.StatusOK || len(sum.Data.Tables) != 6 || sum.Data.DefaultCategory != "Conservative" {
		t.Fatalf("dataset = %d %+v", rec.Code, sum.Data)
	}
}

func TestMeta_NotLoaded(t *testing.T) {
	h := router(t, nil)

	if rec := get(h, "/meta/health"); rec.Code != http.StatusOK {
		t.Fatalf("health should not depend on the dataset, got %d", rec.Code)
	}
	for _, path := range []string{"/meta/ready", "/meta/dataset"} {
		rec := get(h, path)
		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("%s = %d, want 503", path, rec.Code)
		}
		env := kit.DecodeJSON[envelope[any]](t, rec.Body.Bytes())
		if env.Reason != "unavailable" {
			t.Fatalf("%s reason = %q", path, env.Reason)
		}
	}
}

func TestMeta_Module(t *testing.T) {
	m := New(modkit.Deps{}, modkit.WithName("health"))
	if m.Name() != "health" || m.Ports() != nil {
		t.Fatalf("module = %q %v", m.Name(), m.Ports())
	}
}
