package module

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"wordtrends/internal/core/dataset/datasettest"
	"wordtrends/internal/core/series"
	"wordtrends/internal/modkit"
	"wordtrends/internal/modkit/module"
	"wordtrends/internal/platform/config"
	phttp "wordtrends/internal/platform/net/http"
	kit "wordtrends/internal/platform/testkit"
	"wordtrends/internal/services/api/trends/domain"
)

func TestFromConfig(t *testing.T) {
	cfg := config.New().Prefix("T_TRENDS_")

	o := FromConfig(cfg)
	if o.Policy != series.ZeroFill || o.CacheSize != 256 {
		t.Fatalf("defaults = %+v", o)
	}

	t.Setenv("T_TRENDS_TRENDS_MISSING", "ABSENT")
	t.Setenv("T_TRENDS_TRENDS_CHART_CACHE", "-3")
	o = FromConfig(cfg)
	if o.Policy != series.MarkAbsent || o.CacheSize != 0 {
		t.Fatalf("overrides = %+v", o)
	}

	t.Setenv("T_TRENDS_TRENDS_MISSING", "interpolate")
	kit.MustPanic(t, func() { FromConfig(cfg) })
}

func TestModule_MountsAndExposesPorts(t *testing.T) {
	deps := modkit.Deps{Dataset: datasettest.Fixture(t)}
	m := New(deps, Options{CacheSize: 2})

	if m.Name() != "trends" {
		t.Fatalf("name = %q", m.Name())
	}
	svc := module.MustPortsOf[domain.ServicePort](m)
	if svc.Options(t.Context()).DefaultCategory != "Conservative" {
		t.Fatal("port does not reach the service")
	}

	cr := chi.NewRouter()
	m.MountRoutes(phttp.AdaptChi(cr))
	rec := httptest.NewRecorder()
	cr.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/trends/options", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /trends/options = %d", rec.Code)
	}
}

func TestModule_PanicsWithoutDataset(t *testing.T) {
	kit.MustPanic(t, func() { New(modkit.Deps{}, Options{}) })
}
