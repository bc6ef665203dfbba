package modkit

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/go-chi/chi/v5"

	phttp "wordtrends/internal/platform/net/http"
	kit "wordtrends/internal/platform/testkit"
)

func tag(name string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("X-Trace", name)
			next.ServeHTTP(w, r)
		})
	}
}

func TestBuild_Defaults(t *testing.T) {
	t.Parallel()

	b := Build()
	if b.Name != "" || b.Prefix != "" || b.Ports != nil || len(b.Mw) != 0 {
		t.Fatalf("unexpected defaults: %+v", b)
	}
	kit.MustNotPanic(t, func() { b.Register(nil) })
}

func TestBuild_OptionsApplyInOrder(t *testing.T) {
	t.Parallel()

	type ports struct{ N int }
	mw := []func(http.Handler) http.Handler{tag("a"), tag("b")}

	b := Build(
		WithName("trends"),
		WithPrefix("/trends"),
		WithMiddlewares(mw...),
		WithMiddlewares(tag("c")),
		WithPorts(ports{N: 1}),
		WithPorts(ports{N: 2}),
	)
	if b.Name != "trends" || b.Prefix != "/trends" {
		t.Fatalf("name/prefix = %q %q", b.Name, b.Prefix)
	}
	if got, ok := b.Ports.(ports); !ok || got.N != 2 {
		t.Fatalf("ports = %#v, last WithPorts should win", b.Ports)
	}
	if len(b.Mw) != 3 {
		t.Fatalf("mw = %d, want 3", len(b.Mw))
	}

	first := reflect.ValueOf(b.Mw[0]).Pointer()
	mw[0] = tag("z")
	if reflect.ValueOf(b.Mw[0]).Pointer() != first {
		t.Fatal("Built.Mw must not alias the caller's slice")
	}
}

func TestBuilt_Mount(t *testing.T) {
	t.Parallel()

	b := Build(
		WithPrefix("meta/"),
		WithMiddlewares(tag("a"), tag("b")),
		WithRegister(func(r phttp.Router) {
			phttp.GetJSON(r, "/extra", func(*http.Request) (any, error) { return "extra", nil })
		}),
	)

	cr := chi.NewRouter()
	b.Mount(phttp.AdaptChi(cr), func(r phttp.Router) {
		phttp.GetJSON(r, "/ping", func(*http.Request) (any, error) { return "pong", nil })
	})

	for _, path := range []string{"/meta/ping", "/meta/extra"} {
		rec := httptest.NewRecorder()
		cr.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status = %d", path, rec.Code)
		}
		if got := rec.Header().Values("X-Trace"); !reflect.DeepEqual(got, []string{"a", "b"}) {
			t.Fatalf("%s: middleware order = %v", path, got)
		}
	}

	kit.MustPanic(t, func() { Build().Mount(phttp.AdaptChi(chi.NewRouter()), nil) })
}
