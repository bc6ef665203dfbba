package swaggerkit

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	phttp "wordtrends/internal/platform/net/http"
	kit "wordtrends/internal/platform/testkit"
)

const doc = `{"swagger":"2.0","info":{"title":"wordtrends","version":"1"},
"paths":{"/trends/options":{"get":{"responses":{"200":{"description":"ok"}}}}}}`

func mounted(t *testing.T) http.Handler {
	t.Helper()
	cr := chi.NewRouter()
	Mount(phttp.AdaptChi(cr), true)
	return cr
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestDocJSON_Normalizes(t *testing.T) {
	kit.Swap(t, &docReader, func() (string, error) { return doc, nil })
	t.Setenv("CORE_API_DOCS_TITLE_SUFFIX", "(dev)")

	var mutated bool
	kit.Swap(t, &mutators, nil)
	Register(func(spec map[string]any) { mutated = true })
	Register(nil)

	rec := get(mounted(t), "/api/docs/doc.json")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	spec := kit.DecodeJSON[map[string]any](t, rec.Body.Bytes())

	if spec["openapi"] != "3.0.3" || spec["swagger"] != nil {
		t.Fatalf("version not lifted: %v %v", spec["openapi"], spec["swagger"])
	}
	if info := spec["info"].(map[string]any); info["title"] != "wordtrends (dev)" {
		t.Fatalf("title = %v", info["title"])
	}
	op := spec["paths"].(map[string]any)["/trends/options"].(map[string]any)["get"].(map[string]any)
	resps := op["responses"].(map[string]any)
	for _, code := range []string{"200", "400", "500"} {
		if _, ok := resps[code]; !ok {
			t.Fatalf("missing %s response", code)
		}
	}
	schemas := spec["components"].(map[string]any)["schemas"].(map[string]any)
	if _, ok := schemas["ErrorResponse"]; !ok {
		t.Fatal("ErrorResponse schema missing")
	}
	if !mutated {
		t.Fatal("registered mutator was not applied")
	}
	if rec.Header().Get("Cache-Control") != "no-store" {
		t.Fatalf("cache control = %q", rec.Header().Get("Cache-Control"))
	}
}

func TestDocJSON_Failures(t *testing.T) {
	h := mounted(t)

	kit.Swap(t, &docReader, func() (string, error) { return "", errors.New("no doc") })
	if rec := get(h, "/api/docs/doc.json"); rec.Code != http.StatusNotFound {
		t.Fatalf("unregistered status = %d", rec.Code)
	}

	kit.Swap(t, &docReader, func() (string, error) { return "{", nil })
	if rec := get(h, "/api/docs/doc.json"); rec.Code != http.StatusInternalServerError {
		t.Fatalf("invalid json status = %d", rec.Code)
	}
}

func TestMount(t *testing.T) {
	rec := get(mounted(t), "/api/docs")
	if rec.Code != http.StatusPermanentRedirect || rec.Header().Get("Location") != "/api/docs/" {
		t.Fatalf("redirect = %d %q", rec.Code, rec.Header().Get("Location"))
	}

	cr := chi.NewRouter()
	Mount(phttp.AdaptChi(cr), false)
	if rec := get(cr, "/api/docs/doc.json"); rec.Code != http.StatusNotFound {
		t.Fatalf("disabled mount served %d", rec.Code)
	}
}
