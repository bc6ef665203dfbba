package dataset

import (
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"wordtrends/internal/platform/config"
	kit "wordtrends/internal/platform/testkit"
)

func TestFromConfigDefaults(t *testing.T) {
	s, err := FromConfig(config.New().Prefix("T_DSDEF_"))
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	if !reflect.DeepEqual(s.Manifest.Granularities(), []Granularity{Monthly, Yearly}) {
		t.Fatalf("granularities = %v", s.Manifest.Granularities())
	}
	if s.HTTPTimeout != 30*time.Second || s.Load.Concurrency != 0 {
		t.Fatalf("settings = %+v", s)
	}
	if _, ok := s.Load.Opener.(*SourceOpener); !ok {
		t.Fatalf("opener = %T", s.Load.Opener)
	}
}

func TestFromConfigManifestAndVariant(t *testing.T) {
	dir := t.TempDir()
	path := kit.WriteFile(t, dir, "manifest.yaml", `
categories: [A, B]
default_category: B
sources:
  monthly: {freq: mf.csv, prop: mp.csv, rank: mr.csv}
  yearly: {freq: yf.csv, prop: yp.csv, rank: yr.csv}
`)
	t.Setenv("T_DS_MANIFEST", path)
	t.Setenv("T_DS_MONTHLY_ONLY", "true")
	t.Setenv("T_DS_HTTP_TIMEOUT", "5s")
	t.Setenv("T_DS_CONCURRENCY", "-3")

	s, err := FromConfig(config.New().Prefix("T_DS_"))
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	if s.Manifest.DefaultCategory != "B" || len(s.Manifest.Categories) != 2 {
		t.Fatalf("manifest = %+v", s.Manifest)
	}
	if !reflect.DeepEqual(s.Manifest.Granularities(), []Granularity{Monthly}) {
		t.Fatalf("monthly only ignored: %v", s.Manifest.Granularities())
	}
	if got := s.Manifest.resolve("mf.csv"); got != filepath.Join(dir, "mf.csv") {
		t.Fatalf("relative source resolved to %q", got)
	}
	if s.HTTPTimeout != 5*time.Second || s.Load.Concurrency != 0 {
		t.Fatalf("settings = %+v", s)
	}
}

func TestFromConfigBadManifest(t *testing.T) {
	path := kit.WriteFile(t, t.TempDir(), "bad.yaml", "sources: [\n")
	t.Setenv("T_DSBAD_MANIFEST", path)
	if _, err := FromConfig(config.New().Prefix("T_DSBAD_")); err == nil {
		t.Fatalf("expected manifest error")
	}
}
