package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	kit "wordtrends/internal/platform/testkit"
)

func TestPrefixAndKey(t *testing.T) {
	api := New().Prefix("CORE_").Prefix("API_")
	if got := api.Key("PORT"); got != "CORE_API_PORT" {
		t.Fatalf("Key() = %q, want CORE_API_PORT", got)
	}
}

func TestMust(t *testing.T) {
	c := New().Prefix("WT_")
	t.Setenv("WT_NAME", "  wordtrends ")
	t.Setenv("WT_WORKERS", " 8 ")
	t.Setenv("WT_ON", "true")
	t.Setenv("WT_TIMEOUT", "250ms")
	t.Setenv("WT_BAD", "x")

	if got := c.MustString("NAME"); got != "wordtrends" {
		t.Fatalf("MustString = %q", got)
	}
	if got := c.MustInt("WORKERS"); got != 8 {
		t.Fatalf("MustInt = %d", got)
	}
	if !c.MustBool("ON") {
		t.Fatalf("MustBool = false")
	}
	if got := c.MustDuration("TIMEOUT"); got != 250*time.Millisecond {
		t.Fatalf("MustDuration = %v", got)
	}

	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })
	kit.MustPanic(t, func() { _ = c.MustInt("BAD") })
	kit.MustPanic(t, func() { _ = c.MustBool("BAD") })
	kit.MustPanic(t, func() { _ = c.MustDuration("BAD") })
}

func TestMayPort(t *testing.T) {
	c := New().Prefix("P_")
	if got := c.MayPort("MISSING", ":4000"); got != ":4000" {
		t.Fatalf("default = %q", got)
	}
	t.Setenv("P_PORT", "8080")
	if got := c.MayPort("PORT", ":4000"); got != ":8080" {
		t.Fatalf("MayPort = %q", got)
	}
	t.Setenv("P_COLON", ":9090")
	if got := c.MayPort("COLON", ":4000"); got != ":9090" {
		t.Fatalf("MayPort with colon = %q", got)
	}
	t.Setenv("P_OOB", "70000")
	kit.MustPanic(t, func() { _ = c.MayPort("OOB", ":4000") })
}

func TestMayPath(t *testing.T) {
	c := New().Prefix("M_")
	p := filepath.Join(t.TempDir(), "manifest.yaml")
	if err := os.WriteFile(p, []byte("sources: {}\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if got := c.MayPath("MISSING", ""); got != "" {
		t.Fatalf("default = %q", got)
	}
	t.Setenv("M_FILE", p)
	if got := c.MayPath("FILE", ""); got != p {
		t.Fatalf("MayPath = %q, want %q", got, p)
	}
	t.Setenv("M_GONE", filepath.Join(t.TempDir(), "nope.yaml"))
	kit.MustPanic(t, func() { _ = c.MayPath("GONE", "") })
}

func TestMayFallbacks(t *testing.T) {
	c := New().Prefix("F_")
	t.Setenv("F_INT", " 7 ")
	t.Setenv("F_BOOL", "true")
	t.Setenv("F_DUR", "150ms")
	t.Setenv("F_BAD", "nope")

	if got := c.MayString("MISSING", "def"); got != "def" {
		t.Fatalf("MayString default = %q", got)
	}
	if got := c.MayInt("INT", 0); got != 7 {
		t.Fatalf("MayInt = %d", got)
	}
	if got := c.MayInt("BAD", 3); got != 3 {
		t.Fatalf("MayInt bad = %d, want default", got)
	}
	if !c.MayBool("BOOL", false) || c.MayBool("BAD", false) {
		t.Fatalf("MayBool mismatch")
	}
	if got := c.MayDuration("DUR", time.Second); got != 150*time.Millisecond {
		t.Fatalf("MayDuration = %v", got)
	}
	if got := c.MayDuration("BAD", time.Minute); got != time.Minute {
		t.Fatalf("MayDuration bad = %v, want default", got)
	}
}

func TestMayCSV(t *testing.T) {
	c := New().Prefix("CSV_")
	t.Setenv("CSV_VALS", " Liberal, politics , ,democrats ,, ")
	got := c.MayCSV("VALS", nil)
	want := []string{"Liberal", "politics", "democrats"}
	if len(got) != len(want) {
		t.Fatalf("MayCSV = %#v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("MayCSV[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	t.Setenv("CSV_BLANK", " , ,")
	if got := c.MayCSV("BLANK", []string{"fallback"}); len(got) != 1 || got[0] != "fallback" {
		t.Fatalf("MayCSV blank = %#v", got)
	}
}

func TestMayEnum(t *testing.T) {
	c := New().Prefix("E_")
	if got := c.MayEnum("MISSING", "zero", "zero", "absent"); got != "zero" {
		t.Fatalf("MayEnum default = %q", got)
	}
	t.Setenv("E_POLICY", "Absent")
	if got := c.MayEnum("POLICY", "zero", "zero", "absent"); got != "absent" {
		t.Fatalf("MayEnum = %q, want absent", got)
	}
	t.Setenv("E_BAD", "drop")
	kit.MustPanic(t, func() { _ = c.MayEnum("BAD", "zero", "zero", "absent") })
}
