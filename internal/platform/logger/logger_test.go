package logger

import (
	"bytes"
	"context"
	"testing"

	kit "wordtrends/internal/platform/testkit"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":    zerolog.TraceLevel,
		"debug":    zerolog.DebugLevel,
		" INFO ":   zerolog.InfoLevel,
		"warn":     zerolog.WarnLevel,
		"warning":  zerolog.WarnLevel,
		"error":    zerolog.ErrorLevel,
		"panic":    zerolog.PanicLevel,
		"":         zerolog.InfoLevel,
		"nonsense": zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestInitNamedAndRequestScope(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{
		Level:        "info",
		Format:       "console",
		Service:      "wordtrends-api",
		Writer:       &buf,
		StaticFields: map[string]string{"build": "test"},
	})

	Get().Info().Msg("root-msg")
	Named("dataset").Info().Msg("named-msg")

	ctx := WithRequest(context.Background(), "req-123", "load-abc")
	C(ctx).Info().Msg("ctx-msg")
	C(context.Background()).Info().Msg("ctx-empty")

	out := buf.String()
	kit.MustContain(t, out, "root-msg")
	kit.MustContain(t, out, "named-msg")
	kit.MustContain(t, out, "dataset")
	kit.MustContain(t, out, "ctx-msg")
	kit.MustContain(t, out, "request_id=")
	kit.MustContain(t, out, "req-123")
	kit.MustContain(t, out, "load_id=")
	kit.MustContain(t, out, "load-abc")
	kit.MustContain(t, out, "wordtrends-api")
	kit.MustContain(t, out, "build=")

	if got := RequestID(ctx); got != "req-123" {
		t.Fatalf("RequestID = %q", got)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "WARN")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_SERVICE", "wordtrends-query")
	t.Setenv("LOG_CALLER", "yes")
	t.Setenv("LOG_SAMPLE_EVERY", "5")

	opt := FromEnv()
	if opt.Level != "warn" || opt.Format != "json" || opt.Service != "wordtrends-query" {
		t.Fatalf("FromEnv = %+v", opt)
	}
	if !opt.WithCaller || opt.SampleEvery != 5 {
		t.Fatalf("FromEnv caller/sample = %+v", opt)
	}
}

func TestWithRequestSkipsEmpty(t *testing.T) {
	ctx := WithRequest(context.Background(), "", "")
	if RequestID(ctx) != "" {
		t.Fatalf("empty request id was stored")
	}
}
