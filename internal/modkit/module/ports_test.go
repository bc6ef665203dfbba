package module

import (
	"testing"

	phttp "wordtrends/internal/platform/net/http"
	kit "wordtrends/internal/platform/testkit"
)

type labeler interface{ Label() string }

type label string

func (l label) Label() string { return string(l) }

type fakeModule struct {
	name  string
	ports any
}

func (m fakeModule) Name() string             { return m.name }
func (m fakeModule) Ports() any               { return m.ports }
func (m fakeModule) MountRoutes(phttp.Router) {}

var _ Module = fakeModule{}

func TestPortsOf(t *testing.T) {
	t.Parallel()

	type bundle struct {
		Count int
		L     labeler
	}
	type hidden struct {
		l labeler
	}

	cases := []struct {
		name  string
		ports any
		want  string
		ok    bool
	}{
		{"nil ports", nil, "", false},
		{"direct", label("freq"), "freq", true},
		{"struct field", bundle{Count: 1, L: label("rank")}, "rank", true},
		{"pointer to struct", &bundle{L: label("prop")}, "prop", true},
		{"unexported field ignored", hidden{l: label("x")}, "", false},
		{"no match", 42, "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := PortsOf[labeler](fakeModule{name: "trends", ports: tc.ports})
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if ok && got.Label() != tc.want {
				t.Fatalf("Label = %q, want %q", got.Label(), tc.want)
			}
		})
	}
}

func TestMustPortsOf(t *testing.T) {
	t.Parallel()

	got := MustPortsOf[labeler](fakeModule{name: "trends", ports: label("freq")})
	if got.Label() != "freq" {
		t.Fatalf("Label = %q", got.Label())
	}

	defer func() {
		r := recover()
		msg, _ := r.(string)
		kit.MustContain(t, msg, "requested port not found on module meta")
	}()
	MustPortsOf[labeler](fakeModule{name: "meta"})
}
