// Package config reads service settings from prefixed environment variables
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"wordtrends/internal/platform/logger"

	"github.com/rs/zerolog"
)

// Conf is a namespaced view over environment variables (e.g. "CORE_API_", "CORE_DATASET_")
type Conf struct{ prefix string }

// New creates a root Conf (no prefix)
func New() Conf { return Conf{} }

// Prefix creates a child Conf with an additional prefix
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// Key returns the fully-qualified env var name for k
func (c Conf) Key(k string) string { return c.key(k) }

func (c Conf) key(k string) string { return c.prefix + k }

// lookup returns the trimmed value and whether it is non-empty
func (c Conf) lookup(key string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(c.key(key)))
	return v, v != ""
}

// must returns the value or panics when it is missing
func (c Conf) must(key string) string {
	v, ok := c.lookup(key)
	if !ok {
		logger.Get().Panic().Str("key", c.key(key)).Msg("missing required env")
	}
	return v
}

func (c Conf) invalid(key, value, want string) {
	logger.Get().Panic().Str("key", c.key(key)).Str("value", value).Msg("invalid " + want)
}

func (c Conf) fallback(key, value string) *zerolog.Event {
	return logger.Get().Warn().Str("key", c.key(key)).Str("value", value)
}

// MustString panics if the given key is missing or empty
func (c Conf) MustString(key string) string { return c.must(key) }

// MustInt panics if the given key is missing or not an int
func (c Conf) MustInt(key string) int {
	s := c.must(key)
	v, err := strconv.Atoi(s)
	if err != nil {
		c.invalid(key, s, "int value")
	}
	return v
}

// MustBool panics if the given key is missing or not a bool
func (c Conf) MustBool(key string) bool {
	s := c.must(key)
	v, err := strconv.ParseBool(s)
	if err != nil {
		c.invalid(key, s, "bool value")
	}
	return v
}

// MustDuration panics if the given key is missing or not a duration
func (c Conf) MustDuration(key string) time.Duration {
	s := c.must(key)
	d, err := time.ParseDuration(s)
	if err != nil {
		c.invalid(key, s, "duration (e.g. 250ms, 2s, 1h)")
	}
	return d
}

// MayPort returns a listen addr like ":4000"; def is used when unset
// an out of range or non numeric port panics
func (c Conf) MayPort(key, def string) string {
	s, ok := c.lookup(key)
	if !ok {
		return def
	}
	s = strings.TrimPrefix(s, ":")
	p, err := strconv.Atoi(s)
	if err != nil || p < 1 || p > 65535 {
		c.invalid(key, s, "TCP port; expected 1..65535")
	}
	return ":" + s
}

// MayPath returns a filesystem path or def when unset
// a path that is set but does not exist panics
func (c Conf) MayPath(key, def string) string {
	s, ok := c.lookup(key)
	if !ok {
		return def
	}
	if _, err := os.Stat(s); err != nil {
		c.invalid(key, s, "path: "+err.Error())
	}
	return s
}

// MayString returns the value or def if missing/empty
func (c Conf) MayString(key, def string) string {
	if v, ok := c.lookup(key); ok {
		return v
	}
	return def
}

// MayInt returns the value or def; an invalid value logs and returns def
func (c Conf) MayInt(key string, def int) int {
	s, ok := c.lookup(key)
	if !ok {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	c.fallback(key, s).Int("default", def).Msg("invalid int; using default")
	return def
}

// MayBool returns the value or def; an invalid value logs and returns def
func (c Conf) MayBool(key string, def bool) bool {
	s, ok := c.lookup(key)
	if !ok {
		return def
	}
	if v, err := strconv.ParseBool(s); err == nil {
		return v
	}
	c.fallback(key, s).Bool("default", def).Msg("invalid bool; using default")
	return def
}

// MayDuration returns the value or def; an invalid value logs and returns def
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	s, ok := c.lookup(key)
	if !ok {
		return def
	}
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	c.fallback(key, s).Dur("default", def).Msg("invalid duration; using default")
	return def
}

// MayCSV splits a comma-separated value, dropping blanks; def if nothing remains
func (c Conf) MayCSV(key string, def []string) []string {
	s, ok := c.lookup(key)
	if !ok {
		return def
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// MayEnum returns the matching entry of allowed (case-insensitive), def when unset
// anything else panics
func (c Conf) MayEnum(key, def string, allowed ...string) string {
	v, ok := c.lookup(key)
	if !ok {
		return def
	}
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return a
		}
	}
	logger.Get().Panic().Str("key", c.key(key)).Str("value", v).Strs("allowed", allowed).Msg("invalid enum value")
	return ""
}
