// Package config reads typed settings from environment variables.
// Must* accessors panic through the logger when a value is missing or malformed;
// May* accessors fall back to a default and warn on malformed input
package config

import (
	"strconv"
	"strings"
	"time"

	"cryptokit/internal/platform/config/raw"
	"cryptokit/internal/platform/logger"
)

// Conf is a namespaced view over environment variables (e.g. "CORE_", "CORE_API_")
type Conf struct{ env raw.Conf }

// New creates a root Conf with no prefix
func New() Conf { return Conf{env: raw.New()} }

// Prefix creates a child Conf with an additional prefix, e.g. cfg.Prefix("DETECT_")
func (c Conf) Prefix(p string) Conf { return Conf{env: c.env.Prefix(p)} }

// Key returns the fully qualified variable name
func (c Conf) Key(k string) string { return c.env.Key(k) }

func (c Conf) must(key string) string {
	v, ok := c.env.Lookup(key)
	if !ok {
		logger.Get().Panic().Str("key", c.Key(key)).Msg("missing required env")
	}
	return v
}

func (c Conf) invalid(key, value, kind string) {
	logger.Get().Panic().Str("key", c.Key(key)).Str("value", value).Msgf("invalid %s value", kind)
}

func (c Conf) fallback(key, value, kind string) {
	logger.Get().Warn().Str("key", c.Key(key)).Str("value", value).Msgf("invalid %s; using default", kind)
}

// MustString returns the trimmed value or panics when it is missing
func (c Conf) MustString(key string) string { return c.must(key) }

// MustInt panics when the value is missing or not an int
func (c Conf) MustInt(key string) int {
	s := c.must(key)
	v, err := strconv.Atoi(s)
	if err != nil {
		c.invalid(key, s, "int")
	}
	return v
}

// MustFloat64 panics when the value is missing or not a float
func (c Conf) MustFloat64(key string) float64 {
	s := c.must(key)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		c.invalid(key, s, "float64")
	}
	return v
}

// MustPort returns a listen addr like ":4000" after checking 1..65535
func (c Conf) MustPort(key string) string {
	s := c.must(key)
	if _, ok := parsePort(s); !ok {
		c.invalid(key, s, "TCP port")
	}
	return ":" + s
}

// MayString returns the value or def when missing
func (c Conf) MayString(key, def string) string { return c.env.Get(key, def) }

// MayInt returns the value or def when missing or malformed
func (c Conf) MayInt(key string, def int) int {
	s, ok := c.env.Lookup(key)
	if !ok {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		c.fallback(key, s, "int")
		return def
	}
	return v
}

// MayFloat64 returns the value or def when missing or malformed
func (c Conf) MayFloat64(key string, def float64) float64 {
	s, ok := c.env.Lookup(key)
	if !ok {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		c.fallback(key, s, "float64")
		return def
	}
	return v
}

// MayBool returns the value or def when missing or malformed
func (c Conf) MayBool(key string, def bool) bool {
	s, ok := c.env.Lookup(key)
	if !ok {
		return def
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		c.fallback(key, s, "bool")
		return def
	}
	return v
}

// MayDuration returns the value or def when missing or malformed
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	s, ok := c.env.Lookup(key)
	if !ok {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		c.fallback(key, s, "duration")
		return def
	}
	return d
}

// MayPort returns ":<port>" or def when missing; a malformed port falls back to def
func (c Conf) MayPort(key, def string) string {
	s, ok := c.env.Lookup(key)
	if !ok {
		return def
	}
	s = strings.TrimPrefix(s, ":")
	if _, ok := parsePort(s); !ok {
		c.fallback(key, s, "TCP port")
		return def
	}
	return ":" + s
}

// MayCSV splits a comma separated value, dropping blanks; def when nothing remains
func (c Conf) MayCSV(key string, def []string) []string {
	s, ok := c.env.Lookup(key)
	if !ok {
		return def
	}
	var out []string
	for p := range strings.SplitSeq(s, ",") {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

func parsePort(s string) (int, bool) {
	p, err := strconv.Atoi(s)
	if err != nil || p < 1 || p > 65535 {
		return 0, false
	}
	return p, true
}
