package config

import (
	"testing"
	"time"

	kit "cryptokit/internal/platform/testkit"
)

func TestPrefixKey(t *testing.T) {
	c := New().Prefix("CORE_").Prefix("DETECT_")
	if got := c.Key("THRESHOLD"); got != "CORE_DETECT_THRESHOLD" {
		t.Fatalf("Key() = %q", got)
	}
}

func TestMustAccessors(t *testing.T) {
	c := New().Prefix("CFGM_")
	t.Setenv("CFGM_NAME", "  cryptokit ")
	t.Setenv("CFGM_WORKERS", " 8 ")
	t.Setenv("CFGM_THRESHOLD", "0.85")
	t.Setenv("CFGM_PORT", "4000")
	t.Setenv("CFGM_BAD", "nope")
	t.Setenv("CFGM_HIGHPORT", "70000")

	if got := c.MustString("NAME"); got != "cryptokit" {
		t.Fatalf("MustString = %q", got)
	}
	if got := c.MustInt("WORKERS"); got != 8 {
		t.Fatalf("MustInt = %d", got)
	}
	if got := c.MustFloat64("THRESHOLD"); got != 0.85 {
		t.Fatalf("MustFloat64 = %v", got)
	}
	if got := c.MustPort("PORT"); got != ":4000" {
		t.Fatalf("MustPort = %q", got)
	}

	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })
	kit.MustPanic(t, func() { _ = c.MustInt("BAD") })
	kit.MustPanic(t, func() { _ = c.MustFloat64("BAD") })
	kit.MustPanic(t, func() { _ = c.MustPort("HIGHPORT") })
}

func TestMayAccessors(t *testing.T) {
	c := New().Prefix("CFGY_")
	t.Setenv("CFGY_LIMIT", "12")
	t.Setenv("CFGY_THRESHOLD", "0.5")
	t.Setenv("CFGY_ON", "true")
	t.Setenv("CFGY_WAIT", "250ms")
	t.Setenv("CFGY_PORT", ":8080")
	t.Setenv("CFGY_ORIGINS", " https://a.example , ,https://b.example ")
	t.Setenv("CFGY_COMMAS", " , , ")
	t.Setenv("CFGY_BAD", "x")

	if got := c.MayString("MISSING", "def"); got != "def" {
		t.Fatalf("MayString default = %q", got)
	}
	if got := c.MayInt("LIMIT", 1); got != 12 {
		t.Fatalf("MayInt = %d", got)
	}
	if got := c.MayInt("BAD", 3); got != 3 {
		t.Fatalf("MayInt malformed = %d", got)
	}
	if got := c.MayFloat64("THRESHOLD", 0.85); got != 0.5 {
		t.Fatalf("MayFloat64 = %v", got)
	}
	if got := c.MayFloat64("BAD", 0.85); got != 0.85 {
		t.Fatalf("MayFloat64 malformed = %v", got)
	}
	if !c.MayBool("ON", false) || !c.MayBool("BAD", true) {
		t.Fatalf("MayBool mismatch")
	}
	if got := c.MayDuration("WAIT", time.Second); got != 250*time.Millisecond {
		t.Fatalf("MayDuration = %v", got)
	}
	if got := c.MayDuration("BAD", time.Second); got != time.Second {
		t.Fatalf("MayDuration malformed = %v", got)
	}
	if got := c.MayPort("PORT", ":4000"); got != ":8080" {
		t.Fatalf("MayPort = %q", got)
	}
	if got := c.MayPort("BAD", ":4000"); got != ":4000" {
		t.Fatalf("MayPort malformed = %q", got)
	}
	if got := c.MayPort("MISSING", ":4000"); got != ":4000" {
		t.Fatalf("MayPort default = %q", got)
	}

	origins := c.MayCSV("ORIGINS", nil)
	if len(origins) != 2 || origins[0] != "https://a.example" || origins[1] != "https://b.example" {
		t.Fatalf("MayCSV = %v", origins)
	}
	if got := c.MayCSV("COMMAS", []string{"*"}); len(got) != 1 || got[0] != "*" {
		t.Fatalf("MayCSV blanks = %v", got)
	}
}
