package ratelimit

import (
	"testing"
	"time"
)

func TestWindowKey(t *testing.T) {
	start := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	got := windowKey(42, "wellness_scan", start)
	want := "ratelimit:42:wellness_scan:1749988800"
	if got != want {
		t.Errorf("key = %q, want %q", got, want)
	}
}

func TestWindowKey_StableWithinWindow(t *testing.T) {
	window := time.Hour
	a := time.Date(2025, 6, 15, 12, 5, 0, 0, time.UTC).Truncate(window)
	b := time.Date(2025, 6, 15, 12, 55, 0, 0, time.UTC).Truncate(window)
	if windowKey(1, "wellness_scan", a) != windowKey(1, "wellness_scan", b) {
		t.Error("same window must yield the same key")
	}

	c := time.Date(2025, 6, 15, 13, 5, 0, 0, time.UTC).Truncate(window)
	if windowKey(1, "wellness_scan", a) == windowKey(1, "wellness_scan", c) {
		t.Error("next window must yield a different key")
	}
}

func TestDecisionString(t *testing.T) {
	cases := map[Decision]string{
		Allowed:     "allowed",
		Denied:      "denied",
		CheckFailed: "check_failed",
	}
	for d, want := range cases {
		if d.String() != want {
			t.Errorf("%d.String() = %q, want %q", d, d.String(), want)
		}
	}
}
