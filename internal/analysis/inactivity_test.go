package analysis

import (
	"strings"
	"testing"
	"time"

	"pulsecheck/internal/wellness"
)

func TestDetectInactivity_Band(t *testing.T) {
	r := DefaultRules()

	cases := []struct {
		daysAgo  int
		wantFire bool
	}{
		{0, false},
		{3, false}, // below band
		{5, true},  // band start
		{6, true},
		{13, true},
		{14, false}, // dormant, different case
		{20, false},
	}

	for _, tc := range cases {
		last := wellness.CheckIn{UserID: 1, Mood: "okay", CreatedAt: testNow.Add(-time.Duration(tc.daysAgo*24) * time.Hour)}
		got := DetectInactivity(r, []wellness.CheckIn{last}, testNow)
		if tc.wantFire && got == nil {
			t.Errorf("days=%d: want alert, got none", tc.daysAgo)
		}
		if !tc.wantFire && got != nil {
			t.Errorf("days=%d: want no alert, got %+v", tc.daysAgo, got)
		}
		if got != nil {
			if got.Type != "check_in_reminder" {
				t.Errorf("type = %q", got.Type)
			}
			if !strings.Contains(got.Message, "6") && tc.daysAgo == 6 {
				t.Errorf("message %q must embed the day count", got.Message)
			}
		}
	}
}

func TestDetectInactivity_NoCheckins(t *testing.T) {
	r := DefaultRules()
	if got := DetectInactivity(r, nil, testNow); got != nil {
		t.Errorf("no check-ins must not trigger a reminder, got %+v", got)
	}
}
