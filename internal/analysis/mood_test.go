package analysis

import (
	"strings"
	"testing"
)

// moodDays builds a newest-first daily sequence from moods.
func moodDays(moods ...string) []DailyMood {
	out := make([]DailyMood, len(moods))
	for i, m := range moods {
		out[i] = DailyMood{
			Date: testNow.AddDate(0, 0, -i).Format("2006-01-02"),
			Mood: m,
		}
	}
	return out
}

func TestDetectLowStreak(t *testing.T) {
	r := DefaultRules()

	cases := []struct {
		name       string
		moods      []string
		wantStreak string // substring expected in message, "" means no fire
		wantSev    string
	}{
		{"three low days", []string{"sad", "sad", "sad", "good"}, "3", "low"},
		{"streak stops at non-low", []string{"sad", "sad", "good", "sad", "sad"}, "", ""},
		{"five days escalates", []string{"sad", "anxious", "stressed", "overwhelmed", "sad", "good"}, "5", "medium"},
		{"unknown mood breaks streak", []string{"sad", "sad", "mystery", "sad"}, "", ""},
		{"too few samples", []string{"sad", "sad"}, "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DetectLowStreak(r, moodDays(tc.moods...))
			if tc.wantStreak == "" {
				if got != nil {
					t.Fatalf("want no alert, got %+v", got)
				}
				return
			}
			if got == nil {
				t.Fatal("want alert, got none")
			}
			if got.Type != "wellness_check" {
				t.Errorf("type = %q", got.Type)
			}
			if got.Severity != tc.wantSev {
				t.Errorf("severity = %q, want %q", got.Severity, tc.wantSev)
			}
			if !strings.Contains(got.Message, tc.wantStreak) {
				t.Errorf("message %q must embed streak count %s", got.Message, tc.wantStreak)
			}
		})
	}
}

func TestDetectLowStreak_ExactCount(t *testing.T) {
	r := DefaultRules()

	// 4 low days then a break, then more low days that must not count
	got := DetectLowStreak(r, moodDays("sad", "sad", "sad", "sad", "good", "sad", "sad"))
	if got == nil {
		t.Fatal("want alert")
	}
	if !strings.Contains(got.Message, "4 days") {
		t.Errorf("streak must be exactly 4, message %q", got.Message)
	}
}

func TestDetectStressSpike(t *testing.T) {
	r := DefaultRules()

	// recent window [stressed x3, good x2], prior window all good
	got := DetectStressSpike(r, moodDays(
		"stressed", "stressed", "stressed", "good", "good",
		"good", "good", "good", "good", "good",
	))
	if got == nil {
		t.Fatal("want stress spike alert")
	}
	if got.Type != "stress_pattern" || got.Severity != "medium" {
		t.Errorf("got type=%q severity=%q", got.Type, got.Severity)
	}
}

func TestDetectStressSpike_NoFire(t *testing.T) {
	r := DefaultRules()

	cases := []struct {
		name  string
		moods []string
	}{
		{"recent below floor", []string{
			"stressed", "stressed", "good", "good", "good",
			"good", "good", "good", "good", "good",
		}},
		{"prior just as stressed", []string{
			"stressed", "stressed", "stressed", "good", "good",
			"stressed", "stressed", "good", "good", "good",
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetectStressSpike(r, moodDays(tc.moods...)); got != nil {
				t.Errorf("want no alert, got %+v", got)
			}
		})
	}
}

func TestDetectVolatility(t *testing.T) {
	r := DefaultRules()

	// every adjacent pair differs over 7 entries: 6 changes
	got := DetectVolatility(r, moodDays("sad", "good", "sad", "good", "sad", "good", "sad"))
	if got == nil {
		t.Fatal("want volatility alert")
	}
	if got.Severity != "low" {
		t.Errorf("severity = %q", got.Severity)
	}
	if !strings.Contains(got.Message, "6") {
		t.Errorf("message %q must embed change count", got.Message)
	}
}

func TestDetectVolatility_MinSamples(t *testing.T) {
	r := DefaultRules()

	// 4 samples is below the evaluation minimum even if all differ
	if got := DetectVolatility(r, moodDays("sad", "good", "sad", "good")); got != nil {
		t.Errorf("want no alert below minimum samples, got %+v", got)
	}
}

func TestDetectVolatility_StableMood(t *testing.T) {
	r := DefaultRules()

	if got := DetectVolatility(r, moodDays("good", "good", "good", "good", "good", "good", "good")); got != nil {
		t.Errorf("want no alert for a stable week, got %+v", got)
	}
}
