package analysis

import (
	"fmt"
	"time"

	"pulsecheck/internal/wellness"
)

// noCheckins stands in for "never checked in"; it sits far above the
// dormant cutoff so the reminder never fires for brand-new or
// abandoned accounts.
const noCheckins = 1 << 20

// DaysSinceLast returns whole days since the newest check-in.
// Input is newest-first.
func DaysSinceLast(checkins []wellness.CheckIn, now time.Time) int {
	if len(checkins) == 0 {
		return noCheckins
	}
	return int(now.Sub(checkins[0].CreatedAt).Hours() / 24)
}

// DetectInactivity fires only inside the mid-range band: recent gaps
// need no nudge, and long-dormant users should not be spammed.
func DetectInactivity(r Rules, checkins []wellness.CheckIn, now time.Time) *Candidate {
	days := DaysSinceLast(checkins, now)
	if days < r.InactiveAfterDays || days >= r.DormantAfterDays {
		return nil
	}
	return &Candidate{
		Type:       "check_in_reminder",
		Message:    fmt.Sprintf("It's been %d days since your last check-in.", days),
		Severity:   "low",
		Suggestion: "A quick mood check-in takes less than a minute.",
		Categories: []string{"activity"},
	}
}
