package analysis

import (
	"sort"
	"time"

	"pulsecheck/internal/wellness"
)

func dayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// DailyMoods collapses check-ins into one mood sample per UTC calendar
// day. Input is newest-first, so the first check-in seen for a day is
// that day's most recent one and wins. Output is sorted newest day
// first with exactly one entry per distinct day.
func DailyMoods(checkins []wellness.CheckIn) []DailyMood {
	seen := map[string]struct{}{}
	out := make([]DailyMood, 0, len(checkins))

	for _, c := range checkins {
		k := dayKey(c.CreatedAt)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, DailyMood{Date: k, Mood: c.Mood})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}
