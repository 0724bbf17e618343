package analysis

import (
	"fmt"
	"strings"

	"pulsecheck/internal/wellness"
)

// ExtractLifestyle scans journal text for lifestyle indicators.
// Counting is per entry: an entry contributes at most once to a
// category regardless of how many of its keywords appear. Needs a
// minimum number of check-ins in the window to run at all.
func ExtractLifestyle(r Rules, checkins []wellness.CheckIn) []Candidate {
	if len(checkins) < r.LifestyleMinEntries {
		return nil
	}

	counts := make([]int, len(r.Lifestyle))
	for _, c := range checkins {
		if strings.TrimSpace(c.Journal) == "" {
			continue
		}
		entry := strings.ToLower(c.Journal)
		for i, rule := range r.Lifestyle {
			if matchesAny(entry, rule.Keywords) {
				counts[i]++
			}
		}
	}

	var out []Candidate
	for i, rule := range r.Lifestyle {
		if counts[i] < rule.MinEntries {
			continue
		}
		out = append(out, Candidate{
			Type:       rule.AlertType,
			Message:    fmt.Sprintf("Your journal mentions %s in %d recent entries.", rule.Label, counts[i]),
			Severity:   rule.Severity,
			Suggestion: rule.Suggestion,
			Categories: []string{rule.Name},
		})
	}
	return out
}
