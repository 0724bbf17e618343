package analysis

import (
	"fmt"
	"strings"

	"pulsecheck/internal/wellness"
)

// ExtractSymptoms scans chat message text for symptom keywords and
// fires per category once its distinct-day count reaches threshold.
// Five mentions in one day count as one day, so same-day repetition
// alone never fires.
func ExtractSymptoms(r Rules, msgs []wellness.ChatMessage) []Candidate {
	days := make([]map[string]struct{}, len(r.Symptoms))
	for i := range days {
		days[i] = map[string]struct{}{}
	}

	for _, m := range msgs {
		content := strings.ToLower(m.Content)
		day := dayKey(m.CreatedAt)
		for i, rule := range r.Symptoms {
			if matchesAny(content, rule.Keywords) {
				days[i][day] = struct{}{}
			}
		}
	}

	var out []Candidate
	for i, rule := range r.Symptoms {
		n := len(days[i])
		if n < rule.MinDays {
			continue
		}
		out = append(out, Candidate{
			Type:       rule.AlertType,
			Message:    fmt.Sprintf("You've mentioned %s on %d different days recently.", rule.Label, n),
			Severity:   rule.Severity,
			Suggestion: rule.Suggestion,
			Categories: []string{rule.Name},
		})
	}
	return out
}

func matchesAny(content string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(content, kw) {
			return true
		}
	}
	return false
}
