package analysis

import (
	"strings"

	"pulsecheck/internal/wellness"
)

const dedupPrefixLen = 50

// dedupKey identifies an alert by its type plus the first 50
// characters of its message body, pre-suggestion-append.
func dedupKey(alertType, message string) string {
	r := []rune(message)
	if len(r) > dedupPrefixLen {
		r = r[:dedupPrefixLen]
	}
	return alertType + ":" + string(r)
}

// baseMessage strips the suggestion the emitter appended, so keys
// built from stored alerts line up with candidate keys.
func baseMessage(stored string) string {
	if i := strings.Index(stored, suggestionSeparator); i >= 0 {
		return stored[:i]
	}
	return stored
}

// FilterSeen drops candidates whose key matches an alert already
// persisted within the dedup window. Order is preserved.
func FilterSeen(candidates []Candidate, existing []wellness.Alert) []Candidate {
	seen := make(map[string]struct{}, len(existing))
	for _, a := range existing {
		seen[dedupKey(a.AlertType, baseMessage(a.Message))] = struct{}{}
	}

	out := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := seen[dedupKey(c.Type, c.Message)]; ok {
			continue
		}
		out = append(out, c)
	}
	return out
}
