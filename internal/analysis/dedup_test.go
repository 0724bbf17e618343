package analysis

import (
	"strings"
	"testing"

	"pulsecheck/internal/wellness"
)

func TestDedupKey_Prefix(t *testing.T) {
	long := strings.Repeat("a", 60)
	k := dedupKey("wellness_check", long)
	want := "wellness_check:" + strings.Repeat("a", 50)
	if k != want {
		t.Errorf("key = %q, want %q", k, want)
	}

	short := dedupKey("wellness_check", "hi")
	if short != "wellness_check:hi" {
		t.Errorf("short key = %q", short)
	}
}

func TestFilterSeen_StripsStoredSuggestion(t *testing.T) {
	c := Candidate{
		Type:       "wellness_check",
		Message:    "You've logged a low mood 3 days in a row.",
		Severity:   "low",
		Suggestion: "Consider reaching out to someone you trust.",
	}

	// the stored alert carries the appended suggestion; the key must
	// still match the candidate's pre-append message
	stored := wellness.Alert{
		AlertType: c.Type,
		Message:   formatMessage(c),
	}

	got := FilterSeen([]Candidate{c}, []wellness.Alert{stored})
	if len(got) != 0 {
		t.Errorf("candidate matching a stored alert must be filtered, got %+v", got)
	}
}

func TestFilterSeen_KeepsUnseenAndOrder(t *testing.T) {
	a := Candidate{Type: "stress_pattern", Message: "stress message"}
	b := Candidate{Type: "sleep_pattern", Message: "sleep message"}
	c := Candidate{Type: "check_in_reminder", Message: "reminder message"}

	existing := []wellness.Alert{{AlertType: "sleep_pattern", Message: "sleep message"}}

	got := FilterSeen([]Candidate{a, b, c}, existing)
	if len(got) != 2 {
		t.Fatalf("want 2 survivors, got %+v", got)
	}
	if got[0].Type != "stress_pattern" || got[1].Type != "check_in_reminder" {
		t.Errorf("order must be preserved, got %+v", got)
	}
}

func TestFilterSeen_SameTypeDifferentMessage(t *testing.T) {
	c := Candidate{Type: "wellness_check", Message: "You've logged a low mood 4 days in a row."}
	existing := []wellness.Alert{{AlertType: "wellness_check", Message: "You've logged a low mood 3 days in a row."}}

	if got := FilterSeen([]Candidate{c}, existing); len(got) != 1 {
		t.Errorf("different message prefix is a different alert, got %+v", got)
	}
}
