package analysis

import (
	"testing"
	"time"

	"pulsecheck/internal/wellness"
)

func message(daysAgo int, hour int, content string) wellness.ChatMessage {
	return wellness.ChatMessage{
		UserID:    1,
		Role:      wellness.RoleUser,
		Content:   content,
		CreatedAt: testNow.AddDate(0, 0, -daysAgo).Truncate(24 * time.Hour).Add(time.Duration(hour) * time.Hour),
	}
}

func TestExtractSymptoms_DistinctDays(t *testing.T) {
	r := DefaultRules()

	// five headache mentions on one calendar day count once
	msgs := []wellness.ChatMessage{
		message(0, 8, "I have a headache"),
		message(0, 10, "headache again"),
		message(0, 12, "this headache won't quit"),
		message(0, 14, "still a headache"),
		message(0, 16, "headache headache"),
	}
	if got := ExtractSymptoms(r, msgs); len(got) != 0 {
		t.Fatalf("same-day repetition must not fire, got %+v", got)
	}
}

func TestExtractSymptoms_ThresholdAcrossDays(t *testing.T) {
	r := DefaultRules()

	msgs := []wellness.ChatMessage{
		message(0, 9, "woke up with a headache"),
		message(2, 9, "another Headache today"), // case-insensitive
		message(5, 9, "bad migraine"),
	}
	got := ExtractSymptoms(r, msgs)
	if len(got) != 1 {
		t.Fatalf("want exactly one candidate, got %+v", got)
	}
	c := got[0]
	if c.Type != "recurring_symptom" || c.Severity != "medium" {
		t.Errorf("got type=%q severity=%q", c.Type, c.Severity)
	}
	if len(c.Categories) != 1 || c.Categories[0] != "headache" {
		t.Errorf("categories = %v", c.Categories)
	}
}

func TestExtractSymptoms_IndependentCategories(t *testing.T) {
	r := DefaultRules()

	var msgs []wellness.ChatMessage
	for d := 0; d < 3; d++ {
		msgs = append(msgs, message(d, 9, "headache and I feel anxious"))
	}

	got := ExtractSymptoms(r, msgs)
	types := map[string]bool{}
	for _, c := range got {
		types[c.Type] = true
	}
	if !types["recurring_symptom"] || !types["mental_wellness"] {
		t.Errorf("both categories should fire independently, got %+v", got)
	}
}

func TestExtractSymptoms_FatigueNeedsFourDays(t *testing.T) {
	r := DefaultRules()

	msgs := []wellness.ChatMessage{
		message(0, 9, "so tired"),
		message(1, 9, "exhausted"),
		message(2, 9, "no energy at all"),
	}
	for _, c := range ExtractSymptoms(r, msgs) {
		if c.Type == "energy_pattern" {
			t.Fatalf("fatigue must need 4 distinct days, fired at 3: %+v", c)
		}
	}

	msgs = append(msgs, message(3, 9, "completely drained"))
	fired := false
	for _, c := range ExtractSymptoms(r, msgs) {
		if c.Type == "energy_pattern" {
			fired = true
		}
	}
	if !fired {
		t.Error("fatigue should fire at 4 distinct days")
	}
}
