package analysis

import (
	"testing"

	"pulsecheck/internal/wellness"
)

func journaled(daysAgo int, journal string) wellness.CheckIn {
	c := checkin(daysAgo, 12, "okay")
	c.Journal = journal
	return c
}

func TestExtractLifestyle_MinEntriesGate(t *testing.T) {
	r := DefaultRules()

	// four check-ins is below the gate even with strong signals
	in := []wellness.CheckIn{
		journaled(0, "felt so lonely today"),
		journaled(1, "still alone"),
		journaled(2, "isolated again"),
		journaled(3, "by myself all day"),
	}
	if got := ExtractLifestyle(r, in); got != nil {
		t.Fatalf("must not run below %d check-ins, got %+v", r.LifestyleMinEntries, got)
	}
}

func TestExtractLifestyle_EntryLevelCounting(t *testing.T) {
	r := DefaultRules()

	// one entry with three matching keywords counts once, so only two
	// qualifying entries total: below threshold
	in := []wellness.CheckIn{
		journaled(0, "alone, lonely, isolated"),
		journaled(1, "spent the evening by myself"),
		journaled(2, "nice day"),
		journaled(3, "went to the park"),
		journaled(4, "cooked dinner"),
	}
	for _, c := range ExtractLifestyle(r, in) {
		if c.Type == "social_wellness" {
			t.Fatalf("multi-keyword entry must count once, got %+v", c)
		}
	}
}

func TestExtractLifestyle_WorkStressFires(t *testing.T) {
	r := DefaultRules()

	in := []wellness.CheckIn{
		journaled(0, "another deadline at work"),
		journaled(1, "overtime again tonight"),
		journaled(2, "my boss keeps piling it on"),
		journaled(3, "quiet day"),
		{UserID: 1, Mood: "okay", CreatedAt: testNow.AddDate(0, 0, -4)}, // no journal
	}
	got := ExtractLifestyle(r, in)
	if len(got) != 1 {
		t.Fatalf("want one candidate, got %+v", got)
	}
	if got[0].Type != "work_life_balance" || got[0].Severity != "medium" {
		t.Errorf("got type=%q severity=%q", got[0].Type, got[0].Severity)
	}
}
