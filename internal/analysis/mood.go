package analysis

import "fmt"

// DetectLowStreak counts consecutive low-mood days from the most
// recent day backwards. A mood outside the low set, including values
// outside the vocabulary entirely, breaks the streak.
func DetectLowStreak(r Rules, days []DailyMood) *Candidate {
	if len(days) < r.MinMoodSamples {
		return nil
	}

	streak := 0
	for _, d := range days {
		if !inSet(r.LowMoods, d.Mood) {
			break
		}
		streak++
	}
	if streak < r.LowStreakMin {
		return nil
	}

	sev := "low"
	if streak >= r.LowStreakEscalate {
		sev = "medium"
	}
	return &Candidate{
		Type:       "wellness_check",
		Message:    fmt.Sprintf("You've logged a low mood %d days in a row.", streak),
		Severity:   sev,
		Suggestion: "Consider reaching out to someone you trust, or taking a short walk outside.",
		Categories: []string{"mood"},
	}
}

// DetectStressSpike compares stress-mood counts in the most recent
// window against the window before it. Fires only when the recent
// count clears the floor and strictly exceeds prior+1.
func DetectStressSpike(r Rules, days []DailyMood) *Candidate {
	if len(days) < r.MinMoodSamples {
		return nil
	}

	recent := countStress(r, window(days, 0, r.SpikeWindow))
	prior := countStress(r, window(days, r.SpikeWindow, 2*r.SpikeWindow))

	if recent < r.SpikeMinRecent || recent <= prior+1 {
		return nil
	}
	return &Candidate{
		Type:       "stress_pattern",
		Message:    fmt.Sprintf("Stress-related moods came up %d times in your last %d check-in days, up from %d before that.", recent, r.SpikeWindow, prior),
		Severity:   "medium",
		Suggestion: "It may help to look at what changed recently and plan some downtime.",
		Categories: []string{"mood"},
	}
}

// DetectVolatility counts adjacent-day mood changes over the most
// recent window. Needs a few samples to say anything meaningful.
func DetectVolatility(r Rules, days []DailyMood) *Candidate {
	if len(days) < r.MinMoodSamples {
		return nil
	}

	w := window(days, 0, r.VolatilityWindow)
	if len(w) < r.VolatilityMinSamples {
		return nil
	}

	changes := 0
	for i := 1; i < len(w); i++ {
		if w[i].Mood != w[i-1].Mood {
			changes++
		}
	}
	if changes < r.VolatilityMinChanges {
		return nil
	}
	return &Candidate{
		Type:       "mood_volatility",
		Message:    fmt.Sprintf("Your mood changed %d times over your last %d check-in days.", changes, len(w)),
		Severity:   "low",
		Suggestion: "Jotting down what was happening on the swings can help spot triggers.",
		Categories: []string{"mood"},
	}
}

func countStress(r Rules, days []DailyMood) int {
	n := 0
	for _, d := range days {
		if inSet(r.StressMoods, d.Mood) {
			n++
		}
	}
	return n
}

func window(days []DailyMood, from, to int) []DailyMood {
	if from >= len(days) {
		return nil
	}
	if to > len(days) {
		to = len(days)
	}
	return days[from:to]
}
