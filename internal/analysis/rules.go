package analysis

// SymptomRule maps a keyword category over chat messages to an alert.
// Counting is distinct-day: repeated mentions within one calendar day
// count once.
type SymptomRule struct {
	Name       string
	Label      string
	Keywords   []string
	MinDays    int
	AlertType  string
	Severity   string
	Suggestion string
}

// LifestyleRule maps a keyword category over journal entries to an
// alert. Counting is entry-level: a journal entry contributes at most
// once per category no matter how many keywords hit.
type LifestyleRule struct {
	Name       string
	Label      string
	Keywords   []string
	MinEntries int
	AlertType  string
	Severity   string
	Suggestion string
}

// Rules is the immutable configuration every detector runs against.
// Tests inject reduced variants; production uses DefaultRules.
type Rules struct {
	LookbackDays int
	DedupDays    int
	MaxRecords   int

	LowMoods    []string
	StressMoods []string

	MinMoodSamples    int
	LowStreakMin      int
	LowStreakEscalate int

	SpikeWindow    int
	SpikeMinRecent int

	VolatilityWindow     int
	VolatilityMinSamples int
	VolatilityMinChanges int

	InactiveAfterDays int
	DormantAfterDays  int

	LifestyleMinEntries int

	Symptoms  []SymptomRule
	Lifestyle []LifestyleRule
}

func DefaultRules() Rules {
	return Rules{
		LookbackDays: 14,
		DedupDays:    7,
		MaxRecords:   100,

		LowMoods:    []string{"sad", "anxious", "stressed", "overwhelmed"},
		StressMoods: []string{"stressed", "anxious", "overwhelmed", "angry"},

		MinMoodSamples:    3,
		LowStreakMin:      3,
		LowStreakEscalate: 5,

		SpikeWindow:    5,
		SpikeMinRecent: 3,

		VolatilityWindow:     7,
		VolatilityMinSamples: 5,
		VolatilityMinChanges: 5,

		InactiveAfterDays: 5,
		DormantAfterDays:  14,

		LifestyleMinEntries: 5,

		Symptoms: []SymptomRule{
			{
				Name:       "headache",
				Label:      "headaches",
				Keywords:   []string{"headache", "migraine", "head hurts", "head is pounding"},
				MinDays:    3,
				AlertType:  "recurring_symptom",
				Severity:   "medium",
				Suggestion: "Recurring headaches are worth mentioning to a clinician.",
			},
			{
				Name:       "sleep",
				Label:      "sleep trouble",
				Keywords:   []string{"can't sleep", "cant sleep", "insomnia", "barely slept", "trouble sleeping", "lying awake"},
				MinDays:    3,
				AlertType:  "sleep_pattern",
				Severity:   "low",
				Suggestion: "Try keeping a consistent bedtime for the next few nights.",
			},
			{
				Name:       "fatigue",
				Label:      "low energy",
				Keywords:   []string{"tired", "exhausted", "no energy", "fatigued", "drained", "worn out"},
				MinDays:    4,
				AlertType:  "energy_pattern",
				Severity:   "medium",
				Suggestion: "Persistent fatigue can have many causes; consider a rest day.",
			},
			{
				Name:       "digestive",
				Label:      "stomach issues",
				Keywords:   []string{"stomach ache", "nausea", "nauseous", "bloated", "cramps", "indigestion"},
				MinDays:    3,
				AlertType:  "recurring_symptom",
				Severity:   "medium",
				Suggestion: "Note what you ate on the days this came up.",
			},
			{
				Name:       "pain",
				Label:      "pain",
				Keywords:   []string{"back pain", "neck pain", "sore", "aching", "it hurts"},
				MinDays:    3,
				AlertType:  "recurring_symptom",
				Severity:   "medium",
				Suggestion: "Recurring pain is worth mentioning to a clinician.",
			},
			{
				Name:       "anxiety",
				Label:      "anxious thoughts",
				Keywords:   []string{"anxious", "panic", "worried", "on edge", "overthinking", "racing thoughts"},
				MinDays:    3,
				AlertType:  "mental_wellness",
				Severity:   "medium",
				Suggestion: "A short breathing exercise can help in the moment.",
			},
		},

		Lifestyle: []LifestyleRule{
			{
				Name:       "social_isolation",
				Label:      "spending a lot of time alone",
				Keywords:   []string{"alone", "lonely", "isolated", "no one to talk", "by myself"},
				MinEntries: 3,
				AlertType:  "social_wellness",
				Severity:   "low",
				Suggestion: "Reaching out to one person this week can make a difference.",
			},
			{
				Name:       "work_stress",
				Label:      "work pressure",
				Keywords:   []string{"deadline", "overtime", "work stress", "my boss", "workload", "burned out"},
				MinEntries: 3,
				AlertType:  "work_life_balance",
				Severity:   "medium",
				Suggestion: "Try blocking out one evening this week with no work.",
			},
			{
				Name:       "poor_diet",
				Label:      "irregular eating",
				Keywords:   []string{"junk food", "fast food", "skipped breakfast", "skipped lunch", "didn't eat", "takeout again"},
				MinEntries: 3,
				AlertType:  "nutrition_pattern",
				Severity:   "low",
				Suggestion: "Planning one proper meal a day is a good starting point.",
			},
			{
				Name:       "lack_of_exercise",
				Label:      "low activity",
				Keywords:   []string{"no exercise", "haven't worked out", "sat all day", "didn't move", "sedentary"},
				MinEntries: 3,
				AlertType:  "activity_pattern",
				Severity:   "low",
				Suggestion: "A ten minute walk counts.",
			},
		},
	}
}

func inSet(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
