package analysis

// DailyMood is one calendar day's representative mood sample.
// Date is the UTC day formatted as 2006-01-02; day boundaries are
// taken from the stored timestamp's UTC date everywhere in this
// package, so date strings compare and sort correctly as text.
type DailyMood struct {
	Date string
	Mood string
}

// Candidate is a detector finding before dedup and persistence.
// Message is the body without the suggestion appended; the emitter
// appends Suggestion at write time.
type Candidate struct {
	Type       string
	Message    string
	Severity   string
	Suggestion string
	Categories []string
}

// Pattern-group statuses reported in the run summary.
const (
	StatusAnalyzed         = "analyzed"
	StatusInsufficientData = "insufficient_data"
)

// Summary is the orchestrator's response for one run.
type Summary struct {
	AlertsGenerated int               `json:"alerts_generated"`
	Patterns        map[string]string `json:"patterns"`
}
