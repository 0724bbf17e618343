package analysis

const suggestionSeparator = "\n\nSuggestion: "

// formatMessage builds the persisted alert body: the detector message
// plus, if present, the suggested action behind a fixed separator.
func formatMessage(c Candidate) string {
	if c.Suggestion == "" {
		return c.Message
	}
	return c.Message + suggestionSeparator + c.Suggestion
}
