package types

// NoSuggestion fills a suggestion slot when the keyword table has no value
// for it, keeping suggestion slices aligned with FlaggedWords.
const NoSuggestion = "-"

// ScanResult is the scoring outcome for one title. FlaggedWords and the three
// suggestion slices are positionally aligned. Values are never mutated after
// they are returned.
type ScanResult struct {
	Title                  string   `json:"title"`
	FlaggedWords           []string `json:"flagged_words"`
	ContextReasons         []string `json:"context_reasons"`
	Categories             []string `json:"categories"`
	SafetyScore            int      `json:"safety_score"`
	ConfidenceScore        int      `json:"confidence_score"`
	LessHarshSuggestions   []string `json:"less_harsh_suggestions"`
	AlternativeSuggestions []string `json:"alternative_suggestions"`
	OppositeSuggestions    []string `json:"opposite_suggestions"`
}

// Flagged reports whether anything lowered the score.
func (r ScanResult) Flagged() bool {
	return r.SafetyScore < 100 || len(r.FlaggedWords) > 0
}
