package models

import "encoding/json"

// MatchAnalysis is the AI-produced job match analysis merged with the
// deterministic keyword analysis.
type MatchAnalysis map[string]any

// Analysis keys
const (
	FieldMatchScore        = "match_score"
	FieldOverallAssessment = "overall_assessment"
	FieldStrengths         = "strengths"
	FieldMissingKeywords   = "missing_keywords"
	FieldSuggestions       = "suggestions"
	FieldAnalysisError     = "error"
	FieldKeywordAnalysis   = "keyword_analysis"
)

// DefaultMatchScore is used when the model omits match_score
const DefaultMatchScore = 50

// WithKeywordAnalysis stores the deterministic block under keyword_analysis.
// That key belongs to the keyword analyzer; AI keys are left untouched.
func (m MatchAnalysis) WithKeywordAnalysis(ka KeywordAnalysis) MatchAnalysis {
	m[FieldKeywordAnalysis] = ka
	return m
}

// KeywordAnalysis is the deterministic keyword overlap signal
type KeywordAnalysis struct {
	TotalJobKeywords     int      `json:"total_job_keywords"`
	MatchedKeywords      int      `json:"matched_keywords"`
	MissingKeywordsBasic []string `json:"missing_keywords_basic"`
	KeywordMatchScore    float64  `json:"keyword_match_score"`

	// Error replaces every other field when the analysis failed
	Error string `json:"error,omitempty"`
}

// MarshalJSON emits only {"error": ...} for a failed analysis.
func (k KeywordAnalysis) MarshalJSON() ([]byte, error) {
	if k.Error != "" {
		return json.Marshal(map[string]string{"error": k.Error})
	}

	type plain KeywordAnalysis
	p := plain(k)
	if p.MissingKeywordsBasic == nil {
		p.MissingKeywordsBasic = []string{}
	}
	return json.Marshal(p)
}
