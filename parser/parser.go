// Package parser turns free-form model output into the structured resume and
// match analysis shapes. Malformed output degrades to a fixed fallback value
// instead of failing.
package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/resumegenie/backend/logging"
	"github.com/resumegenie/backend/models"
	"github.com/resumegenie/backend/schemas"
)

// Status tells whether a parse produced the model's own content or a fallback
type Status string

const (
	// StatusOK means a JSON object was found and normalized
	StatusOK Status = "ok"
	// StatusDegraded means the fallback payload was returned
	StatusDegraded Status = "degraded"
)

// ErrNoJSON is reported when the text has no {...} candidate
var ErrNoJSON = errors.New("no JSON found in response")

// Degraded payload values
const (
	DegradedSummary           = "Unable to parse improved content"
	DegradedImprovement       = "AI processing encountered formatting issues"
	DegradedAssessment        = "Analysis parsing failed"
	DegradedSuggestion        = "Please review the job description and update your resume accordingly"
	DegradedAnalysisErrorText = "Failed to parse detailed analysis"
)

// Result is the outcome of parsing one model response.
// Err carries the reason for a degraded result and is nil otherwise.
type Result struct {
	Data   map[string]any
	Status Status
	Err    error
}

// Degraded reports whether the fallback payload was used
func (r Result) Degraded() bool {
	return r.Status == StatusDegraded
}

// Resume returns the data as a structured resume
func (r Result) Resume() models.ResumeContent {
	return models.ResumeContent(r.Data)
}

// Analysis returns the data as a match analysis
func (r Result) Analysis() models.MatchAnalysis {
	return models.MatchAnalysis(r.Data)
}

// ExtractJSON returns the substring from the first '{' to the last '}'
// of the trimmed text, inclusive.
func ExtractJSON(text string) (string, error) {
	text = strings.TrimSpace(text)

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return "", ErrNoJSON
	}

	return text[start : end+1], nil
}

// decodeObject extracts and decodes the JSON object candidate. Text around
// the outermost braces, such as an enclosing array, is ignored.
func decodeObject(text string) (map[string]any, error) {
	candidate, err := ExtractJSON(text)
	if err != nil {
		return nil, err
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(candidate), &obj); err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}
	return obj, nil
}

// ParsePolishResponse normalizes the model's answer to a polish prompt.
//
// Missing required fields are filled with an empty list, including
// contact_info and summary. A field present with a null value is kept as is.
func ParsePolishResponse(text string) Result {
	logger := logging.Component("parser")

	obj, err := decodeObject(text)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to parse polish response, using fallback")
		return Result{Data: degradedResume(strings.TrimSpace(text)), Status: StatusDegraded, Err: err}
	}

	for _, field := range models.RequiredResumeFields {
		if _, ok := obj[field]; !ok {
			obj[field] = []any{}
		}
	}

	if err := schemas.Validate(schemas.KindResume, obj); err != nil {
		logger.Warn().Err(err).Msg("Polished resume does not match the resume schema")
	}

	return Result{Data: obj, Status: StatusOK}
}

// ParseAnalysisResponse normalizes the model's answer to an analysis prompt.
// A missing match_score defaults to 50.
func ParseAnalysisResponse(text string) Result {
	logger := logging.Component("parser")

	obj, err := decodeObject(text)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to parse analysis response, using fallback")
		return Result{Data: degradedAnalysis(), Status: StatusDegraded, Err: err}
	}

	if _, ok := obj[models.FieldMatchScore]; !ok {
		obj[models.FieldMatchScore] = models.DefaultMatchScore
	}

	if err := schemas.Validate(schemas.KindAnalysis, obj); err != nil {
		logger.Warn().Err(err).Msg("Match analysis does not match the analysis schema")
	}

	return Result{Data: obj, Status: StatusOK}
}

func degradedResume(raw string) map[string]any {
	return map[string]any{
		models.FieldContactInfo:      map[string]any{},
		models.FieldSummary:          DegradedSummary,
		models.FieldExperience:       []any{},
		models.FieldEducation:        []any{},
		models.FieldSkills:           []any{},
		models.FieldCertifications:   []any{},
		models.FieldRawImprovedText:  raw,
		models.FieldImprovementsMade: []any{DegradedImprovement},
	}
}

func degradedAnalysis() map[string]any {
	return map[string]any{
		models.FieldMatchScore:        models.DefaultMatchScore,
		models.FieldOverallAssessment: DegradedAssessment,
		models.FieldStrengths:         []any{},
		models.FieldMissingKeywords:   []any{},
		models.FieldSuggestions:       []any{DegradedSuggestion},
		models.FieldAnalysisError:     DegradedAnalysisErrorText,
	}
}
