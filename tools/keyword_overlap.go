package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/resumegenie/backend/keywords"
	"github.com/resumegenie/backend/models"
)

// KeywordOverlapTool computes the deterministic keyword overlap without AI
type KeywordOverlapTool struct{}

// NewKeywordOverlapTool creates a new keyword overlap tool
func NewKeywordOverlapTool() *KeywordOverlapTool {
	return &KeywordOverlapTool{}
}

func (t *KeywordOverlapTool) Name() string {
	return "keyword_overlap"
}

func (t *KeywordOverlapTool) Description() string {
	return `Compute which job description keywords appear in a structured resume.
No AI is involved; the result is deterministic.
Returns total_job_keywords, matched_keywords, up to 10 missing_keywords_basic and keyword_match_score.`
}

func (t *KeywordOverlapTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"resume_content": map[string]interface{}{
				"type":        "object",
				"description": "Structured resume",
			},
			"job_description": map[string]interface{}{
				"type":        "string",
				"description": "The job posting text",
			},
		},
		"required": []string{"resume_content", "job_description"},
	}
}

func (t *KeywordOverlapTool) Execute(_ context.Context, input json.RawMessage) (json.RawMessage, error) {
	var overlapInput AnalyzeJobMatchInput
	if err := json.Unmarshal(input, &overlapInput); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	return NewSuccessResult(t.Compute(overlapInput.ResumeContent, overlapInput.JobDescription))
}

// Compute is a direct method to compute the overlap
func (t *KeywordOverlapTool) Compute(resume models.ResumeContent, jobDescription string) models.KeywordAnalysis {
	return keywords.ComputeOverlap(resume, jobDescription)
}
