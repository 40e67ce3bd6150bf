package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/resumegenie/backend/models"
)

// MatchAnalyzer compares a structured resume with a job description
type MatchAnalyzer interface {
	AnalyzeMatch(ctx context.Context, resume models.ResumeContent, jobDescription string) (models.MatchAnalysis, error)
}

// AnalyzeJobMatchTool scores how well a resume fits a job posting
type AnalyzeJobMatchTool struct {
	analyzer MatchAnalyzer
}

// NewAnalyzeJobMatchTool creates a new job match analysis tool
func NewAnalyzeJobMatchTool(analyzer MatchAnalyzer) *AnalyzeJobMatchTool {
	return &AnalyzeJobMatchTool{
		analyzer: analyzer,
	}
}

func (t *AnalyzeJobMatchTool) Name() string {
	return "analyze_job_match"
}

func (t *AnalyzeJobMatchTool) Description() string {
	return `Analyze how well a structured resume matches a job description.
Input should include the structured resume and the full job posting (at least 100 characters).
Returns a match score (0-100), strengths, missing keywords and skills, suggestions,
per-area scores and a deterministic keyword_analysis block.`
}

func (t *AnalyzeJobMatchTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"resume_content": map[string]interface{}{
				"type":        "object",
				"description": "Structured resume, as returned by polish_resume",
			},
			"job_description": map[string]interface{}{
				"type":        "string",
				"description": "The job posting text",
				"minLength":   models.MinJobDescriptionLength,
			},
		},
		"required": []string{"resume_content", "job_description"},
	}
}

// AnalyzeJobMatchInput represents the input for job match analysis
type AnalyzeJobMatchInput struct {
	ResumeContent  models.ResumeContent `json:"resume_content"`
	JobDescription string               `json:"job_description"`
}

func (t *AnalyzeJobMatchTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var analyzeInput AnalyzeJobMatchInput
	if err := json.Unmarshal(input, &analyzeInput); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	if len(analyzeInput.ResumeContent) == 0 {
		return NewErrorResult(models.MsgResumeContentRequired)
	}
	if len(strings.TrimSpace(analyzeInput.JobDescription)) < models.MinJobDescriptionLength {
		return NewErrorResult(models.MsgJobDescriptionTooShort)
	}

	analysis, err := t.analyzer.AnalyzeMatch(ctx, analyzeInput.ResumeContent, analyzeInput.JobDescription)
	if err != nil {
		return NewErrorResult(fmt.Sprintf("Failed to analyze job match: %v", err))
	}

	return NewSuccessResult(analysis)
}
