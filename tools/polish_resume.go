package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/resumegenie/backend/models"
)

// ResumePolisher restructures and improves raw resume text
type ResumePolisher interface {
	PolishResume(ctx context.Context, rawText string) (*models.PolishResult, error)
}

// PolishResumeTool turns raw resume text into a structured, improved resume
type PolishResumeTool struct {
	polisher ResumePolisher
}

// NewPolishResumeTool creates a new resume polishing tool
func NewPolishResumeTool(polisher ResumePolisher) *PolishResumeTool {
	return &PolishResumeTool{
		polisher: polisher,
	}
}

func (t *PolishResumeTool) Name() string {
	return "polish_resume"
}

func (t *PolishResumeTool) Description() string {
	return `Restructure and improve raw resume text using AI.
Input should be the plain resume text (at least 50 characters).
Returns a structured resume with contact_info, summary, experience, education, skills and certifications,
plus the list of improvements made.`
}

func (t *PolishResumeTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"text": map[string]interface{}{
				"type":        "string",
				"description": "The raw resume text to polish",
				"minLength":   models.MinResumeTextLength,
			},
		},
		"required": []string{"text"},
	}
}

// PolishResumeInput represents the input for resume polishing
type PolishResumeInput struct {
	Text string `json:"text"`
}

func (t *PolishResumeTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var polishInput PolishResumeInput
	if err := json.Unmarshal(input, &polishInput); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	if len(strings.TrimSpace(polishInput.Text)) < models.MinResumeTextLength {
		return NewErrorResult(models.MsgResumeTextTooShort)
	}

	result, err := t.polisher.PolishResume(ctx, polishInput.Text)
	if err != nil {
		return NewErrorResult(fmt.Sprintf("Failed to polish resume: %v", err))
	}

	return NewSuccessResult(result)
}
