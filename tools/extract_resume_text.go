package tools

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// TextExtractor pulls plain text out of an uploaded resume document
type TextExtractor interface {
	ExtractResumeText(filename string, content []byte) (string, error)
}

// ExtractResumeTextTool extracts text from a base64-encoded resume PDF
type ExtractResumeTextTool struct {
	extractor TextExtractor
}

// NewExtractResumeTextTool creates a new resume text extraction tool
func NewExtractResumeTextTool(extractor TextExtractor) *ExtractResumeTextTool {
	return &ExtractResumeTextTool{
		extractor: extractor,
	}
}

func (t *ExtractResumeTextTool) Name() string {
	return "extract_resume_text"
}

func (t *ExtractResumeTextTool) Description() string {
	return `Extract plain text from a resume PDF.
Input should be the file name and the PDF bytes encoded as standard base64.
Returns the extracted text and its character count.`
}

func (t *ExtractResumeTextTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"filename": map[string]interface{}{
				"type":        "string",
				"description": "Original file name, must end in .pdf",
			},
			"content_base64": map[string]interface{}{
				"type":        "string",
				"description": "The PDF file, base64 encoded",
			},
		},
		"required": []string{"filename", "content_base64"},
	}
}

// ExtractResumeTextInput represents the input for text extraction
type ExtractResumeTextInput struct {
	Filename      string `json:"filename"`
	ContentBase64 string `json:"content_base64"`
}

// ExtractResumeTextOutput represents the extracted text
type ExtractResumeTextOutput struct {
	Text           string `json:"text"`
	CharacterCount int    `json:"character_count"`
}

func (t *ExtractResumeTextTool) Execute(_ context.Context, input json.RawMessage) (json.RawMessage, error) {
	var extractInput ExtractResumeTextInput
	if err := json.Unmarshal(input, &extractInput); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	content, err := base64.StdEncoding.DecodeString(extractInput.ContentBase64)
	if err != nil {
		return NewErrorResult(fmt.Sprintf("invalid base64 content: %v", err))
	}

	text, err := t.extractor.ExtractResumeText(extractInput.Filename, content)
	if err != nil {
		return NewErrorResult(err.Error())
	}

	return NewSuccessResult(ExtractResumeTextOutput{
		Text:           text,
		CharacterCount: len([]rune(text)),
	})
}
