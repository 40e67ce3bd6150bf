package tools

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumegenie/backend/models"
)

type fakePolisher struct {
	got    string
	result *models.PolishResult
	err    error
}

func (f *fakePolisher) PolishResume(_ context.Context, rawText string) (*models.PolishResult, error) {
	f.got = rawText
	return f.result, f.err
}

type fakeAnalyzer struct {
	analysis models.MatchAnalysis
	err      error
}

func (f *fakeAnalyzer) AnalyzeMatch(_ context.Context, _ models.ResumeContent, _ string) (models.MatchAnalysis, error) {
	return f.analysis, f.err
}

type fakeExtractor struct {
	text string
	err  error
}

func (f *fakeExtractor) ExtractResumeText(_ string, _ []byte) (string, error) {
	return f.text, f.err
}

func decode(t *testing.T, raw json.RawMessage) ToolResult {
	t.Helper()
	var result ToolResult
	require.NoError(t, json.Unmarshal(raw, &result))
	return result
}

func mustJSON(t *testing.T, v any) json.RawMessage {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

var longText = strings.Repeat("Experienced Go engineer. ", 4)

func TestToolRegistry(t *testing.T) {
	registry := NewToolRegistry()
	registry.Register(NewPolishResumeTool(&fakePolisher{}))
	registry.Register(NewKeywordOverlapTool())
	registry.Register(NewAnalyzeJobMatchTool(&fakeAnalyzer{}))
	registry.Register(NewExtractResumeTextTool(&fakeExtractor{}))

	names := make([]string, 0, 4)
	for _, tool := range registry.List() {
		names = append(names, tool.Name())
	}
	assert.Equal(t, []string{"analyze_job_match", "extract_resume_text", "keyword_overlap", "polish_resume"}, names)

	_, ok := registry.Get("polish_resume")
	assert.True(t, ok)
	_, ok = registry.Get("search_web")
	assert.False(t, ok)

	defs := registry.GetToolDefinitions()
	require.Len(t, defs, 4)
	assert.Equal(t, "analyze_job_match", defs[0]["name"])
	assert.NotEmpty(t, defs[0]["parameters"])
}

func TestToolRegistry_ConcurrentAccess(t *testing.T) {
	registry := NewToolRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			registry.Register(NewKeywordOverlapTool())
		}()
		go func() {
			defer wg.Done()
			registry.List()
			registry.GetToolDefinitions()
		}()
	}
	wg.Wait()

	assert.Len(t, registry.List(), 1)
}

func TestPolishResumeTool(t *testing.T) {
	polisher := &fakePolisher{result: &models.PolishResult{
		PolishedContent:  models.ResumeContent{"summary": "x"},
		ImprovementsMade: []string{"Stronger verbs"},
	}}
	tool := NewPolishResumeTool(polisher)

	raw, err := tool.Execute(context.Background(), mustJSON(t, PolishResumeInput{Text: longText}))
	require.NoError(t, err)

	result := decode(t, raw)
	require.True(t, result.Success)
	assert.Equal(t, longText, polisher.got)
	assert.JSONEq(t, `{"polished_content":{"summary":"x"},"improvements_made":["Stronger verbs"],"degraded":false}`, string(result.Data))
}

func TestPolishResumeTool_Errors(t *testing.T) {
	tool := NewPolishResumeTool(&fakePolisher{err: errors.New("quota exceeded")})

	raw, err := tool.Execute(context.Background(), json.RawMessage(`{"text": "too short"}`))
	require.NoError(t, err)
	assert.Equal(t, models.MsgResumeTextTooShort, decode(t, raw).Error)

	raw, err = tool.Execute(context.Background(), json.RawMessage(`not json`))
	require.NoError(t, err)
	assert.Contains(t, decode(t, raw).Error, "invalid input")

	raw, err = tool.Execute(context.Background(), mustJSON(t, PolishResumeInput{Text: longText}))
	require.NoError(t, err)
	assert.Equal(t, "Failed to polish resume: quota exceeded", decode(t, raw).Error)
}

func TestAnalyzeJobMatchTool(t *testing.T) {
	tool := NewAnalyzeJobMatchTool(&fakeAnalyzer{analysis: models.MatchAnalysis{"match_score": 72}})
	jd := strings.Repeat("Backend role using Go and PostgreSQL. ", 4)

	raw, err := tool.Execute(context.Background(), mustJSON(t, AnalyzeJobMatchInput{
		ResumeContent:  models.ResumeContent{"skills": []any{"Go"}},
		JobDescription: jd,
	}))
	require.NoError(t, err)
	result := decode(t, raw)
	require.True(t, result.Success)
	assert.JSONEq(t, `{"match_score":72}`, string(result.Data))

	raw, err = tool.Execute(context.Background(), mustJSON(t, AnalyzeJobMatchInput{JobDescription: jd}))
	require.NoError(t, err)
	assert.Equal(t, models.MsgResumeContentRequired, decode(t, raw).Error)

	raw, err = tool.Execute(context.Background(), mustJSON(t, AnalyzeJobMatchInput{
		ResumeContent:  models.ResumeContent{"skills": []any{"Go"}},
		JobDescription: "Go developer",
	}))
	require.NoError(t, err)
	assert.Equal(t, models.MsgJobDescriptionTooShort, decode(t, raw).Error)
}

func TestKeywordOverlapTool(t *testing.T) {
	tool := NewKeywordOverlapTool()

	raw, err := tool.Execute(context.Background(), mustJSON(t, AnalyzeJobMatchInput{
		ResumeContent:  models.ResumeContent{"skills": []any{"Python"}},
		JobDescription: "We need Python and SQL experience",
	}))
	require.NoError(t, err)

	result := decode(t, raw)
	require.True(t, result.Success)
	assert.JSONEq(t, `{
		"total_job_keywords": 4,
		"matched_keywords": 1,
		"missing_keywords_basic": ["need", "sql", "experience"],
		"keyword_match_score": 25
	}`, string(result.Data))
}

func TestExtractResumeTextTool(t *testing.T) {
	tool := NewExtractResumeTextTool(&fakeExtractor{text: "José Díaz, Go"})

	raw, err := tool.Execute(context.Background(), mustJSON(t, ExtractResumeTextInput{
		Filename:      "cv.pdf",
		ContentBase64: base64.StdEncoding.EncodeToString([]byte("%PDF-1.4")),
	}))
	require.NoError(t, err)

	result := decode(t, raw)
	require.True(t, result.Success)
	assert.JSONEq(t, `{"text":"José Díaz, Go","character_count":13}`, string(result.Data))

	raw, err = tool.Execute(context.Background(), json.RawMessage(`{"filename":"cv.pdf","content_base64":"***"}`))
	require.NoError(t, err)
	assert.Contains(t, decode(t, raw).Error, "invalid base64 content")

	failing := NewExtractResumeTextTool(&fakeExtractor{err: errors.New(models.MsgOnlyPDF)})
	raw, err = failing.Execute(context.Background(), json.RawMessage(`{"filename":"cv.docx","content_base64":""}`))
	require.NoError(t, err)
	assert.Equal(t, models.MsgOnlyPDF, decode(t, raw).Error)
}
