package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumegenie/backend/models"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestKeywordsCommand(t *testing.T) {
	resume := writeFile(t, "resume.json", `{"skills": ["Python"]}`)
	job := writeFile(t, "job.txt", "We need Python and SQL experience")

	out, err := execute(t, "keywords", "--resume", resume, "--job", job)
	require.NoError(t, err)

	var ka map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &ka))
	assert.Equal(t, 4.0, ka["total_job_keywords"])
	assert.Equal(t, 1.0, ka["matched_keywords"])
	assert.Equal(t, 25.0, ka["keyword_match_score"])
}

func TestKeywordsCommand_BadResume(t *testing.T) {
	resume := writeFile(t, "resume.json", `not json`)
	job := writeFile(t, "job.txt", "We need Python")

	_, err := execute(t, "keywords", "--resume", resume, "--job", job)
	assert.ErrorContains(t, err, "failed to unmarshal resume JSON")
}

func TestExtractCommand_Errors(t *testing.T) {
	_, err := execute(t, "extract", writeFile(t, "resume.docx", "hello"))
	assert.EqualError(t, err, models.MsgOnlyPDF)

	_, err = execute(t, "extract", writeFile(t, "resume.pdf", "not really a pdf"))
	assert.ErrorContains(t, err, models.MsgInvalidPDF)

	_, err = execute(t, "extract", filepath.Join(t.TempDir(), "missing.pdf"))
	assert.ErrorContains(t, err, "failed to open")
}
