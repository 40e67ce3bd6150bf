package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumegenie/backend/agent"
	"github.com/resumegenie/backend/config"
	"github.com/resumegenie/backend/models"
	"github.com/resumegenie/backend/tools"
)

type fakeResumeService struct {
	text     string
	extract  error
	polish   *models.PolishResult
	analysis models.MatchAnalysis
	err      error

	gotFilename string
	gotJD       string
}

func (f *fakeResumeService) ExtractResumeText(filename string, _ []byte) (string, error) {
	f.gotFilename = filename
	return f.text, f.extract
}

func (f *fakeResumeService) PolishResume(_ context.Context, _ string) (*models.PolishResult, error) {
	return f.polish, f.err
}

func (f *fakeResumeService) AnalyzeMatch(_ context.Context, _ models.ResumeContent, jd string) (models.MatchAnalysis, error) {
	f.gotJD = jd
	return f.analysis, f.err
}

type fakePDFService struct {
	pdf []byte
	err error
}

func (f *fakePDFService) ValidateContent(content models.ResumeContent) bool {
	return content.ContactName() != ""
}

func (f *fakePDFService) Generate(_ context.Context, _ models.ResumeContent) ([]byte, error) {
	return f.pdf, f.err
}

func testConfig() *config.Config {
	return &config.Config{
		MaxUploadMB: 1,
		CORSOrigins: []string{"http://localhost:5173", "https://*.vercel.app"},
	}
}

func newTestRouter(cfg *config.Config, svc *fakeResumeService, pdf *fakePDFService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	registry := tools.NewToolRegistry()
	registry.Register(tools.NewKeywordOverlapTool())

	return NewRouter(cfg, Dependencies{Resume: svc, PDF: pdf, Tools: registry})
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func doUpload(t *testing.T, router *gin.Engine, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func errorDetail(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Detail
}

var longJobDescription = strings.Repeat("Backend engineer with Go, PostgreSQL and Kubernetes. ", 3)

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(testConfig(), &fakeResumeService{}, &fakePDFService{})

	w := doJSON(router, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, ServiceName, resp.Service)
	assert.Equal(t, ServiceVersion, resp.Version)
	_, err := time.Parse(time.RFC3339, resp.Timestamp)
	assert.NoError(t, err)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestNotFound(t *testing.T) {
	router := newTestRouter(testConfig(), &fakeResumeService{}, &fakePDFService{})

	w := doJSON(router, http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"Endpoint not found"}`, w.Body.String())
}

func TestRequestIDIsEchoed(t *testing.T) {
	router := newTestRouter(testConfig(), &fakeResumeService{}, &fakePDFService{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestUpload(t *testing.T) {
	text := strings.Repeat("a", 600)
	svc := &fakeResumeService{text: text}
	router := newTestRouter(testConfig(), svc, &fakePDFService{})

	w := doUpload(t, router, "resume.pdf", []byte("%PDF-1.4 fake"))
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.UploadResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "resume.pdf", resp.Filename)
	assert.Equal(t, strings.Repeat("a", 500)+"...", resp.TextPreview)
	assert.Equal(t, text, resp.FullText)
	assert.Equal(t, 600, resp.CharacterCount)
	assert.Equal(t, "resume.pdf", svc.gotFilename)
}

func TestUpload_ShortTextHasNoEllipsis(t *testing.T) {
	text := strings.Repeat("é", 120)
	router := newTestRouter(testConfig(), &fakeResumeService{text: text}, &fakePDFService{})

	w := doUpload(t, router, "resume.pdf", []byte("%PDF-1.4 fake"))
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.UploadResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, text, resp.TextPreview)
	assert.Equal(t, 120, resp.CharacterCount)
}

func TestUpload_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		detail string
	}{
		{"unsupported format", agent.ErrUnsupportedFormat, http.StatusBadRequest, models.MsgOnlyPDF},
		{"invalid pdf", agent.ErrInvalidPDF, http.StatusBadRequest, models.MsgInvalidPDF},
		{"insufficient text", agent.ErrInsufficientText, http.StatusBadRequest, models.MsgInsufficientPDFText},
		{"unexpected", errors.New("disk on fire"), http.StatusInternalServerError, "Failed to process PDF: disk on fire"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(testConfig(), &fakeResumeService{extract: tt.err}, &fakePDFService{})

			w := doUpload(t, router, "resume.pdf", []byte("%PDF-1.4"))
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.detail, errorDetail(t, w))
		})
	}
}

func TestUpload_TooLarge(t *testing.T) {
	router := newTestRouter(testConfig(), &fakeResumeService{text: "unused"}, &fakePDFService{})

	w := doUpload(t, router, "resume.pdf", bytes.Repeat([]byte("x"), 3<<19))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Equal(t, "File too large. Maximum size is 1 MB", errorDetail(t, w))
}

func TestUpload_MissingFile(t *testing.T) {
	router := newTestRouter(testConfig(), &fakeResumeService{}, &fakePDFService{})

	w := doJSON(router, http.MethodPost, "/api/upload", `{}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestPolish(t *testing.T) {
	svc := &fakeResumeService{polish: &models.PolishResult{
		PolishedContent:  models.ResumeContent{"summary": "Go engineer"},
		ImprovementsMade: []string{"Added summary"},
	}}
	router := newTestRouter(testConfig(), svc, &fakePDFService{})
	text := strings.Repeat("Go engineer. ", 5)

	w := doJSON(router, http.MethodPost, "/api/polish", `{"text":"`+text+`"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"status": "success",
		"original_text": "`+text+`",
		"polished_content": {"summary": "Go engineer"},
		"improvements_made": ["Added summary"]
	}`, w.Body.String())
}

func TestPolish_Errors(t *testing.T) {
	padded := strings.Repeat(" ", 40) + "too short" + strings.Repeat(" ", 40)

	tests := []struct {
		name   string
		body   string
		err    error
		status int
		detail string
	}{
		{"short text", `{"text":"too short"}`, nil, http.StatusBadRequest, models.MsgResumeTextTooShort},
		{"whitespace padded", `{"text":"` + padded + `"}`, nil, http.StatusBadRequest, models.MsgResumeTextTooShort},
		{"missing text", `{}`, nil, http.StatusBadRequest, models.MsgResumeTextTooShort},
		{"wrong type", `{"text":5}`, nil, http.StatusUnprocessableEntity, "Invalid request body"},
		{"malformed", `{"text":`, nil, http.StatusUnprocessableEntity, "Invalid request body"},
		{
			"upstream failure",
			`{"text":"` + strings.Repeat("x", 60) + `"}`,
			errors.New("generation failed: quota exceeded"),
			http.StatusInternalServerError,
			"Failed to polish resume: generation failed: quota exceeded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(testConfig(), &fakeResumeService{err: tt.err}, &fakePDFService{})

			w := doJSON(router, http.MethodPost, "/api/polish", tt.body)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.detail, errorDetail(t, w))
		})
	}
}

func TestAnalyze(t *testing.T) {
	svc := &fakeResumeService{analysis: models.MatchAnalysis{"match_score": 80}}
	router := newTestRouter(testConfig(), svc, &fakePDFService{})

	body, err := json.Marshal(models.AnalyzeRequest{
		ResumeContent:  models.ResumeContent{"skills": []any{"Go"}},
		JobDescription: longJobDescription,
	})
	require.NoError(t, err)

	w := doJSON(router, http.MethodPost, "/api/analyze", string(body))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"success","analysis":{"match_score":80}}`, w.Body.String())
	assert.Equal(t, longJobDescription, svc.gotJD)
}

func TestAnalyze_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
		detail string
	}{
		{"missing resume", `{"job_description":"` + longJobDescription + `"}`, nil, http.StatusBadRequest, models.MsgResumeContentRequired},
		{"empty resume", `{"resume_content":{},"job_description":"` + longJobDescription + `"}`, nil, http.StatusBadRequest, models.MsgResumeContentRequired},
		{"missing resume and short job", `{"job_description":"Go"}`, nil, http.StatusBadRequest, models.MsgResumeContentRequired},
		{"short job description", `{"resume_content":{"skills":["Go"]},"job_description":"Go developer"}`, nil, http.StatusBadRequest, models.MsgJobDescriptionTooShort},
		{"malformed", `[1,2]`, nil, http.StatusUnprocessableEntity, "Invalid request body"},
		{
			"upstream failure",
			`{"resume_content":{"skills":["Go"]},"job_description":"` + longJobDescription + `"}`,
			context.DeadlineExceeded,
			http.StatusInternalServerError,
			"Failed to analyze job match: context deadline exceeded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(testConfig(), &fakeResumeService{err: tt.err}, &fakePDFService{})

			w := doJSON(router, http.MethodPost, "/api/analyze", tt.body)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.detail, errorDetail(t, w))
		})
	}
}

func TestGeneratePDF(t *testing.T) {
	router := newTestRouter(testConfig(), &fakeResumeService{}, &fakePDFService{pdf: []byte("%PDF-1.7 rendered")})

	w := doJSON(router, http.MethodPost, "/api/generate-pdf", `{"content":{"contact_info":{"name":"Jane Doe"}}}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=resume_jane_doe.pdf", w.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.7 rendered", w.Body.String())
}

func TestGeneratePDF_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
		detail string
	}{
		{"no contact name", `{"content":{"summary":"x"}}`, nil, http.StatusBadRequest, models.MsgInvalidResumeContent},
		{"blank contact name", `{"content":{"contact_info":{"name":"   "}}}`, nil, http.StatusBadRequest, models.MsgInvalidResumeContent},
		{"malformed", `nope`, nil, http.StatusUnprocessableEntity, "Invalid request body"},
		{
			"render failure",
			`{"content":{"contact_info":{"name":"Jane"}}}`,
			errors.New("chrome exited"),
			http.StatusInternalServerError,
			"Failed to generate PDF: chrome exited",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(testConfig(), &fakeResumeService{}, &fakePDFService{err: tt.err})

			w := doJSON(router, http.MethodPost, "/api/generate-pdf", tt.body)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.detail, errorDetail(t, w))
		})
	}
}

func TestGetTools(t *testing.T) {
	router := newTestRouter(testConfig(), &fakeResumeService{}, &fakePDFService{})

	w := doJSON(router, http.MethodGet, "/api/tools", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Tools []map[string]any `json:"tools"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Tools, 1)
	assert.Equal(t, "keyword_overlap", resp.Tools[0]["name"])
}

func TestMCPRoutesAreMounted(t *testing.T) {
	router := newTestRouter(testConfig(), &fakeResumeService{}, &fakePDFService{})

	w := doJSON(router, http.MethodPost, "/api/mcp", `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "keyword_overlap")
}

func TestCORS(t *testing.T) {
	router := newTestRouter(testConfig(), &fakeResumeService{}, &fakePDFService{})

	for _, origin := range []string{"http://localhost:5173", "https://preview-123.vercel.app"} {
		req := httptest.NewRequest(http.MethodOptions, "/api/polish", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, origin, w.Header().Get("Access-Control-Allow-Origin"), origin)
	}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSConfig_AllowAll(t *testing.T) {
	cfg := corsConfig([]string{"*"})
	assert.True(t, cfg.AllowAllOrigins)
	assert.Empty(t, cfg.AllowOrigins)
	assert.False(t, cfg.AllowCredentials)
}

func TestRateLimitMiddleware(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitRPS = 1
	cfg.RateLimitBurst = 1
	router := newTestRouter(cfg, &fakeResumeService{}, &fakePDFService{})

	assert.Equal(t, http.StatusOK, doJSON(router, http.MethodGet, "/health", "").Code)

	w := doJSON(router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
}

func TestRateLimiter_PerClientAndEviction(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(1, 1)
	limiter.now = func() time.Time { return now }

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.2"), "clients have separate buckets")

	now = now.Add(time.Second)
	assert.True(t, limiter.Allow("10.0.0.1"), "bucket refills")

	now = now.Add(time.Hour)
	limiter.Allow("10.0.0.3")
	assert.Len(t, limiter.limiters, 1, "idle clients are evicted")
}

func TestTrimmedMin(t *testing.T) {
	v := validator.New()
	require.NoError(t, v.RegisterValidation("trimmed_min", trimmedMin))

	type sample struct {
		Text string `validate:"trimmed_min=3"`
	}

	assert.NoError(t, v.Struct(sample{Text: "abc"}))
	assert.NoError(t, v.Struct(sample{Text: " ééé "}), "counts characters, not bytes")
	assert.Error(t, v.Struct(sample{Text: "  ab  "}))

	err := v.Struct(sample{Text: ""})
	assert.Equal(t, "Text", failedField(err))
	assert.Equal(t, "", failedField(errors.New("other")))
	assert.Equal(t, "", failedField(nil))
}
