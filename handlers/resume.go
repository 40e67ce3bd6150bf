package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/resumegenie/backend/agent"
	"github.com/resumegenie/backend/gemini"
	"github.com/resumegenie/backend/logging"
	"github.com/resumegenie/backend/models"
	"github.com/resumegenie/backend/rendering"
)

// ResumeService runs the resume flows behind the HTTP API
type ResumeService interface {
	ExtractResumeText(filename string, content []byte) (string, error)
	PolishResume(ctx context.Context, rawText string) (*models.PolishResult, error)
	AnalyzeMatch(ctx context.Context, resume models.ResumeContent, jobDescription string) (models.MatchAnalysis, error)
}

// PDFService renders structured resumes to PDF
type PDFService interface {
	ValidateContent(content models.ResumeContent) bool
	Generate(ctx context.Context, content models.ResumeContent) ([]byte, error)
}

// multipartOverhead is allowed on top of the file size for form boundaries
const multipartOverhead = 1 << 20

// ResumeHandler handles resume upload, polishing, analysis and PDF export
type ResumeHandler struct {
	service        ResumeService
	pdf            PDFService
	maxUploadBytes int64
	logger         zerolog.Logger
}

// NewResumeHandler creates a new resume handler
func NewResumeHandler(service ResumeService, pdf PDFService, maxUploadMB int) *ResumeHandler {
	return &ResumeHandler{
		service:        service,
		pdf:            pdf,
		maxUploadBytes: int64(maxUploadMB) << 20,
		logger:         logging.Component("handlers"),
	}
}

// Upload extracts text from an uploaded resume PDF
// @Summary Upload resume PDF
// @Description Upload a PDF resume and extract its text content
// @Tags Resume
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Resume PDF"
// @Success 200 {object} models.UploadResponse "Extracted text"
// @Failure 400 {object} models.ErrorResponse "Not a PDF, invalid PDF or too little text"
// @Failure 413 {object} models.ErrorResponse "File too large"
// @Failure 422 {object} models.ErrorResponse "Missing file"
// @Failure 500 {object} models.ErrorResponse "Processing failed"
// @Router /upload [post]
func (h *ResumeHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes+multipartOverhead)

	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.sendError(c, http.StatusRequestEntityTooLarge, h.tooLargeMessage())
			return
		}
		h.sendError(c, http.StatusUnprocessableEntity, "A PDF file is required in the 'file' form field")
		return
	}

	if header.Size > h.maxUploadBytes {
		h.sendError(c, http.StatusRequestEntityTooLarge, h.tooLargeMessage())
		return
	}

	file, err := header.Open()
	if err != nil {
		h.sendInternalError(c, "Failed to process PDF", err)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		h.sendInternalError(c, "Failed to process PDF", err)
		return
	}

	text, err := h.service.ExtractResumeText(header.Filename, content)
	if err != nil {
		switch {
		case errors.Is(err, agent.ErrUnsupportedFormat),
			errors.Is(err, agent.ErrInvalidPDF),
			errors.Is(err, agent.ErrInsufficientText):
			h.sendError(c, http.StatusBadRequest, err.Error())
		default:
			h.sendInternalError(c, "Failed to process PDF", err)
		}
		return
	}

	c.JSON(http.StatusOK, models.UploadResponse{
		Status:         "success",
		Filename:       header.Filename,
		TextPreview:    preview(text, models.TextPreviewLength),
		FullText:       text,
		CharacterCount: len([]rune(text)),
	})
}

// Polish restructures and improves raw resume text with AI
// @Summary Polish resume
// @Description Turn raw resume text into a structured, improved resume using AI
// @Tags Resume
// @Accept json
// @Produce json
// @Param request body models.PolishRequest true "Resume text"
// @Success 200 {object} models.PolishResponse "Polished resume"
// @Failure 400 {object} models.ErrorResponse "Text too short"
// @Failure 422 {object} models.ErrorResponse "Malformed request body"
// @Failure 500 {object} models.ErrorResponse "Polishing failed"
// @Router /polish [post]
func (h *ResumeHandler) Polish(c *gin.Context) {
	var req models.PolishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if failedField(err) == "Text" {
			h.sendError(c, http.StatusBadRequest, models.MsgResumeTextTooShort)
			return
		}
		h.sendError(c, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	result, err := h.service.PolishResume(c.Request.Context(), req.Text)
	if err != nil {
		h.sendInternalError(c, "Failed to polish resume", err)
		return
	}

	c.JSON(http.StatusOK, models.PolishResponse{
		Status:           "success",
		OriginalText:     req.Text,
		PolishedContent:  result.PolishedContent,
		ImprovementsMade: result.ImprovementsMade,
	})
}

// Analyze compares a structured resume with a job description
// @Summary Analyze job match
// @Description Score how well a structured resume matches a job description, with AI insights and keyword overlap
// @Tags Resume
// @Accept json
// @Produce json
// @Param request body models.AnalyzeRequest true "Resume and job description"
// @Success 200 {object} models.AnalyzeResponse "Match analysis"
// @Failure 400 {object} models.ErrorResponse "Missing resume or job description too short"
// @Failure 422 {object} models.ErrorResponse "Malformed request body"
// @Failure 500 {object} models.ErrorResponse "Analysis failed"
// @Router /analyze [post]
func (h *ResumeHandler) Analyze(c *gin.Context) {
	var req models.AnalyzeRequest
	err := c.ShouldBindJSON(&req)
	field := failedField(err)
	if err != nil && field == "" {
		h.sendError(c, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	if len(req.ResumeContent) == 0 {
		h.sendError(c, http.StatusBadRequest, models.MsgResumeContentRequired)
		return
	}
	if field == "JobDescription" {
		h.sendError(c, http.StatusBadRequest, models.MsgJobDescriptionTooShort)
		return
	}

	analysis, err := h.service.AnalyzeMatch(c.Request.Context(), req.ResumeContent, req.JobDescription)
	if err != nil {
		h.sendInternalError(c, "Failed to analyze job match", err)
		return
	}

	c.JSON(http.StatusOK, models.AnalyzeResponse{
		Status:   "success",
		Analysis: analysis,
	})
}

// GeneratePDF renders a structured resume as a downloadable PDF
// @Summary Generate resume PDF
// @Description Render a structured resume to PDF. contact_info.name is required.
// @Tags Resume
// @Accept json
// @Produce application/pdf
// @Param request body models.GeneratePDFRequest true "Structured resume"
// @Success 200 {file} binary "Resume PDF"
// @Failure 400 {object} models.ErrorResponse "Invalid resume content"
// @Failure 422 {object} models.ErrorResponse "Malformed request body"
// @Failure 500 {object} models.ErrorResponse "Rendering failed"
// @Router /generate-pdf [post]
func (h *ResumeHandler) GeneratePDF(c *gin.Context) {
	var req models.GeneratePDFRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.sendError(c, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	if !h.pdf.ValidateContent(req.Content) {
		h.sendError(c, http.StatusBadRequest, models.MsgInvalidResumeContent)
		return
	}

	pdf, err := h.pdf.Generate(c.Request.Context(), req.Content)
	if err != nil {
		h.sendInternalError(c, "Failed to generate PDF", err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+rendering.Filename(req.Content.ContactName()))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (h *ResumeHandler) tooLargeMessage() string {
	return fmt.Sprintf("File too large. Maximum size is %d MB", h.maxUploadBytes>>20)
}

func (h *ResumeHandler) sendError(c *gin.Context, code int, detail string) {
	c.JSON(code, models.ErrorResponse{
		Detail: detail,
		Code:   code,
	})
}

// sendInternalError logs the failure and answers 500 with "<prefix>: <error>"
func (h *ResumeHandler) sendInternalError(c *gin.Context, prefix string, err error) {
	h.logger.Error().
		Err(err).
		Str("request_id", c.GetString(requestIDKey)).
		Str("path", c.Request.URL.Path).
		Str("upstream", gemini.Classify(err)).
		Msg(prefix)

	h.sendError(c, http.StatusInternalServerError, fmt.Sprintf("%s: %v", prefix, err))
}

// preview returns the first n characters, with "..." appended when cut
func preview(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n]) + "..."
}
