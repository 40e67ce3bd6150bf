package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/resumegenie/backend/config"
	"github.com/resumegenie/backend/gemini"
	"github.com/resumegenie/backend/logging"
	"github.com/resumegenie/backend/models"
	"github.com/resumegenie/backend/parser"
	"github.com/resumegenie/backend/prompts"
	"github.com/resumegenie/backend/tools"
	"github.com/resumegenie/backend/utils"
)

// Upload errors. Their messages are shown to clients as is.
var (
	ErrUnsupportedFormat = errors.New(models.MsgOnlyPDF)
	ErrInvalidPDF        = errors.New(models.MsgInvalidPDF)
	ErrInsufficientText  = errors.New(models.MsgInsufficientPDFText)
)

// ResumeAgent runs the resume flows: text extraction, polishing and job
// match analysis. It also exposes them as MCP tools.
type ResumeAgent struct {
	generator    gemini.Generator
	extractor    *utils.DocumentExtractor
	keywordTool  *tools.KeywordOverlapTool
	toolRegistry *tools.ToolRegistry
	aiTimeout    time.Duration
	logger       zerolog.Logger
}

// NewResumeAgent creates a new resume agent around a text generator
func NewResumeAgent(cfg *config.Config, generator gemini.Generator, extractor *utils.DocumentExtractor) *ResumeAgent {
	a := &ResumeAgent{
		generator:   generator,
		extractor:   extractor,
		keywordTool: tools.NewKeywordOverlapTool(),
		aiTimeout:   time.Duration(cfg.AITimeoutSeconds) * time.Second,
		logger:      logging.Component("agent"),
	}

	registry := tools.NewToolRegistry()
	registry.Register(tools.NewExtractResumeTextTool(a))
	registry.Register(tools.NewPolishResumeTool(a))
	registry.Register(tools.NewAnalyzeJobMatchTool(a))
	registry.Register(a.keywordTool)
	a.toolRegistry = registry

	return a
}

// Close releases resources
func (a *ResumeAgent) Close() error {
	return a.generator.Close()
}

// GetToolRegistry returns the tool registry for MCP server
func (a *ResumeAgent) GetToolRegistry() *tools.ToolRegistry {
	return a.toolRegistry
}

// ExtractResumeText validates an uploaded PDF and returns its text
func (a *ResumeAgent) ExtractResumeText(filename string, content []byte) (string, error) {
	if !a.extractor.IsSupportedFormat(filename) {
		return "", ErrUnsupportedFormat
	}

	if err := a.extractor.Validate(content); err != nil {
		return "", ErrInvalidPDF
	}

	text := a.extractor.ExtractText(content)
	if len(strings.TrimSpace(text)) < models.MinExtractedTextLength {
		return "", ErrInsufficientText
	}

	a.logger.Info().
		Str("filename", filename).
		Int("bytes", len(content)).
		Int("chars", len([]rune(text))).
		Msg("Extracted resume text")

	return text, nil
}

// PolishResume asks the model to restructure raw resume text. Unparseable
// model output yields a degraded result, not an error.
func (a *ResumeAgent) PolishResume(ctx context.Context, rawText string) (*models.PolishResult, error) {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	response, err := a.generator.GenerateText(ctx, prompts.BuildPolishPrompt(rawText))
	if err != nil {
		a.logger.Error().Err(err).Str("upstream", gemini.Classify(err)).Msg("Polish generation failed")
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	result := parser.ParsePolishResponse(response)
	content := result.Resume()

	a.logger.Info().
		Int("input_chars", len(rawText)).
		Str("parse_status", string(result.Status)).
		Dur("elapsed", time.Since(start)).
		Msg("Polished resume")

	return &models.PolishResult{
		PolishedContent:  content,
		ImprovementsMade: content.ImprovementsMade(),
		Degraded:         result.Degraded(),
	}, nil
}

// AnalyzeMatch runs the AI analysis and the keyword overlap concurrently and
// stores the keyword block under keyword_analysis.
func (a *ResumeAgent) AnalyzeMatch(ctx context.Context, resume models.ResumeContent, jobDescription string) (models.MatchAnalysis, error) {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	var (
		result          parser.Result
		keywordAnalysis models.KeywordAnalysis
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		response, err := a.generator.GenerateText(gctx, prompts.BuildAnalysisPrompt(resume, jobDescription))
		if err != nil {
			return err
		}
		result = parser.ParseAnalysisResponse(response)
		return nil
	})

	g.Go(func() error {
		keywordAnalysis = a.keywordTool.Compute(resume, jobDescription)
		return nil
	})

	if err := g.Wait(); err != nil {
		a.logger.Error().Err(err).Str("upstream", gemini.Classify(err)).Msg("Match analysis generation failed")
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	analysis := result.Analysis().WithKeywordAnalysis(keywordAnalysis)

	a.logger.Info().
		Str("parse_status", string(result.Status)).
		Int("keywords_total", keywordAnalysis.TotalJobKeywords).
		Int("keywords_matched", keywordAnalysis.MatchedKeywords).
		Dur("elapsed", time.Since(start)).
		Msg("Analyzed job match")

	return analysis, nil
}

func (a *ResumeAgent) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.aiTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.aiTimeout)
}
