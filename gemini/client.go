package gemini

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/resumegenie/backend/config"
)

// ErrEmptyResponse is returned when the model answers with no text
var ErrEmptyResponse = errors.New("no response from Gemini")

// Generator sends a single prompt to a text generation model
type Generator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	Close() error
}

// Generation parameters shared by both backends
const (
	defaultTemperature float32 = 0.2
	defaultTopP        float32 = 0.8
	maxOutputTokens    int32   = 8192
)

// NewGenerator picks the backend from configuration: the Gemini Developer API
// when GOOGLE_API_KEY is set, Vertex AI otherwise.
func NewGenerator(ctx context.Context, cfg *config.Config) (Generator, error) {
	if cfg.UseVertex() {
		return NewVertexClient(ctx, cfg)
	}
	if cfg.GoogleAPIKey == "" {
		return nil, fmt.Errorf("no AI backend configured: set GOOGLE_API_KEY or PROJECT_ID")
	}
	return NewAPIKeyClient(ctx, cfg)
}

func timeout(cfg *config.Config) time.Duration {
	return time.Duration(cfg.AITimeoutSeconds) * time.Second
}
