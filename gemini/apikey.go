package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/resumegenie/backend/config"
	"github.com/resumegenie/backend/logging"
	"github.com/resumegenie/backend/utils"
)

// APIKeyClient talks to the Gemini Developer API with an API key
type APIKeyClient struct {
	client    *genai.Client
	modelName string
	genConfig *genai.GenerateContentConfig
}

// NewAPIKeyClient creates a Gemini client authenticated by GOOGLE_API_KEY
func NewAPIKeyClient(ctx context.Context, cfg *config.Config) (*APIKeyClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.GoogleAPIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: utils.NewHTTPClient(timeout(cfg)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	logger := logging.Component("gemini")
	logger.Info().
		Str("backend", "gemini-api").
		Str("model", cfg.GeminiModel).
		Msg("Gemini client ready")

	return &APIKeyClient{
		client:    client,
		modelName: cfg.GeminiModel,
		genConfig: &genai.GenerateContentConfig{
			Temperature:     genai.Ptr(defaultTemperature),
			TopP:            genai.Ptr(defaultTopP),
			MaxOutputTokens: maxOutputTokens,
		},
	}, nil
}

// Close is a no-op; the underlying client holds no connections of its own
func (c *APIKeyClient) Close() error {
	return nil
}

// GenerateText sends the prompt and returns the response text
func (c *APIKeyClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.modelName, genai.Text(prompt), c.genConfig)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
