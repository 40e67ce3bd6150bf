package gemini

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/vertexai/genai"
	"google.golang.org/api/option"

	"github.com/resumegenie/backend/config"
	"github.com/resumegenie/backend/logging"
)

// VertexClient wraps the Vertex AI Gemini client
type VertexClient struct {
	client    *genai.Client
	model     *genai.GenerativeModel
	projectID string
	location  string
	modelName string
}

// NewVertexClient creates a Gemini client on Vertex AI
func NewVertexClient(ctx context.Context, cfg *config.Config) (*VertexClient, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := genai.NewClient(ctx, cfg.ProjectID, cfg.Location, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(cfg.GeminiModel)
	model.SetTemperature(defaultTemperature)
	model.SetTopP(defaultTopP)
	model.SetMaxOutputTokens(maxOutputTokens)

	logger := logging.Component("gemini")
	logger.Info().
		Str("backend", "vertex").
		Str("project", cfg.ProjectID).
		Str("location", cfg.Location).
		Str("model", cfg.GeminiModel).
		Msg("Gemini client ready")

	return &VertexClient{
		client:    client,
		model:     model,
		projectID: cfg.ProjectID,
		location:  cfg.Location,
		modelName: cfg.GeminiModel,
	}, nil
}

// Close closes the Gemini client
func (c *VertexClient) Close() error {
	return c.client.Close()
}

// GenerateText sends the prompt and returns the concatenated text parts
func (c *VertexClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := extractText(resp)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String()
}
