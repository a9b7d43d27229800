package extractor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Generation settings for the structured extraction call. Deterministic on
// purpose: the same page must yield the same JSON.
const (
	genTemperature     = 0
	genTopP            = 0.95
	genTopK            = 64
	genMaxOutputTokens = 500
)

// GeminiClient is the concrete AI capability: prompt text in, JSON text
// out. The model is configured once with JSON-only output.
type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiClient creates a client for the given API key and model
// identifier.
func NewGeminiClient(ctx context.Context, apiKey, modelName string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create generative AI client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(genTemperature)
	model.SetTopP(genTopP)
	model.SetTopK(genTopK)
	model.SetMaxOutputTokens(genMaxOutputTokens)
	model.ResponseMIMEType = "application/json"

	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

// Generate sends the prompt and returns the model's text response with
// surrounding whitespace trimmed.
func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generation request failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("generation returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return strings.TrimSpace(sb.String()), nil
}

// Close releases the underlying API client.
func (g *GeminiClient) Close() error {
	return g.client.Close()
}
