package insight

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/julianstephens/vitalflow/internal/logger"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.0-flash"

// GeminiGenerator implements Generator against Google's Gemini API. One call
// per GenerateText invocation; no retry, backoff, or rate limiting (per-request
// re-triggering is a UI decision).
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator creates a Gemini-backed Generator. The API key comes
// from the keyring or environment (resolved by the caller).
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: API key cannot be empty", ErrInvalidConfig)
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", ErrInvalidConfig, err)
	}

	return &GeminiGenerator{
		client: client,
		model:  model,
	}, nil
}

// GenerateText sends the prompt to the Gemini API and returns the response
// text. Empty candidates, safety blocks, and transport errors all surface as
// typed failures for the orchestrator to fold into its uniform failure case.
func (g *GeminiGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", fmt.Errorf("%w: empty prompt", ErrInvalidResponse)
	}

	logger.Debug("calling Gemini API", "model", g.model, "prompt_length", len(prompt))

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("Gemini API call failed: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no content generated", ErrInvalidResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", ErrBlocked
	}
	if candidate.Content == nil {
		return "", fmt.Errorf("%w: empty content in response", ErrInvalidResponse)
	}

	text := ""
	for _, part := range candidate.Content.Parts {
		if part != nil {
			text += part.Text
		}
	}
	if text == "" {
		return "", fmt.Errorf("%w: no text parts in response", ErrInvalidResponse)
	}

	logger.Debug("Gemini API call succeeded", "response_length", len(text))

	return text, nil
}
