package aiclient

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"warren/finparse/internal/logging"
)

// ErrNoClient signals that no AI client is configured; callers take the
// deterministic fallback path.
var ErrNoClient = errors.New("no AI client configured")

// Near-deterministic decoding keeps structure analysis reproducible
// across runs of the same document.
const defaultTemperature = 0.1

// GeminiClient implements Completer against the Google Gemini API.
type GeminiClient struct {
	apiKey string
	model  string
	logger logging.Logger

	client *genai.Client
}

// NewGeminiClient creates a Gemini-backed completer. The underlying API
// client is created lazily on first use so construction never needs
// network access.
func NewGeminiClient(apiKey, model string, logger logging.Logger) *GeminiClient {
	return &GeminiClient{
		apiKey: apiKey,
		model:  model,
		logger: logger,
	}
}

func (c *GeminiClient) ensureClient(ctx context.Context) error {
	if c.client != nil {
		return nil
	}
	if c.apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY not set: %w", ErrNoClient)
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}
	c.client = client
	return nil
}

// Complete submits one completion request with the given system
// instruction, requesting strict JSON at low temperature. Cancellation
// and timeouts travel on ctx; there is no retry here.
func (c *GeminiClient) Complete(ctx context.Context, systemInstruction, userPrompt string) (string, error) {
	if err := c.ensureClient(ctx); err != nil {
		return "", err
	}

	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(defaultTemperature)
	model.ResponseMIMEType = "application/json"
	if systemInstruction != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(systemInstruction)},
		}
	}

	c.logger.WithFields(
		logging.Field{Key: logging.FieldModel, Value: c.model},
		logging.Field{Key: "prompt_chars", Value: len(userPrompt)},
	).Debug("Submitting completion request")

	resp, err := model.GenerateContent(ctx, genai.Text(userPrompt))
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from Gemini API")
	}

	var text string
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text += string(t)
		}
	}
	if text == "" {
		return "", fmt.Errorf("no text content in Gemini response")
	}
	return text, nil
}

// Close releases the underlying API client, if one was created.
func (c *GeminiClient) Close() error {
	if c.client == nil {
		return nil
	}
	err := c.client.Close()
	c.client = nil
	return err
}
