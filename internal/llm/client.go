package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/jrgrafton-openclaw/SingCoach-sub001/internal/prompts"
)

// Client is an abstraction over text-generation providers. It exposes the
// two capability shapes the analysis pipeline consumes: generation from
// raw audio bytes and generation from a text prompt.
type Client interface {
	// GenerateFromAudio generates text from audio bytes and their mime type
	GenerateFromAudio(ctx context.Context, data []byte, mimeType string) (string, error)
	// GenerateFromPrompt generates text from a text prompt
	GenerateFromPrompt(ctx context.Context, prompt string) (string, error)
	// Model returns the underlying provider model name (for diagnostics)
	Model() string
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a new LLM client for the given purpose based on configuration
func NewClient(ctx context.Context, config *Config, purpose Purpose, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config, purpose, apiKey)
	// case ProviderOpenAI:
	//     return NewOpenAIClient(ctx, config, purpose, apiKey)
	default:
		return NewGeminiClient(ctx, config, purpose, apiKey)
	}
}

// GeminiClient implements Client for Google Gemini. Each instance is bound
// to one model at construction; the pipeline builds one for transcription
// and one for analysis.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a new Gemini client bound to the model
// configured for the given purpose
func NewGeminiClient(ctx context.Context, config *Config, purpose Purpose, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	modelName := config.GetModel(purpose)
	if modelName == "" {
		return nil, fmt.Errorf("no model configured for purpose %s", purpose)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  modelName,
	}, nil
}

// GenerateFromAudio sends the audio bytes to the model together with the
// transcription instruction and returns the generated transcript text.
func (c *GeminiClient) GenerateFromAudio(ctx context.Context, data []byte, mimeType string) (string, error) {
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(0.1) // Low temperature for consistent output

	instruction := prompts.MustGet("transcribe-recording")
	resp, err := model.GenerateContent(ctx,
		genai.Text(instruction),
		genai.Blob{MIMEType: mimeType, Data: data},
	)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return extractTextFromResponse(resp)
}

// GenerateFromPrompt generates text from a text prompt. The response is
// returned as produced by the provider; fence stripping is the caller's
// concern.
func (c *GeminiClient) GenerateFromPrompt(ctx context.Context, prompt string) (string, error) {
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(0.1) // Low temperature for consistent output

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return extractTextFromResponse(resp)
}

// Model returns the bound model name
func (c *GeminiClient) Model() string {
	return c.model
}

// Close releases resources held by the client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// extractTextFromResponse extracts text from Gemini API response
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}
