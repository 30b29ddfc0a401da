// Package llm provides centralized LLM configuration and client abstractions.
// This package enables per-purpose model selection and future multi-provider support.
package llm

// Purpose identifies which stage of the analysis pipeline a client serves.
// The transcription and analysis clients are configured independently and
// are never substituted for each other at call time.
type Purpose string

const (
	// PurposeTranscription is the audio-to-text stage
	PurposeTranscription Purpose = "transcription"
	// PurposeAnalysis is the scored text-to-text assessment stage
	PurposeAnalysis Purpose = "analysis"
)

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
	// ProviderOpenAI is the OpenAI provider (future)
	ProviderOpenAI Provider = "openai"
	// ProviderAnthropic is the Anthropic/Claude provider (future)
	ProviderAnthropic Provider = "anthropic"
)

// Config holds the model configuration for the application
type Config struct {
	Provider Provider
	Models   map[Purpose]string
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return DefaultGeminiConfig()
}

// DefaultGeminiConfig returns the default Gemini configuration
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[Purpose]string{
			PurposeTranscription: "gemini-2.5-flash",
			PurposeAnalysis:      "gemini-2.5-pro",
		},
	}
}

// GetModel returns the model name for a given purpose
func (c *Config) GetModel(purpose Purpose) string {
	if model, ok := c.Models[purpose]; ok {
		return model
	}
	// Fallback: transcription model serves as the general-purpose default
	if model, ok := c.Models[PurposeTranscription]; ok {
		return model
	}
	return "" // No model configured
}

// WithModel returns a new Config with a specific model for a purpose
func (c *Config) WithModel(purpose Purpose, model string) *Config {
	newConfig := &Config{
		Provider: c.Provider,
		Models:   make(map[Purpose]string),
	}
	for k, v := range c.Models {
		newConfig.Models[k] = v
	}
	newConfig.Models[purpose] = model
	return newConfig
}
