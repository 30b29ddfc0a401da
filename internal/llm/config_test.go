package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, ProviderGemini, config.Provider)
	assert.Equal(t, "gemini-2.5-flash", config.GetModel(PurposeTranscription))
	assert.Equal(t, "gemini-2.5-pro", config.GetModel(PurposeAnalysis))
}

func TestGetModel_Fallback(t *testing.T) {
	config := &Config{
		Provider: ProviderGemini,
		Models: map[Purpose]string{
			PurposeTranscription: "fallback-model",
		},
	}

	// Unknown purpose should fall back to the transcription model
	assert.Equal(t, "fallback-model", config.GetModel("unknown"))
}

func TestGetModel_EmptyConfig(t *testing.T) {
	config := &Config{
		Provider: ProviderGemini,
		Models:   map[Purpose]string{},
	}

	// Empty config should return empty string
	assert.Equal(t, "", config.GetModel(PurposeAnalysis))
}

func TestWithModel(t *testing.T) {
	config := DefaultConfig()
	newConfig := config.WithModel(PurposeAnalysis, "custom-model")

	// Original should be unchanged
	assert.Equal(t, "gemini-2.5-pro", config.GetModel(PurposeAnalysis))

	// New config should have custom model
	assert.Equal(t, "custom-model", newConfig.GetModel(PurposeAnalysis))

	// Other purposes should be copied
	assert.Equal(t, "gemini-2.5-flash", newConfig.GetModel(PurposeTranscription))
}

func TestPurposeConstants(t *testing.T) {
	assert.Equal(t, Purpose("transcription"), PurposeTranscription)
	assert.Equal(t, Purpose("analysis"), PurposeAnalysis)
}

func TestProviderConstants(t *testing.T) {
	assert.Equal(t, Provider("gemini"), ProviderGemini)
	assert.Equal(t, Provider("openai"), ProviderOpenAI)
	assert.Equal(t, Provider("anthropic"), ProviderAnthropic)
}

func TestNewGeminiClient_RequiresAPIKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), DefaultConfig(), PurposeTranscription, "")
	assert.Error(t, err)
}

func TestNewGeminiClient_RequiresModel(t *testing.T) {
	config := &Config{Provider: ProviderGemini, Models: map[Purpose]string{}}
	_, err := NewGeminiClient(context.Background(), config, PurposeAnalysis, "test-key")
	assert.Error(t, err)
}
