// Package prompts provides the LLM prompt templates used by the analysis
// pipeline. Templates live in analysis.json and are embedded at compile time.
package prompts

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed analysis.json
var analysisFile []byte

var (
	loadOnce sync.Once
	loaded   map[string]string
	loadErr  error
)

// load parses the embedded prompt file once and caches the result.
func load() (map[string]string, error) {
	loadOnce.Do(func() {
		loadErr = json.Unmarshal(analysisFile, &loaded)
	})
	if loadErr != nil {
		return nil, fmt.Errorf("failed to parse embedded prompts: %w", loadErr)
	}
	return loaded, nil
}

// Get retrieves a prompt template by key.
// Returns an error if the key is not found.
func Get(key string) (string, error) {
	prompts, err := load()
	if err != nil {
		return "", err
	}

	prompt, exists := prompts[key]
	if !exists {
		return "", fmt.Errorf("prompt key %q not found", key)
	}

	return prompt, nil
}

// MustGet retrieves a prompt template by key, panicking if not found.
// Use this for prompts that are required at initialization time.
func MustGet(key string) string {
	prompt, err := Get(key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return prompt
}

// Format replaces template placeholders in the form {{.Key}} with values
// from data. This is a simple template system for prompt customization.
func Format(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		placeholder := fmt.Sprintf("{{.%s}}", key)
		result = strings.ReplaceAll(result, placeholder, value)
	}
	return result
}

// List returns all available prompt keys.
func List() ([]string, error) {
	prompts, err := load()
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(prompts))
	for key := range prompts {
		keys = append(keys, key)
	}
	return keys, nil
}
