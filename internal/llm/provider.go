package llm

import (
	"context"

	"github.com/hazelpaw/captionforge/internal/model"
)

// Provider defines the interface for completion providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Complete turns a system/user prompt pair into caption text
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// CompletionRequest contains the prompt pair and sampling parameters
type CompletionRequest struct {
	// System is the tone/persona instruction for the style
	System string

	// User is the enriched base caption text
	User string

	// Model overrides the configured model when non-empty
	Model string

	// Sampling parameters; zero values defer to provider defaults
	Temperature float32
	TopP        float32
	MaxTokens   int
}

// CompletionResponse contains the raw completion output
type CompletionResponse struct {
	// Text is the first choice's message content, trimmed
	Text string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds completion provider configuration
type Config struct {
	// Provider name: "openai", "deepseek", "ollama"
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for hosted providers
	APIKey string

	// BaseURL for custom endpoints
	BaseURL string

	// Timeout for API requests, seconds
	Timeout int

	// Sampling defaults
	Temperature float32
	TopP        float32
	MaxTokens   int
}

// ConfigFromModel converts model.LLMConfig to llm.Config
func ConfigFromModel(mc model.LLMConfig) Config {
	return Config{
		Provider:    mc.Provider,
		Model:       mc.Model,
		APIKey:      mc.APIKey,
		BaseURL:     mc.BaseURL,
		Timeout:     mc.Timeout,
		Temperature: mc.Temperature,
		TopP:        mc.TopP,
		MaxTokens:   mc.MaxTokens,
	}
}
