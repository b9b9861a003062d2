package llm

import (
	"fmt"
	"strings"
)

// NewProvider creates a completion provider based on configuration
func NewProvider(config Config) (Provider, error) {
	provider := strings.ToLower(config.Provider)

	switch provider {
	case "openai":
		return NewOpenAIProvider(config, "openai")

	case "deepseek":
		return NewOpenAIProvider(config, "deepseek")

	case "ollama":
		return NewOllamaProvider(config)

	default:
		return nil, fmt.Errorf("unknown completion provider: %s (supported: openai, deepseek, ollama)", config.Provider)
	}
}
