package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/hazelpaw/captionforge/internal/compose"
	"github.com/hazelpaw/captionforge/internal/fetch"
	"github.com/hazelpaw/captionforge/internal/llm"
	"github.com/hazelpaw/captionforge/internal/model"
	"github.com/hazelpaw/captionforge/internal/sanitize"
	"github.com/hazelpaw/captionforge/internal/templates"
)

// app bundles the wired pipeline shared by serve and batch
type app struct {
	cfg       model.Config
	store     *templates.Store
	composer  *compose.Composer
	provider  llm.Provider
	sanitizer *sanitize.Sanitizer
}

// loadConfig overlays the environment onto defaults
func loadConfig() model.Config {
	cfg := model.DefaultConfig()
	if v := os.Getenv("DATA_DIR"); v != "" {
		cfg.Data.Dir = v
	}
	return cfg
}

// resolveAPIKey pulls the provider's key from the environment
func resolveAPIKey(cfg *model.Config) error {
	switch strings.ToLower(cfg.LLM.Provider) {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "deepseek":
		cfg.LLM.APIKey = os.Getenv("DEEPSEEK_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("DEEPSEEK_API_KEY environment variable not set")
		}
	case "ollama":
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}
	return nil
}

// buildApp wires the template store, data sources, composer, provider
// and sanitizer from configuration.
func buildApp(cfg model.Config) (*app, error) {
	if err := resolveAPIKey(&cfg); err != nil {
		return nil, err
	}

	store, err := templates.Load(cfg.Data)
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	client := fetch.NewClient(cfg.HTTP, cfg.Cache, fetch.Keys{
		Weather:      os.Getenv("WEATHER_API_KEY"),
		Ticketmaster: os.Getenv("TICKETMASTER_API_KEY"),
	})

	provider, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM))
	if err != nil {
		return nil, fmt.Errorf("create completion provider: %w", err)
	}

	tracker := compose.NewTracker()
	composer := compose.New(store, client, tracker, cfg.Compose)
	sanitizer := sanitize.New(cfg.Sanitize)

	return &app{
		cfg:       cfg,
		store:     store,
		composer:  composer,
		provider:  provider,
		sanitizer: sanitizer,
	}, nil
}
