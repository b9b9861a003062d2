package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hazelpaw/captionforge/internal/server"
)

var (
	serveAddr     string
	llmProvider   string
	llmModel      string
	dataDir       string
	httpTimeout   time.Duration
	noCache       bool
	geocodeEvents bool
	frontendURL   string
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the caption generation HTTP service",
	Long: `Serve starts the HTTP API:

  GET  /          liveness/info message
  GET  /health    provider health
  POST /generate  {"location": "...", "number": 1} -> {"caption", "caption_type"}

Example:
  captionforge serve
  captionforge serve --addr :9000 --llm-provider openai --llm-model gpt-4o-mini`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	serveCmd.Flags().StringVar(&llmProvider, "llm-provider", "deepseek", "completion provider (openai, deepseek, ollama)")
	serveCmd.Flags().StringVar(&llmModel, "llm-model", "deepseek-chat", "completion model name")
	serveCmd.Flags().StringVar(&dataDir, "data-dir", "", "caption corpora directory (overrides DATA_DIR)")
	serveCmd.Flags().DurationVar(&httpTimeout, "timeout", 10*time.Second, "timeout per outbound data-source call")
	serveCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the data-source result cache")
	serveCmd.Flags().BoolVar(&geocodeEvents, "geocode-events", false, "geocode locations for radius-filtered event search")
	serveCmd.Flags().StringVar(&frontendURL, "frontend-url", "", "extra allowed CORS origin")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	cfg.Server.Addr = serveAddr
	cfg.LLM.Provider = llmProvider
	cfg.LLM.Model = llmModel
	cfg.HTTP.Timeout = httpTimeout
	cfg.Cache.Enabled = !noCache
	cfg.Compose.GeocodeEvents = geocodeEvents
	if dataDir != "" {
		cfg.Data.Dir = dataDir
	}
	if frontendURL == "" {
		frontendURL = os.Getenv("FRONTEND_URL")
	}
	if frontendURL != "" {
		cfg.Server.AllowedOrigins = append(cfg.Server.AllowedOrigins, frontendURL)
	}

	a, err := buildApp(cfg)
	if err != nil {
		return err
	}

	r := server.NewRouter(cfg.Server, a.composer, a.provider, a.sanitizer)

	slog.Info("starting caption service",
		"addr", cfg.Server.Addr,
		"provider", a.provider.Name(),
		"model", cfg.LLM.Model,
	)
	if err := r.Run(cfg.Server.Addr); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
