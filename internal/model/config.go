package model

import "time"

// Config is the full application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	HTTP     HTTPConfig     `yaml:"http"`
	Cache    CacheConfig    `yaml:"cache"`
	LLM      LLMConfig      `yaml:"llm"`
	Compose  ComposeConfig  `yaml:"compose"`
	Sanitize SanitizeConfig `yaml:"sanitize"`
	Data     DataConfig     `yaml:"data"`
}

// ServerConfig configures the HTTP surface
type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// HTTPConfig configures outbound data-source calls
type HTTPConfig struct {
	Timeout           time.Duration `yaml:"timeout"`
	UserAgent         string        `yaml:"user_agent"`
	MaxBodyBytes      int64         `yaml:"max_body_bytes"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
	Burst             int           `yaml:"burst"`
}

// CacheConfig configures the data-source result cache
type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	TTL     time.Duration `yaml:"ttl"`
}

// LLMConfig configures the completion provider
type LLMConfig struct {
	Provider    string  `yaml:"provider"` // "openai", "deepseek", "ollama"
	Model       string  `yaml:"model"`
	APIKey      string  `yaml:"-"` // Env only, never written to disk
	BaseURL     string  `yaml:"base_url"`
	Timeout     int     `yaml:"timeout"` // seconds
	Temperature float32 `yaml:"temperature"`
	TopP        float32 `yaml:"top_p"`
	MaxTokens   int     `yaml:"max_tokens"`
}

// ComposeConfig configures style composition and the event search loop
type ComposeConfig struct {
	// Baity enrichment channel weights; normalized at use
	WeatherWeight  int `yaml:"weather_weight"`
	NewsWeight     int `yaml:"news_weight"`
	LocationWeight int `yaml:"location_weight"`
	GenericWeight  int `yaml:"generic_weight"`

	EventSearchTimeout time.Duration `yaml:"event_search_timeout"`
	EventAttemptDelay  time.Duration `yaml:"event_attempt_delay"`
	EventRadiusMiles   int           `yaml:"event_radius_miles"`
	GeocodeEvents      bool          `yaml:"geocode_events"`
}

// SanitizeConfig configures output cleanup
type SanitizeConfig struct {
	MaxLength          int     `yaml:"max_length"`
	SentenceFloor      int     `yaml:"sentence_floor"`
	HashtagProbability float64 `yaml:"hashtag_probability"`
}

// DataConfig points at the caption corpora on disk
type DataConfig struct {
	Dir        string `yaml:"dir"`
	BaityCSV   string `yaml:"baity_csv"`
	OpinionTXT string `yaml:"opinion_txt"`
	OutputFile string `yaml:"output_file"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Addr:           ":8080",
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		HTTP: HTTPConfig{
			Timeout:           10 * time.Second,
			UserAgent:         "CaptionForge/0.1 (+https://github.com/hazelpaw/captionforge)",
			MaxBodyBytes:      2_000_000,
			RequestsPerSecond: 4,
			Burst:             5,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     5 * time.Minute,
		},
		LLM: LLMConfig{
			Provider:    "deepseek",
			Model:       "deepseek-chat",
			Timeout:     30,
			Temperature: 1.0,
			TopP:        1.0,
			MaxTokens:   300,
		},
		Compose: ComposeConfig{
			WeatherWeight:      20,
			NewsWeight:         20,
			LocationWeight:     10,
			GenericWeight:      50,
			EventSearchTimeout: 5 * time.Second,
			EventAttemptDelay:  500 * time.Millisecond,
			EventRadiusMiles:   25,
			GeocodeEvents:      false,
		},
		Sanitize: SanitizeConfig{
			MaxLength:          280,
			SentenceFloor:      180,
			HashtagProbability: 0.5,
		},
		Data: DataConfig{
			Dir:        "data",
			BaityCSV:   "baity_captions.csv",
			OpinionTXT: "opinion_captions.txt",
			OutputFile: "mixed_style_captions.txt",
		},
	}
}
