package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Mode selects how the pipeline talks to the outside world.
type Mode string

const (
	// ModeOffline serves canned search results and deterministic synthesis.
	ModeOffline Mode = "offline"
	// ModeLive uses the real search backend and the generative model.
	ModeLive Mode = "live"
)

type Config struct {
	Mode Mode `yaml:"mode"`

	// OpenAIKey is read from OPENAI_API_KEY when empty. Required in live mode.
	OpenAIKey string `yaml:"openai_key"`
	Model     string `yaml:"model"`

	MaxResults  int `yaml:"max_results"`
	NumQueries  int `yaml:"num_queries"`
	MaxKeywords int `yaml:"max_keywords"`

	// ContentCharBudget caps the combined text sent to the model.
	ContentCharBudget int     `yaml:"content_char_budget"`
	MaxTokens         int     `yaml:"max_tokens"`
	Temperature       float64 `yaml:"temperature"`

	MaxRetries     int           `yaml:"max_retries"`
	RetryBaseDelay time.Duration `yaml:"retry_base_delay"`
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// UseFallbackOnError switches the search provider to offline data for the
	// rest of its lifetime once live retries are exhausted.
	UseFallbackOnError bool `yaml:"use_fallback_on_error"`

	// EnrichContent fetches full article text for thin live snippets.
	EnrichContent bool `yaml:"enrich_content"`

	ReportsDir string `yaml:"reports_dir"`
	AppPort    int    `yaml:"app_port"`
}

func Default() *Config {
	return &Config{
		Mode:               ModeOffline,
		Model:              "gpt-3.5-turbo",
		MaxResults:         5,
		NumQueries:         3,
		MaxKeywords:        10,
		ContentCharBudget:  3000,
		MaxTokens:          2000,
		Temperature:        0.7,
		MaxRetries:         3,
		RetryBaseDelay:     2 * time.Second,
		RequestTimeout:     10 * time.Second,
		UseFallbackOnError: true,
		ReportsDir:         "data/reports",
		AppPort:            8080,
	}
}

// Load reads configuration from an optional YAML file, then applies
// environment overrides. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if cfg.OpenAIKey == "" {
		cfg.OpenAIKey = strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	}

	return cfg, nil
}

// Validate is called once at startup. Live mode without a usable credential
// is fatal; nothing later in the pipeline re-checks it.
func (c *Config) Validate() error {
	if c.Mode != ModeOffline && c.Mode != ModeLive {
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	if c.MaxResults < 0 {
		return fmt.Errorf("max_results must be >= 0, got %d", c.MaxResults)
	}
	if c.NumQueries < 1 {
		return fmt.Errorf("num_queries must be >= 1, got %d", c.NumQueries)
	}
	if c.Mode == ModeLive {
		if c.OpenAIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required in live mode")
		}
		if !strings.HasPrefix(c.OpenAIKey, "sk-") {
			return fmt.Errorf("openai key should start with sk-")
		}
	}
	if err := os.MkdirAll(c.ReportsDir, 0755); err != nil {
		return fmt.Errorf("create reports dir: %w", err)
	}
	return nil
}
