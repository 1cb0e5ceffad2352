package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file read when no --config flag is given.
const DefaultPath = "deepthink.yaml"

type Config struct {
	Summarize   SummarizeConfig   `yaml:"summarize"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	OpenAI      OpenAIConfig      `yaml:"openai"`
	Fetch       FetchConfig       `yaml:"fetch"`
	Interactive InteractiveConfig `yaml:"interactive"`
	Watch       WatchConfig       `yaml:"watch"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Display     DisplayConfig     `yaml:"display"`
}

type SummarizeConfig struct {
	MinLength     int           `yaml:"min_length"`
	MaxLength     int           `yaml:"max_length"`
	KeepStopwords bool          `yaml:"keep_stopwords"`
	Timeout       time.Duration `yaml:"timeout"`
}

type GeminiConfig struct {
	Model   string   `yaml:"model"`
	APIKeys []string `yaml:"-"`
}

type OpenAIConfig struct {
	Model     string `yaml:"model"`
	BaseURL   string `yaml:"base_url"`
	MaxTokens int    `yaml:"max_tokens"`
	APIKey    string `yaml:"-"`
}

type FetchConfig struct {
	Timeout time.Duration `yaml:"timeout"`
}

type InteractiveConfig struct {
	// SingleBackend skips the model menu and always uses DefaultBackend.
	SingleBackend  bool   `yaml:"single_backend"`
	DefaultBackend string `yaml:"default_backend"`
}

type WatchConfig struct {
	Backend string `yaml:"backend"`
	Docx    bool   `yaml:"docx"`
}

type PathsConfig struct {
	SessionLog string `yaml:"session_log"`
	Inbox      string `yaml:"inbox"`
	Output     string `yaml:"output"`
	Archived   string `yaml:"archived"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type DisplayConfig struct {
	// Width wraps displayed text; 0 means the terminal width.
	Width int `yaml:"width"`
}

// Load reads the YAML file at path (a missing file yields defaults), pulls
// secrets from the environment and an optional .env file, then validates.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if keys := parseStringSlice(os.Getenv("GEMINI_API_KEYS")); len(keys) > 0 {
		c.Gemini.APIKeys = keys
	} else if key := strings.TrimSpace(os.Getenv("GEMINI_API_KEY")); key != "" {
		c.Gemini.APIKeys = []string{key}
	}
	if key := strings.TrimSpace(os.Getenv("OPENAI_API_KEY")); key != "" {
		c.OpenAI.APIKey = key
	}
	if base := strings.TrimSpace(os.Getenv("OPENAI_BASE_URL")); base != "" {
		c.OpenAI.BaseURL = base
	}
}

// Validate checks the length bounds and fills in defaults for everything
// left unset.
func (c *Config) Validate() error {
	if c.Summarize.MinLength == 0 {
		c.Summarize.MinLength = 25
	}
	if c.Summarize.MaxLength == 0 {
		c.Summarize.MaxLength = 150
	}
	if c.Summarize.MinLength < 0 {
		return fmt.Errorf("summarize.min_length must be positive")
	}
	if c.Summarize.MaxLength <= c.Summarize.MinLength {
		return fmt.Errorf("summarize.max_length must be greater than summarize.min_length")
	}
	if c.Summarize.Timeout < 0 || c.Fetch.Timeout < 0 {
		return fmt.Errorf("timeouts must not be negative")
	}
	if !isBackendName(c.Interactive.DefaultBackend) {
		return fmt.Errorf("interactive.default_backend %q is not one of gemini, openai", c.Interactive.DefaultBackend)
	}
	if !isBackendName(c.Watch.Backend) {
		return fmt.Errorf("watch.backend %q is not one of gemini, openai", c.Watch.Backend)
	}

	if c.Summarize.Timeout == 0 {
		c.Summarize.Timeout = 2 * time.Minute
	}
	if c.Fetch.Timeout == 0 {
		c.Fetch.Timeout = 30 * time.Second
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "gpt-4o-mini"
	}
	if c.OpenAI.MaxTokens == 0 {
		c.OpenAI.MaxTokens = 512
	}
	if c.Paths.SessionLog == "" {
		c.Paths.SessionLog = "summarizer.log"
	}
	if c.Paths.Inbox == "" {
		c.Paths.Inbox = "data/inbox"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/summaries"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent <= 0 {
		c.Performance.MaxConcurrent = 1
	}

	return nil
}

func isBackendName(name string) bool {
	return name == "" || name == "gemini" || name == "openai"
}

// parseStringSlice parses a comma-separated list, dropping blanks.
func parseStringSlice(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
