package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty config gets defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "explicit bounds",
			config: Config{
				Summarize: SummarizeConfig{MinLength: 10, MaxLength: 60},
			},
			wantErr: false,
		},
		{
			name: "max not above min",
			config: Config{
				Summarize: SummarizeConfig{MinLength: 80, MaxLength: 60},
			},
			wantErr: true,
		},
		{
			name: "negative min",
			config: Config{
				Summarize: SummarizeConfig{MinLength: -1, MaxLength: 60},
			},
			wantErr: true,
		},
		{
			name: "unknown watch backend",
			config: Config{
				Watch: WatchConfig{Backend: "bart"},
			},
			wantErr: true,
		},
		{
			name: "negative timeout",
			config: Config{
				Fetch: FetchConfig{Timeout: -time.Second},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			assert.Equal(t, tt.wantErr, err != nil, "Validate() error = %v", err)
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{}
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 25, cfg.Summarize.MinLength)
	assert.Equal(t, 150, cfg.Summarize.MaxLength)
	assert.Equal(t, 2*time.Minute, cfg.Summarize.Timeout)
	assert.Equal(t, 30*time.Second, cfg.Fetch.Timeout)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.Equal(t, "summarizer.log", cfg.Paths.SessionLog)
	assert.Equal(t, 1, cfg.Performance.MaxConcurrent)
	assert.False(t, cfg.Summarize.KeepStopwords)
}

func TestLoad(t *testing.T) {
	t.Setenv("GEMINI_API_KEYS", "key-one, key-two,,")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	path := filepath.Join(t.TempDir(), "deepthink.yaml")
	content := `
summarize:
  min_length: 30
  max_length: 120
  keep_stopwords: true
  timeout: 45s

gemini:
  model: "gemini-2.0-flash"

openai:
  model: "llama3"
  base_url: "http://localhost:11434/v1"

interactive:
  single_backend: true
  default_backend: openai

paths:
  session_log: "logs/run.log"

logging:
  level: "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Summarize.MinLength)
	assert.Equal(t, 120, cfg.Summarize.MaxLength)
	assert.True(t, cfg.Summarize.KeepStopwords)
	assert.Equal(t, 45*time.Second, cfg.Summarize.Timeout)
	assert.Equal(t, "gemini-2.0-flash", cfg.Gemini.Model)
	assert.Equal(t, []string{"key-one", "key-two"}, cfg.Gemini.APIKeys)
	assert.Equal(t, "sk-test", cfg.OpenAI.APIKey)
	assert.Equal(t, "llama3", cfg.OpenAI.Model)
	assert.True(t, cfg.Interactive.SingleBackend)
	assert.Equal(t, "openai", cfg.Interactive.DefaultBackend)
	assert.Equal(t, "logs/run.log", cfg.Paths.SessionLog)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 150, cfg.Summarize.MaxLength)
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("summarize: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadSingleGeminiKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEYS", "")
	t.Setenv("GEMINI_API_KEY", "solo")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, []string{"solo"}, cfg.Gemini.APIKeys)
}
