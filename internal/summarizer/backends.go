package summarizer

import (
	"context"

	"github.com/nguyentantai21042004/deepthink/internal/config"
	"github.com/nguyentantai21042004/deepthink/internal/logger"
	"github.com/nguyentantai21042004/deepthink/internal/model"
)

// NewRegistryFromConfig registers both backends from cfg. Neither is built
// until first selected, so a missing key only matters for the backend the
// user actually picks.
func NewRegistryFromConfig(cfg *config.Config, log logger.Logger) *Registry {
	r := NewRegistry()

	r.Register(model.BackendGemini, func(context.Context) (Backend, error) {
		return NewGeminiBackend(cfg.Gemini.APIKeys, cfg.Gemini.Model, log)
	})
	r.Register(model.BackendOpenAI, func(context.Context) (Backend, error) {
		return NewOpenAIBackend(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.OpenAI.Model, cfg.OpenAI.MaxTokens)
	})

	return r
}
