package summarizer

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/deepthink/internal/logger"
)

const summaryPrompt = `Summarize the text below in plain prose.

Requirements:
- Use between %d and %d words
- Keep names, numbers and technical terms as written
- Do not add a title, bullet points or commentary

Text:
---
%s
---`

// generateFunc calls the Gemini API with one key.
type generateFunc func(ctx context.Context, apiKey, model, prompt string) (string, error)

// GeminiBackend is backend A. It rotates through the supplied API keys when
// a key is rate limited.
type GeminiBackend struct {
	mu         sync.Mutex
	apiKeys    []string
	currentKey int
	model      string
	logger     logger.Logger
	generate   generateFunc
}

// NewGeminiBackend creates a Gemini backend. At least one API key is
// required.
func NewGeminiBackend(apiKeys []string, model string, log logger.Logger) (*GeminiBackend, error) {
	if len(apiKeys) == 0 {
		return nil, fmt.Errorf("no Gemini API key configured (set GEMINI_API_KEYS)")
	}
	return &GeminiBackend{
		apiKeys:  apiKeys,
		model:    model,
		logger:   log,
		generate: generateContent,
	}, nil
}

// Summarize sends the text to Gemini and returns the summary text.
// Rotates API keys on 429 / quota errors. The lock covers key selection
// only, so concurrent calls reach the API in parallel.
func (g *GeminiBackend) Summarize(ctx context.Context, text string, minLen, maxLen int) (string, error) {
	prompt := fmt.Sprintf(summaryPrompt, minLen, maxLen, text)

	var lastErr error
	for range len(g.apiKeys) {
		idx, key := g.current()

		summary, err := g.generate(ctx, key, g.model, prompt)
		if err != nil {
			if isQuotaError(err) {
				g.logger.Warn(ctx, "Key %d rate limited, rotating...", idx+1)
				g.rotateFrom(idx)
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}
		return summary, nil
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (g *GeminiBackend) current() (int, string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.currentKey, g.apiKeys[g.currentKey]
}

// rotateFrom moves past key idx unless another call already has.
func (g *GeminiBackend) rotateFrom(idx int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.currentKey == idx {
		g.currentKey = (g.currentKey + 1) % len(g.apiKeys)
	}
}

func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

func generateContent(ctx context.Context, apiKey, model, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	result, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text strings.Builder
		for _, part := range result.Candidates[0].Content.Parts {
			if part.Text != "" {
				text.WriteString(part.Text)
			}
		}
		return text.String(), nil
	}

	return "", fmt.Errorf("empty response from Gemini")
}
