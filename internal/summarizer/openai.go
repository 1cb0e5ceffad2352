package summarizer

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// OpenAIBackend is backend B: any OpenAI-compatible chat completion API
// (OpenAI, Ollama, DeepSeek, ...).
type OpenAIBackend struct {
	client    *openai.Client
	model     string
	maxTokens int
}

// NewOpenAIBackend creates backend B. The API key may be empty for local
// servers when baseURL is set.
func NewOpenAIBackend(apiKey, baseURL, model string, maxTokens int) (*OpenAIBackend, error) {
	if apiKey == "" && baseURL == "" {
		return nil, fmt.Errorf("no OpenAI API key configured (set OPENAI_API_KEY or openai.base_url)")
	}

	clientConfig := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientConfig.BaseURL = baseURL
	}

	return &OpenAIBackend{
		client:    openai.NewClientWithConfig(clientConfig),
		model:     model,
		maxTokens: maxTokens,
	}, nil
}

// Summarize asks the chat model for a summary of text.
func (o *OpenAIBackend) Summarize(ctx context.Context, text string, minLen, maxLen int) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       o.model,
		MaxTokens:   o.maxTokens,
		Temperature: 0.2,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(summaryPrompt, minLen, maxLen, text),
			},
		},
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from %s", o.model)
	}

	return resp.Choices[0].Message.Content, nil
}
