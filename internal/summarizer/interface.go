package summarizer

import (
	"context"

	"github.com/nguyentantai21042004/deepthink/internal/model"
)

// Backend is a summarization capability: it turns text into a summary of
// roughly minLen to maxLen words, or fails.
type Backend interface {
	Summarize(ctx context.Context, text string, minLen, maxLen int) (string, error)
}

// Summarizer dispatches requests to backends. It never returns an error:
// every failure is reported through the SummaryResult.
type Summarizer interface {
	Summarize(ctx context.Context, req model.SummaryRequest) model.SummaryResult
}

// Factory builds a Backend on first use.
type Factory func(ctx context.Context) (Backend, error)
