// Package analysis enriches a summary with sentiment, readability and word
// frequency figures.
package analysis

import (
	"context"

	"github.com/nguyentantai21042004/deepthink/internal/model"
)

// SentimentScorer returns polarity in [-1,1] and subjectivity in [0,1].
type SentimentScorer interface {
	Sentiment(ctx context.Context, text string) (polarity, subjectivity float64, err error)
}

// ReadabilityScorer returns a single readability score, higher is easier.
type ReadabilityScorer interface {
	Readability(ctx context.Context, text string) (float64, error)
}

// Suite composes the analyses into a report.
type Suite interface {
	Analyze(ctx context.Context, summary string) model.AnalysisReport
}
