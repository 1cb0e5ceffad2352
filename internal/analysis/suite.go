package analysis

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/nguyentantai21042004/deepthink/internal/logger"
	"github.com/nguyentantai21042004/deepthink/internal/model"
)

// Names used in AnalysisReport.Degraded.
const (
	AnalysisSentiment   = "sentiment"
	AnalysisReadability = "readability"
)

type implSuite struct {
	sentiment   SentimentScorer
	readability ReadabilityScorer
	logger      logger.Logger
}

// New creates a Suite. Either scorer may be nil; its figures are then
// reported as 0 and listed as degraded.
func New(sentiment SentimentScorer, readability ReadabilityScorer, log logger.Logger) Suite {
	return &implSuite{
		sentiment:   sentiment,
		readability: readability,
		logger:      log,
	}
}

// NewDefault creates a Suite with the built-in lexicon and Flesch scorers.
func NewDefault(log logger.Logger) Suite {
	return New(NewLexiconSentiment(), Flesch{}, log)
}

// Analyze runs the three analyses concurrently. A failing scorer never
// aborts the others.
func (s *implSuite) Analyze(ctx context.Context, summary string) model.AnalysisReport {
	var (
		report                              model.AnalysisReport
		sentimentFailed, readabilityFailed bool
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		polarity, subjectivity, err := s.scoreSentiment(gctx, summary)
		if err != nil {
			s.logger.Warn(ctx, "Sentiment analysis unavailable: %v", err)
			sentimentFailed = true
			return nil
		}
		report.Polarity = clamp(polarity, -1, 1)
		report.Subjectivity = clamp(subjectivity, 0, 1)
		return nil
	})

	g.Go(func() error {
		score, err := s.scoreReadability(gctx, summary)
		if err != nil {
			s.logger.Warn(ctx, "Readability analysis unavailable: %v", err)
			readabilityFailed = true
			return nil
		}
		report.Readability = score
		return nil
	})

	g.Go(func() error {
		report.TopWords = TopWords(summary, model.TopWordsLimit)
		return nil
	})

	_ = g.Wait()

	if sentimentFailed {
		report.Degraded = append(report.Degraded, AnalysisSentiment)
	}
	if readabilityFailed {
		report.Degraded = append(report.Degraded, AnalysisReadability)
	}
	return report
}

func (s *implSuite) scoreSentiment(ctx context.Context, text string) (p, subj float64, err error) {
	if s.sentiment == nil {
		return 0, 0, fmt.Errorf("no sentiment scorer configured")
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("sentiment scorer panicked: %v", r)
		}
	}()
	return s.sentiment.Sentiment(ctx, text)
}

func (s *implSuite) scoreReadability(ctx context.Context, text string) (score float64, err error) {
	if s.readability == nil {
		return 0, fmt.Errorf("no readability scorer configured")
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("readability scorer panicked: %v", r)
		}
	}()
	return s.readability.Readability(ctx, text)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
