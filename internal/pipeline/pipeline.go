package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/deepthink/internal/model"
	"github.com/nguyentantai21042004/deepthink/internal/normalizer"
)

// Process orchestrates the processing stage of one session.
func (p *implPipeline) Process(ctx context.Context, s *model.Session) error {
	if err := p.sem.acquire(ctx); err != nil {
		return fmt.Errorf("wait for pipeline slot: %w", err)
	}
	defer p.sem.release()

	startTime := time.Now()
	p.logger.Info(ctx, "Processing session %s with %s (%d chars)", s.ID, s.Backend, len(s.RawText))

	// Step 1: Normalize
	s.ProcessedText = normalizer.Normalize(s.RawText, p.opts.StripStopwords)
	p.logger.Debug(ctx, "Normalized %d -> %d chars", len(s.RawText), len(s.ProcessedText))

	// Step 2: Summarize
	s.Summary = p.summarizer.Summarize(ctx, model.SummaryRequest{
		Text:    s.ProcessedText,
		Backend: s.Backend,
		MinLen:  p.opts.MinLen,
		MaxLen:  p.opts.MaxLen,
	})

	// Step 3: Analyze the summary
	if s.Summary.IsOK() {
		report := p.analysis.Analyze(ctx, s.Summary.Text())
		s.Report = &report
	} else {
		p.logger.Warn(ctx, "Session %s produced no summary: %s", s.ID, s.Summary.Reason())
	}

	s.Elapsed = time.Since(startTime)
	p.logger.Info(ctx, "Session %s processed in %s", s.ID, s.Elapsed)

	return ctx.Err()
}
