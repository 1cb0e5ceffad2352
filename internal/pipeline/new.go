package pipeline

import (
	"github.com/nguyentantai21042004/deepthink/internal/analysis"
	"github.com/nguyentantai21042004/deepthink/internal/logger"
	"github.com/nguyentantai21042004/deepthink/internal/summarizer"
)

// Options are the per-request parameters shared by every session.
type Options struct {
	MinLen         int
	MaxLen         int
	StripStopwords bool
	MaxConcurrent  int
}

type implPipeline struct {
	opts       Options
	summarizer summarizer.Summarizer
	analysis   analysis.Suite
	logger     logger.Logger
	sem        *semaphore
}

// New creates a Pipeline.
func New(opts Options, sum summarizer.Summarizer, suite analysis.Suite, log logger.Logger) Pipeline {
	return &implPipeline{
		opts:       opts,
		summarizer: sum,
		analysis:   suite,
		logger:     log,
		sem:        newSemaphore(opts.MaxConcurrent),
	}
}
