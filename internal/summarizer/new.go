package summarizer

import (
	"time"

	"github.com/nguyentantai21042004/deepthink/internal/logger"
)

type implSummarizer struct {
	registry *Registry
	timeout  time.Duration
	logger   logger.Logger
}

// New creates a Summarizer over registry. A positive timeout bounds every
// backend call.
func New(registry *Registry, timeout time.Duration, log logger.Logger) Summarizer {
	return &implSummarizer{
		registry: registry,
		timeout:  timeout,
		logger:   log,
	}
}
