package pipeline

import (
	"context"

	"github.com/nguyentantai21042004/deepthink/internal/model"
)

// Pipeline runs the processing stage of a session:
// normalize, summarize, analyze.
type Pipeline interface {
	// Process reads s.RawText and s.Backend and fills in ProcessedText,
	// Summary, Report and Elapsed. Summarization and analysis failures are
	// recorded in the session; the only error is a cancelled ctx.
	Process(ctx context.Context, s *model.Session) error
}
