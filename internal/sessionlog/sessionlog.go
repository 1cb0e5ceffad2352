// Package sessionlog keeps the append-only record of completed sessions.
package sessionlog

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/nguyentantai21042004/deepthink/internal/logger"
	"github.com/nguyentantai21042004/deepthink/internal/model"
)

const (
	// ExcerptLen is how many characters of the input and the summary are kept.
	ExcerptLen = 100
	// TimeFormat matches "2024-05-01 14:03:07,512".
	TimeFormat = "2006-01-02 15:04:05,000"
)

// Separator closes every session record.
var Separator = strings.Repeat("=", 100)

// Recorder appends one record per session.
type Recorder interface {
	Record(ctx context.Context, s *model.Session)
}

type implRecorder struct {
	mu     sync.Mutex
	sink   io.Writer
	logger logger.Logger
	now    func() time.Time
}

// New creates a Recorder writing to sink. Write failures are reported on log
// and never returned.
func New(sink io.Writer, log logger.Logger) Recorder {
	return &implRecorder{
		sink:   sink,
		logger: log,
		now:    time.Now,
	}
}

// OpenFile opens path for appending, creating it and its directory if
// needed.
func OpenFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open session log: %w", err)
	}
	return f, nil
}

// Record writes the session as one block of lines in a single write.
func (r *implRecorder) Record(ctx context.Context, s *model.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ts := r.now().Format(TimeFormat)
	var buf bytes.Buffer
	line := func(level, msg string, args ...interface{}) {
		fmt.Fprintf(&buf, "%s - %s - %s\n", ts, level, fmt.Sprintf(msg, args...))
	}

	line("INFO", "Session: %s", s.ID)
	line("INFO", "Model used: %s", s.Backend)
	line("INFO", "Original Text: %s", Excerpt(s.RawText))
	if s.Summary.IsOK() {
		line("INFO", "Summary: %s", Excerpt(s.Summary.Text()))
	} else {
		line("ERROR", "Summary: %s", Excerpt(s.Summary.String()))
	}
	if s.Rating != nil {
		line("INFO", "Rating: %d/%d", *s.Rating, model.MaxRating)
	}
	line("INFO", "%s", Separator)

	if _, err := r.sink.Write(buf.Bytes()); err != nil {
		r.logger.Warn(ctx, "Failed to write session log: %v", err)
	}
}

// Excerpt keeps the first ExcerptLen characters of s and appends "...".
func Excerpt(s string) string {
	runes := []rune(s)
	if len(runes) > ExcerptLen {
		runes = runes[:ExcerptLen]
	}
	return string(runes) + "..."
}
