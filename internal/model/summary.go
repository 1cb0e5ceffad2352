package model

import (
	"fmt"
	"strings"
)

// Default length bounds passed to the backends.
const (
	DefaultMinLen = 25
	DefaultMaxLen = 150
)

// SummaryRequest is the input to the summarization dispatcher.
type SummaryRequest struct {
	Text    string
	Backend BackendID
	MinLen  int
	MaxLen  int
}

// Validate checks 0 < MinLen < MaxLen.
func (r SummaryRequest) Validate() error {
	if r.MinLen <= 0 {
		return fmt.Errorf("min length must be positive, got %d", r.MinLen)
	}
	if r.MaxLen <= r.MinLen {
		return fmt.Errorf("max length %d must be greater than min length %d", r.MaxLen, r.MinLen)
	}
	return nil
}

// SummaryResult is either a summary text or a failure reason, never both.
type SummaryResult struct {
	text   string
	reason string
	ok     bool
}

// OK wraps a successful summary.
func OK(text string) SummaryResult {
	return SummaryResult{text: text, ok: true}
}

// Failed wraps a failure reason.
func Failed(reason string) SummaryResult {
	return SummaryResult{reason: reason}
}

// IsOK reports whether the result carries a summary.
func (r SummaryResult) IsOK() bool { return r.ok }

// Text returns the summary, or "" for a failed result.
func (r SummaryResult) Text() string { return r.text }

// Reason returns the failure reason, or "" for a successful result.
func (r SummaryResult) Reason() string { return r.reason }

// String renders the result the way it is shown to the user and written to
// the session log.
func (r SummaryResult) String() string {
	if r.ok {
		return r.text
	}
	return "Error: " + strings.TrimSpace(r.reason)
}
