package model

import (
	"time"

	"github.com/google/uuid"
)

// Session is the state of one pass through the interactive loop. Each stage
// fills in its fields; nothing outlives the iteration except what the session
// log and explicit saves write to disk.
type Session struct {
	ID            string
	RawText       string
	ProcessedText string
	Backend       BackendID
	Summary       SummaryResult
	Report        *AnalysisReport
	Rating        *int
	Elapsed       time.Duration
}

// NewSession starts a session with a fresh id.
func NewSession() *Session {
	return &Session{ID: uuid.NewString()}
}

// SetRating stores a validated rating.
func (s *Session) SetRating(r int) {
	s.Rating = &r
}
