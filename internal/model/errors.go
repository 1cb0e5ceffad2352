package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrEmptyInput is the reason reported when empty text reaches the
// dispatcher.
var ErrEmptyInput = errors.New("empty input")

// BackendError is a failure of a summarization backend.
type BackendError struct {
	Backend BackendID
	Message string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend %s: %s", e.Backend, e.Message)
}

// FetchError is a URL retrieval or parse failure.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// FileNotFoundError reports a missing input file.
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("file does not exist: %s", e.Path)
}

// InvalidChoiceError reports an unrecognized menu selection.
type InvalidChoiceError struct {
	Value string
}

func (e *InvalidChoiceError) Error() string {
	return fmt.Sprintf("invalid choice %q", e.Value)
}

// RatingRangeError reports a rating that is not an integer in [1,5].
type RatingRangeError struct {
	Input string
}

func (e *RatingRangeError) Error() string {
	return fmt.Sprintf("rating must be a whole number from %d to %d, got %q", MinRating, MaxRating, e.Input)
}

// Rating bounds.
const (
	MinRating = 1
	MaxRating = 5
)

// ParseRating parses and validates a rating answer.
func ParseRating(input string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < MinRating || n > MaxRating {
		return 0, &RatingRangeError{Input: input}
	}
	return n, nil
}
