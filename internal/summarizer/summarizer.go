package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/deepthink/internal/model"
)

// Summarize checks the request, calls the selected backend and contains any
// failure in the returned result.
func (s *implSummarizer) Summarize(ctx context.Context, req model.SummaryRequest) model.SummaryResult {
	if strings.TrimSpace(req.Text) == "" {
		return model.Failed(model.ErrEmptyInput.Error())
	}
	if err := req.Validate(); err != nil {
		return model.Failed(err.Error())
	}

	text, err := s.call(ctx, req)
	if err != nil {
		berr := &model.BackendError{Backend: req.Backend, Message: err.Error()}
		s.logger.Error(ctx, "Summarization failed: %v", berr)
		return model.Failed(berr.Message)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		s.logger.Warn(ctx, "Backend %s returned an empty summary", req.Backend)
		return model.Failed(fmt.Sprintf("backend %s returned an empty summary", req.Backend))
	}

	return model.OK(text)
}

func (s *implSummarizer) call(ctx context.Context, req model.SummaryRequest) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("backend panicked: %v", r)
		}
	}()

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	backend, err := s.registry.Get(ctx, req.Backend)
	if err != nil {
		return "", err
	}

	s.logger.Debug(ctx, "Calling backend %s (%d chars, length %d-%d)",
		req.Backend, len(req.Text), req.MinLen, req.MaxLen)

	text, err = backend.Summarize(ctx, req.Text, req.MinLen, req.MaxLen)
	if err != nil && errors.Is(err, context.DeadlineExceeded) {
		return "", fmt.Errorf("timed out after %s: %w", s.timeout, err)
	}
	return text, err
}
