package controller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/nguyentantai21042004/deepthink/internal/console"
	"github.com/nguyentantai21042004/deepthink/internal/model"
	"github.com/nguyentantai21042004/deepthink/internal/persistence"
)

const (
	promptInputMethod = "Enter your choice (1/2/3): "
	promptText        = "Enter the text you want to summarize: "
	promptURL         = "Enter the URL: "
	promptFile        = "Enter the file path: "
	promptModel       = "Enter your choice (1/2): "
	promptSaveFile    = "Do you want to save the summary to a file? (yes/no): "
	promptSaveFolder  = "Would you like to save this summary in a specific folder? (yes/no): "
	promptFilename    = "Enter the file name (.txt, or .docx for a Word document): "
	promptFolder      = "Enter the folder name: "
	promptRating      = "Rate the summary (1-5): "
	promptContinue    = "Would you like to summarize more text? (yes/no): "
)

// Run loops through the session states until Terminated. End of input is a
// normal exit. Cancelling ctx interrupts a pending prompt and returns
// ctx.Err().
func (c *implController) Run(ctx context.Context) error {
	if err := c.say("Welcome to the Deep-Think Text Summarizer!", ""); err != nil {
		return err
	}

	st := stateChoosingInputMethod
	t := &turn{}
	for st != stateTerminated {
		if err := ctx.Err(); err != nil {
			return err
		}

		next, err := c.step(ctx, st, t)
		if errors.Is(err, io.EOF) {
			c.logger.Info(ctx, "Input closed in state %s, ending session", st)
			return nil
		}
		if err != nil {
			return fmt.Errorf("%s: %w", st, err)
		}
		c.logger.Debug(ctx, "State %s -> %s", st, next)
		st = next
	}
	return nil
}

func (c *implController) step(ctx context.Context, st state, t *turn) (state, error) {
	switch st {
	case stateChoosingInputMethod:
		return c.chooseInputMethod(ctx, t)
	case stateAcquiringInput:
		return c.acquireInput(ctx, t)
	case stateChoosingModel:
		return c.chooseModel(ctx, t)
	case stateProcessing:
		return c.process(ctx, t)
	case stateDisplayingResults:
		return c.display(ctx, t)
	case stateOptionalPersistence:
		return c.persist(ctx, t)
	case stateRating:
		return c.rate(ctx, t)
	case stateContinueDecision:
		return c.decideContinue(ctx)
	default:
		return stateTerminated, nil
	}
}

func (c *implController) chooseInputMethod(ctx context.Context, t *turn) (state, error) {
	if err := c.say("Choose input method:", "1. Enter text", "2. Summarize from URL", "3. Summarize from file"); err != nil {
		return 0, err
	}
	answer, err := c.console.ReadLine(ctx, promptInputMethod)
	if err != nil {
		return 0, err
	}

	method, err := parseInputMethod(strings.TrimSpace(answer))
	if err != nil {
		return stateChoosingInputMethod, c.say("Invalid choice. Try again.")
	}

	*t = turn{method: method, session: model.NewSession()}
	return stateAcquiringInput, nil
}

func (c *implController) acquireInput(ctx context.Context, t *turn) (state, error) {
	text, err := c.acquire(ctx, t.method)
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		return 0, err
	}
	if err != nil {
		c.logger.Warn(ctx, "Input acquisition failed: %v", err)
		return stateChoosingInputMethod, c.say(console.Error("Error: "+err.Error()), "")
	}

	t.session.RawText = text
	return stateChoosingModel, nil
}

func (c *implController) acquire(ctx context.Context, method inputMethod) (string, error) {
	switch method {
	case inputURL:
		url, err := c.ask(ctx, promptURL)
		if err != nil {
			return "", err
		}
		return c.fetcher.Fetch(ctx, strings.TrimSpace(url))
	case inputFile:
		path, err := c.ask(ctx, promptFile)
		if err != nil {
			return "", err
		}
		return c.readInputFile(strings.TrimSpace(path))
	default:
		return c.ask(ctx, promptText)
	}
}

func (c *implController) readInputFile(path string) (string, error) {
	data, err := c.readFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", &model.FileNotFoundError{Path: path}
	}
	if err != nil {
		return "", fmt.Errorf("read input file: %w", err)
	}
	return string(data), nil
}

func (c *implController) chooseModel(ctx context.Context, t *turn) (state, error) {
	if c.opts.SingleBackend {
		t.session.Backend = c.opts.DefaultBackend
		return stateProcessing, nil
	}

	if err := c.say("", "Choose model for summarization:", "1. Gemini", "2. OpenAI"); err != nil {
		return 0, err
	}
	answer, err := c.console.ReadLine(ctx, promptModel)
	if err != nil {
		return 0, err
	}
	t.session.Backend = model.ParseBackendChoice(strings.TrimSpace(answer))
	return stateProcessing, nil
}

func (c *implController) process(ctx context.Context, t *turn) (state, error) {
	if err := c.say("", "Processing...", ""); err != nil {
		return 0, err
	}
	if err := c.pipeline.Process(ctx, t.session); err != nil {
		return 0, err
	}
	return stateDisplayingResults, c.say(fmt.Sprintf("Summary generated in %.2f seconds.", t.session.Elapsed.Seconds()))
}

func (c *implController) display(ctx context.Context, t *turn) (state, error) {
	s := t.session
	if err := c.say(console.Heading("Original Text:")); err != nil {
		return 0, err
	}
	if err := c.say(c.wrap(s.RawText)...); err != nil {
		return 0, err
	}
	if err := c.say("", console.Heading("Summarized Text:")); err != nil {
		return 0, err
	}

	if !s.Summary.IsOK() {
		if err := c.say(console.Error(s.Summary.String()), ""); err != nil {
			return 0, err
		}
		c.recorder.Record(ctx, s)
		return stateContinueDecision, nil
	}

	if err := c.say(c.wrap(s.Summary.Text())...); err != nil {
		return 0, err
	}
	if err := c.say(""); err != nil {
		return 0, err
	}
	if s.Report == nil {
		return stateOptionalPersistence, nil
	}

	r := s.Report
	lines := []string{
		fmt.Sprintf("Sentiment - Polarity: %.2f, Subjectivity: %.2f", r.Polarity, r.Subjectivity),
		fmt.Sprintf("Readability Score (Flesch): %.2f", r.Readability),
		"Most common words in summary: " + formatTopWords(r.TopWords),
	}
	if len(r.Degraded) > 0 {
		lines = append(lines, console.Muted("Unavailable (shown as neutral): "+strings.Join(r.Degraded, ", ")))
	}
	return stateOptionalPersistence, c.say(lines...)
}

func (c *implController) persist(ctx context.Context, t *turn) (state, error) {
	summary := t.session.Summary.Text()

	answer, err := c.console.ReadLine(ctx, promptSaveFile)
	if err != nil {
		return 0, err
	}
	if isYes(answer) {
		filename, err := c.console.ReadLine(ctx, promptFilename)
		if err != nil {
			return 0, err
		}
		filename = strings.TrimSpace(filename)
		if filename == "" {
			err = c.say("No file name given, summary not saved.")
		} else {
			err = c.reportSave(ctx, filename, persistence.Save(summary, filename))
		}
		if errors.Is(err, errUnrecoverable) {
			c.recorder.Record(ctx, t.session)
			return stateTerminated, nil
		}
		if err != nil {
			return 0, err
		}
	}

	answer, err = c.console.ReadLine(ctx, promptSaveFolder)
	if err != nil {
		return 0, err
	}
	if isYes(answer) {
		folder, err := c.console.ReadLine(ctx, promptFolder)
		if err != nil {
			return 0, err
		}
		filename, err := c.console.ReadLine(ctx, promptFilename)
		if err != nil {
			return 0, err
		}
		folder, filename = strings.TrimSpace(folder), strings.TrimSpace(filename)
		if folder == "" || filename == "" {
			err = c.say("No folder or file name given, summary not saved.")
		} else {
			path, saveErr := persistence.SaveInFolder(summary, folder, filename)
			err = c.reportSave(ctx, path, saveErr)
		}
		if errors.Is(err, errUnrecoverable) {
			c.recorder.Record(ctx, t.session)
			return stateTerminated, nil
		}
		if err != nil {
			return 0, err
		}
	}

	return stateRating, nil
}

var errUnrecoverable = errors.New("unrecoverable save failure")

// reportSave shows the outcome of a save. It returns errUnrecoverable when
// the environment can take no more writes.
func (c *implController) reportSave(ctx context.Context, path string, saveErr error) error {
	if saveErr == nil {
		return c.say("Summary saved to " + path)
	}

	c.logger.Error(ctx, "Save failed: %v", saveErr)
	if err := c.say(console.Error("Error: could not save summary: " + saveErr.Error())); err != nil {
		return err
	}
	if persistence.IsUnrecoverable(saveErr) {
		if err := c.say("The disk cannot take further writes. Ending the session."); err != nil {
			return err
		}
		return errUnrecoverable
	}
	return nil
}

func (c *implController) rate(ctx context.Context, t *turn) (state, error) {
	answer, err := c.console.ReadLine(ctx, promptRating)
	if err != nil {
		return 0, err
	}

	rating, err := model.ParseRating(answer)
	if err != nil {
		return stateRating, c.say(console.Error(err.Error()))
	}

	t.session.SetRating(rating)
	c.recorder.Record(ctx, t.session)
	return stateContinueDecision, c.say(fmt.Sprintf("Thank you for rating the summary: %d/%d", rating, model.MaxRating))
}

func (c *implController) decideContinue(ctx context.Context) (state, error) {
	answer, err := c.ask(ctx, promptContinue)
	if err != nil {
		return 0, err
	}
	if isYes(answer) {
		return stateChoosingInputMethod, nil
	}
	return stateTerminated, c.say("Goodbye!")
}

// ask prints a blank line before prompting.
func (c *implController) ask(ctx context.Context, prompt string) (string, error) {
	if err := c.say(""); err != nil {
		return "", err
	}
	return c.console.ReadLine(ctx, prompt)
}

func (c *implController) say(lines ...string) error {
	for _, l := range lines {
		if err := c.console.WriteLine(l); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}

func (c *implController) wrap(text string) []string {
	return console.Wrap(text, c.opts.Width)
}

// isYes is the literal affirmative check every yes/no prompt uses.
func isYes(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), "yes")
}

func formatTopWords(words []model.WordCount) string {
	parts := make([]string, 0, len(words))
	for _, w := range words {
		parts = append(parts, fmt.Sprintf("%s (%d)", w.Word, w.Count))
	}
	return strings.Join(parts, ", ")
}
