package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/deepthink/internal/logger"
	"github.com/nguyentantai21042004/deepthink/internal/model"
	"github.com/nguyentantai21042004/deepthink/internal/persistence"
	"github.com/nguyentantai21042004/deepthink/internal/pipeline"
	"github.com/nguyentantai21042004/deepthink/internal/sessionlog"
)

type HandlerOptions struct {
	Backend     model.BackendID
	OutputDir   string
	ArchivedDir string
	// Docx also writes a Word copy of each summary.
	Docx bool
}

// NewSummaryHandler returns an EventHandler that summarizes one inbox file,
// saves <name>.summary.txt into OutputDir, records the session and moves the
// source into ArchivedDir. A file whose summary fails stays in the inbox.
func NewSummaryHandler(opts HandlerOptions, pipe pipeline.Pipeline, rec sessionlog.Recorder, log logger.Logger) EventHandler {
	return func(ctx context.Context, path string) error {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		s := model.NewSession()
		s.RawText = string(data)
		s.Backend = opts.Backend

		if err := pipe.Process(ctx, s); err != nil {
			return fmt.Errorf("process: %w", err)
		}
		rec.Record(ctx, s)

		if !s.Summary.IsOK() {
			return fmt.Errorf("summarize: %s", s.Summary.Reason())
		}

		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		out, err := persistence.SaveInFolder(s.Summary.Text(), opts.OutputDir, name+".summary.txt")
		if err != nil {
			return fmt.Errorf("save summary: %w", err)
		}
		log.Info(ctx, "Summary saved: %s (%.2fs)", out, s.Elapsed.Seconds())

		if opts.Docx {
			docx, err := persistence.SaveInFolder(s.Summary.Text(), opts.OutputDir, name+".summary.docx")
			if err != nil {
				log.Warn(ctx, "Failed to write Word copy: %v", err)
			} else {
				log.Info(ctx, "Word copy saved: %s", docx)
			}
		}

		if err := archive(path, opts.ArchivedDir); err != nil {
			return err
		}
		log.Debug(ctx, "Archived %s", path)
		return nil
	}
}

func archive(path, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create archive dir: %w", err)
	}
	if err := os.Rename(path, filepath.Join(dir, filepath.Base(path))); err != nil {
		return fmt.Errorf("archive input: %w", err)
	}
	return nil
}
