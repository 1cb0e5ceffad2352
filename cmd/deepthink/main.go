package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/deepthink/internal/analysis"
	"github.com/nguyentantai21042004/deepthink/internal/config"
	"github.com/nguyentantai21042004/deepthink/internal/console"
	"github.com/nguyentantai21042004/deepthink/internal/controller"
	"github.com/nguyentantai21042004/deepthink/internal/fetcher"
	"github.com/nguyentantai21042004/deepthink/internal/logger"
	"github.com/nguyentantai21042004/deepthink/internal/model"
	"github.com/nguyentantai21042004/deepthink/internal/pipeline"
	"github.com/nguyentantai21042004/deepthink/internal/sessionlog"
	"github.com/nguyentantai21042004/deepthink/internal/summarizer"
	"github.com/nguyentantai21042004/deepthink/internal/watcher"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "deepthink",
		Short: "Interactive text summarizer",
		Long: `deepthink summarizes text typed in, fetched from a URL or read from a
file, scores the summary for sentiment and readability, and logs every
session to a file.`,
		SilenceUsage: true,
		RunE:         runInteractive,
	}

	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Path to the YAML config file")
	rootCmd.PersistentFlags().String("log-level", "", "Override logging.level (debug, info, warn, error)")

	rootCmd.AddCommand(newWatchCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app holds the collaborators both commands share.
type app struct {
	cfg      *config.Config
	log      logger.Logger
	pipeline pipeline.Pipeline
	recorder sessionlog.Recorder
	logFile  *os.File
}

func newAppFromFlags(cmd *cobra.Command) (*app, error) {
	path, _ := cmd.Flags().GetString("config")
	level, _ := cmd.Flags().GetString("log-level")
	return newApp(path, level)
}

// newApp loads the config at path. A non-empty level overrides
// logging.level.
func newApp(path, level string) (*app, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if level != "" {
		cfg.Logging.Level = level
	}

	log := logger.New(cfg.Logging.Level)
	a := &app{cfg: cfg, log: log}

	// An unwritable session log costs the records, not the session.
	var sink io.Writer = io.Discard
	if f, err := sessionlog.OpenFile(cfg.Paths.SessionLog); err != nil {
		log.Warn(context.Background(), "Session log disabled: %v", err)
	} else {
		a.logFile = f
		sink = f
	}
	a.recorder = sessionlog.New(sink, log)

	registry := summarizer.NewRegistryFromConfig(cfg, log)
	sum := summarizer.New(registry, cfg.Summarize.Timeout, log)
	a.pipeline = pipeline.New(pipeline.Options{
		MinLen:         cfg.Summarize.MinLength,
		MaxLen:         cfg.Summarize.MaxLength,
		StripStopwords: !cfg.Summarize.KeepStopwords,
		MaxConcurrent:  cfg.Performance.MaxConcurrent,
	}, sum, analysis.NewDefault(log), log)

	return a, nil
}

func (a *app) Close() error {
	if a.logFile == nil {
		return nil
	}
	return a.logFile.Close()
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	a, err := newAppFromFlags(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, cancel := signalContext()
	defer cancel()

	width := a.cfg.Display.Width
	if width == 0 {
		width = console.Width(80)
	}

	ctrl := controller.New(controller.Options{
		SingleBackend:  a.cfg.Interactive.SingleBackend,
		DefaultBackend: model.ParseBackendName(a.cfg.Interactive.DefaultBackend),
		Width:          width,
	}, console.Stdio(), a.pipeline, fetcher.New(a.cfg.Fetch.Timeout), a.recorder, a.log)

	err = ctrl.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Summarize every text file dropped into the inbox directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newAppFromFlags(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx, cancel := signalContext()
			defer cancel()

			cfg := a.cfg
			for _, dir := range []string{cfg.Paths.Inbox, cfg.Paths.Output, cfg.Paths.Archived} {
				if err := os.MkdirAll(dir, 0755); err != nil {
					return fmt.Errorf("create directory %s: %w", dir, err)
				}
			}

			handler := watcher.NewSummaryHandler(watcher.HandlerOptions{
				Backend:     model.ParseBackendName(cfg.Watch.Backend),
				OutputDir:   cfg.Paths.Output,
				ArchivedDir: cfg.Paths.Archived,
				Docx:        cfg.Watch.Docx,
			}, a.pipeline, a.recorder, a.log)

			w, err := watcher.New(cfg.Paths.Inbox, handler, a.log, cfg.Performance.MaxConcurrent)
			if err != nil {
				return err
			}
			defer w.Stop()

			a.log.Info(ctx, "Summaries go to %s, processed inputs to %s. Press Ctrl+C to stop.",
				cfg.Paths.Output, cfg.Paths.Archived)

			if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			a.log.Info(context.Background(), "Watcher stopped")
			return nil
		},
	}
}
