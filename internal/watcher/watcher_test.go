package watcher

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/deepthink/internal/analysis"
	"github.com/nguyentantai21042004/deepthink/internal/logger"
	"github.com/nguyentantai21042004/deepthink/internal/model"
	"github.com/nguyentantai21042004/deepthink/internal/pipeline"
	"github.com/nguyentantai21042004/deepthink/internal/sessionlog"
	"github.com/nguyentantai21042004/deepthink/internal/summarizer"
)

type upperBackend struct{}

func (upperBackend) Summarize(_ context.Context, text string, _, _ int) (string, error) {
	return strings.ToUpper(text), nil
}

type brokenBackend struct{}

func (brokenBackend) Summarize(context.Context, string, int, int) (string, error) {
	return "", errors.New("quota exhausted")
}

func newPipeline(backend summarizer.Backend) pipeline.Pipeline {
	r := summarizer.NewRegistry()
	r.RegisterBackend(model.BackendOpenAI, backend)
	sum := summarizer.New(r, time.Second, logger.Nop())
	return pipeline.New(pipeline.Options{MinLen: 25, MaxLen: 150}, sum, analysis.NewDefault(logger.Nop()), logger.Nop())
}

func TestSummaryHandler(t *testing.T) {
	root := t.TempDir()
	inbox := filepath.Join(root, "inbox")
	require.NoError(t, os.MkdirAll(inbox, 0755))
	src := filepath.Join(inbox, "notes.md")
	require.NoError(t, os.WriteFile(src, []byte("rivers carve valleys"), 0644))

	var log bytes.Buffer
	opts := HandlerOptions{
		Backend:     model.BackendOpenAI,
		OutputDir:   filepath.Join(root, "out"),
		ArchivedDir: filepath.Join(root, "archived"),
		Docx:        true,
	}
	h := NewSummaryHandler(opts, newPipeline(upperBackend{}), sessionlog.New(&log, logger.Nop()), logger.Nop())

	require.NoError(t, h(context.Background(), src))

	data, err := os.ReadFile(filepath.Join(opts.OutputDir, "notes.summary.txt"))
	require.NoError(t, err)
	assert.Equal(t, "RIVERS CARVE VALLEYS", string(data))
	assert.FileExists(t, filepath.Join(opts.OutputDir, "notes.summary.docx"))
	assert.FileExists(t, filepath.Join(opts.ArchivedDir, "notes.md"))
	assert.NoFileExists(t, src)
	assert.Contains(t, log.String(), "Model used: openai")
}

func TestSummaryHandlerKeepsFailedInput(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "a.txt")
	require.NoError(t, os.WriteFile(src, []byte("some text"), 0644))

	var log bytes.Buffer
	opts := HandlerOptions{Backend: model.BackendOpenAI, OutputDir: filepath.Join(root, "out"), ArchivedDir: filepath.Join(root, "archived")}
	h := NewSummaryHandler(opts, newPipeline(brokenBackend{}), sessionlog.New(&log, logger.Nop()), logger.Nop())

	err := h(context.Background(), src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exhausted")
	assert.FileExists(t, src)
	assert.NoDirExists(t, opts.OutputDir)
	assert.Contains(t, log.String(), " - ERROR - ")
}

func TestIsTextFile(t *testing.T) {
	assert.True(t, isTextFile("/in/a.txt"))
	assert.True(t, isTextFile("/in/README.MD"))
	assert.False(t, isTextFile("/in/video.mp4"))
	assert.False(t, isTextFile("/in/noext"))
}

func TestWatcherHandlesNewTextFiles(t *testing.T) {
	inbox := t.TempDir()
	seen := make(chan string, 4)
	handler := func(_ context.Context, path string) error {
		seen <- filepath.Base(path)
		return nil
	}

	w, err := New(inbox, handler, logger.Nop(), 1)
	require.NoError(t, err)
	defer w.Stop()
	w.(*implWatcher).settle = 0

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	require.NoError(t, os.WriteFile(filepath.Join(inbox, "skip.bin"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(inbox, "doc.txt"), []byte("hello"), 0644))

	select {
	case name := <-seen:
		assert.Equal(t, "doc.txt", name)
	case <-time.After(5 * time.Second):
		t.Fatal("handler was not called")
	}

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
	assert.Empty(t, seen)
}

func TestNewFailsOnMissingDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "absent"), nil, logger.Nop(), 1)
	assert.Error(t, err)
}
