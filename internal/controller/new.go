package controller

import (
	"os"

	"github.com/nguyentantai21042004/deepthink/internal/console"
	"github.com/nguyentantai21042004/deepthink/internal/fetcher"
	"github.com/nguyentantai21042004/deepthink/internal/logger"
	"github.com/nguyentantai21042004/deepthink/internal/model"
	"github.com/nguyentantai21042004/deepthink/internal/pipeline"
	"github.com/nguyentantai21042004/deepthink/internal/sessionlog"
)

type Options struct {
	// SingleBackend skips the model menu.
	SingleBackend  bool
	DefaultBackend model.BackendID
	// Width wraps displayed text; 0 disables wrapping.
	Width int
}

type implController struct {
	opts     Options
	console  console.Transport
	pipeline pipeline.Pipeline
	fetcher  fetcher.Fetcher
	recorder sessionlog.Recorder
	logger   logger.Logger

	readFile func(name string) ([]byte, error)
}

// New creates a Controller.
func New(
	opts Options,
	tr console.Transport,
	pipe pipeline.Pipeline,
	fetch fetcher.Fetcher,
	rec sessionlog.Recorder,
	log logger.Logger,
) Controller {
	return &implController{
		opts:     opts,
		console:  tr,
		pipeline: pipe,
		fetcher:  fetch,
		recorder: rec,
		logger:   log,
		readFile: os.ReadFile,
	}
}
