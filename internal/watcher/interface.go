// Package watcher summarizes text files dropped into an inbox directory.
package watcher

import "context"

// Watcher monitors a directory and hands new files to an EventHandler.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one newly created file.
type EventHandler func(ctx context.Context, filePath string) error
