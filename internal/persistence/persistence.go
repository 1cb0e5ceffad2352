// Package persistence saves summaries to disk.
package persistence

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

// IOError is a failed save.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Save writes text to path, replacing any existing file. The parent
// directory must exist. A path ending in .docx is written as a Word
// document; anything else receives exactly text.
func Save(text, path string) error {
	if strings.EqualFold(filepath.Ext(path), ".docx") {
		if err := writeDocx(text, path); err != nil {
			return &IOError{Op: "write docx", Path: path, Err: err}
		}
		return nil
	}

	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// SaveInFolder creates folder if needed and saves text as folder/filename.
// It returns the path written.
func SaveInFolder(text, folder, filename string) (string, error) {
	if err := os.MkdirAll(folder, 0755); err != nil {
		return "", &IOError{Op: "create folder", Path: folder, Err: err}
	}
	path := filepath.Join(folder, filename)
	if err := Save(text, path); err != nil {
		return "", err
	}
	return path, nil
}

// IsUnrecoverable reports whether err means the environment can no longer
// take writes: a full disk or a read-only filesystem.
func IsUnrecoverable(err error) bool {
	return errors.Is(err, syscall.ENOSPC) || errors.Is(err, syscall.EROFS)
}
