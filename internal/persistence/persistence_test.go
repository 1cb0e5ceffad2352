package persistence

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveWritesExactText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.txt")
	summary := "A fox jumps.\nSecond line, no trailing newline"

	require.NoError(t, Save(summary, path))
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, summary, string(got))
}

func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.txt")
	require.NoError(t, Save("a much longer first version", path))
	require.NoError(t, Save("short", path))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "short", string(got))
}

func TestSaveMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "summary.txt")

	err := Save("text", path)
	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, path, ioErr.Path)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestSaveInFolderIsIdempotent(t *testing.T) {
	folder := filepath.Join(t.TempDir(), "summaries")

	p1, err := SaveInFolder("first summary", folder, "one.txt")
	require.NoError(t, err)
	p2, err := SaveInFolder("second summary", folder, "two.txt")
	require.NoError(t, err)

	got1, err := os.ReadFile(p1)
	require.NoError(t, err)
	got2, err := os.ReadFile(p2)
	require.NoError(t, err)
	assert.Equal(t, "first summary", string(got1))
	assert.Equal(t, "second summary", string(got2))
	assert.Equal(t, filepath.Join(folder, "two.txt"), p2)
}

func TestSaveInFolderNested(t *testing.T) {
	folder := filepath.Join(t.TempDir(), "a", "b", "c")
	path, err := SaveInFolder("nested", folder, "s.txt")
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestSaveInFolderBlockedByFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "taken")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	_, err := SaveInFolder("text", blocker, "s.txt")
	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "create folder", ioErr.Op)
}

func TestSaveDocx(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.docx")
	require.NoError(t, Save("The **quick** fox.\n\n- jumps `over`\n- the __lazy__ dog", path))

	r, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer r.Close()

	var body string
	for _, f := range r.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		_ = rc.Close()
		require.NoError(t, err)
		body = string(data)
	}

	require.NotEmpty(t, body, "document.xml missing")
	assert.Contains(t, body, "quick")
	assert.Contains(t, body, "jumps over")
	assert.Contains(t, body, "lazy")
	assert.False(t, strings.Contains(body, "**"))
	assert.False(t, strings.Contains(body, "`"))
	assert.False(t, strings.Contains(body, "__"))
}

func TestIsUnrecoverable(t *testing.T) {
	full := &IOError{Op: "write", Path: "x", Err: &os.PathError{Op: "write", Path: "x", Err: syscall.ENOSPC}}
	assert.True(t, IsUnrecoverable(full))
	assert.True(t, IsUnrecoverable(fmt.Errorf("save: %w", syscall.EROFS)))
	assert.False(t, IsUnrecoverable(&IOError{Op: "write", Path: "x", Err: os.ErrNotExist}))
	assert.False(t, IsUnrecoverable(nil))
}
