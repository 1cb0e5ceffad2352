// Package console is the line-oriented transport the interactive session
// talks through.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// Transport reads answers and writes output one line at a time.
type Transport interface {
	// ReadLine shows prompt and returns the next input line without its
	// line ending. It returns io.EOF once input is exhausted and ctx.Err()
	// if ctx is done first.
	ReadLine(ctx context.Context, prompt string) (string, error)
	WriteLine(line string) error
}

type lineResult struct {
	line string
	err  error
}

// stdio reads in on a single goroutine so a blocked read never outlives a
// cancelled prompt. An answer typed after cancellation is kept for the next
// ReadLine.
type stdio struct {
	in    *bufio.Reader
	out   io.Writer
	once  sync.Once
	lines chan lineResult
	// err is the read error that closed lines.
	err error
}

// New creates a Transport over in and out.
func New(in io.Reader, out io.Writer) Transport {
	return &stdio{in: bufio.NewReader(in), out: out, lines: make(chan lineResult)}
}

// Stdio is the terminal transport.
func Stdio() Transport {
	return New(os.Stdin, os.Stdout)
}

func (s *stdio) ReadLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if prompt != "" {
		if _, err := fmt.Fprint(s.out, prompt); err != nil {
			return "", err
		}
	}

	s.once.Do(func() { go s.readLoop() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r, ok := <-s.lines:
		if !ok {
			return "", s.err
		}
		return r.line, r.err
	}
}

func (s *stdio) readLoop() {
	for {
		line, err := s.in.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) && line != "" {
				s.lines <- lineResult{line: strings.TrimRight(line, "\r\n")}
			}
			s.err = err
			close(s.lines)
			return
		}
		s.lines <- lineResult{line: strings.TrimRight(line, "\r\n")}
	}
}

func (s *stdio) WriteLine(line string) error {
	_, err := fmt.Fprintln(s.out, line)
	return err
}

// Width returns the terminal width of stdout, or fallback when stdout is
// not a terminal.
func Width(fallback int) int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fallback
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}
