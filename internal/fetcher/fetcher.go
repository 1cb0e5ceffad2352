// Package fetcher retrieves a web page and extracts its paragraph text.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/nguyentantai21042004/deepthink/internal/model"
	"github.com/nguyentantai21042004/deepthink/internal/normalizer"
)

// maxBodyBytes bounds how much of a page is read.
const maxBodyBytes = 10 << 20

// Fetcher turns a URL into cleaned paragraph text.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

type implFetcher struct {
	client *http.Client
}

// New creates a Fetcher issuing plain GET requests with the given timeout.
func New(timeout time.Duration) Fetcher {
	return &implFetcher{
		client: &http.Client{Timeout: timeout},
	}
}

// Fetch downloads url, joins the text of every <p> element with spaces and
// cleans the result. Every failure is a *model.FetchError.
func (f *implFetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return "", &model.FetchError{URL: url, Err: fmt.Errorf("create request: %w", err)}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &model.FetchError{URL: url, Err: fmt.Errorf("request failed: %w", err)}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return "", &model.FetchError{URL: url, Err: fmt.Errorf("unexpected status: %s", resp.Status)}
	}

	doc, err := html.Parse(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", &model.FetchError{URL: url, Err: fmt.Errorf("parse html: %w", err)}
	}

	text := normalizer.Clean(strings.Join(Paragraphs(doc), " "))
	if text == "" {
		return "", &model.FetchError{URL: url, Err: fmt.Errorf("no paragraph text found")}
	}
	return text, nil
}

// Paragraphs returns the text content of every <p> element in document
// order. Script and style content is skipped.
func Paragraphs(doc *html.Node) []string {
	var out []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "p" {
			out = append(out, textOf(n))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return out
}

func textOf(n *html.Node) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch {
		case n.Type == html.TextNode:
			b.WriteString(n.Data)
		case n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style"):
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
