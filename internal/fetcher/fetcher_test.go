package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/nguyentantai21042004/deepthink/internal/model"
)

const page = `<!doctype html>
<html>
<head><title>Ignored title</title><style>p { color: red; }</style></head>
<body>
  <nav>Home | About</nav>
  <p>First   paragraph with <b>bold</b> text &amp; symbols.</p>
  <div><p>Second paragraph!<script>var x = 1;</script></p></div>
  <span>not a paragraph</span>
</body>
</html>`

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(page))
	}))
	defer srv.Close()

	text, err := New(5*time.Second).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "First paragraph with bold text symbols. Second paragraph!", text)
}

func TestFetchErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.NotFound(w, r)
			},
		},
		{
			name: "no paragraphs",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("<html><body><div>nothing here</div></body></html>"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := New(5*time.Second).Fetch(context.Background(), srv.URL)
			var fetchErr *model.FetchError
			require.True(t, errors.As(err, &fetchErr), "got %v", err)
			assert.Equal(t, srv.URL, fetchErr.URL)
		})
	}
}

func TestFetchInvalidURL(t *testing.T) {
	_, err := New(time.Second).Fetch(context.Background(), "://missing-scheme")
	var fetchErr *model.FetchError
	assert.True(t, errors.As(err, &fetchErr))
}

func TestParagraphs(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(page))
	require.NoError(t, err)

	paras := Paragraphs(doc)
	require.Len(t, paras, 2)
	assert.Equal(t, "Second paragraph!", paras[1])
}
