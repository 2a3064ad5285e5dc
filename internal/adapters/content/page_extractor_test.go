package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const samplePage = `<!DOCTYPE html>
<html>
<head><title>Casa da Comida</title><style>body { color: red; }</style></head>
<body>
<header>Site header with   links</header>
<nav><a href="/">Home</a><a href="/menu">Menu</a></nav>
<script>window.track && window.track("pageview");</script>
<main>
  <h1>Our   Menu</h1>
  <p>Grilled sardines with
  lemon and olive oil.</p>
</main>
<footer>Copyright notice</footer>
</body>
</html>`

func TestFetchReadableText_StripsNonContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(samplePage))
	}))
	defer server.Close()

	extractor := NewPageExtractor()
	text := extractor.FetchReadableText(context.Background(), server.URL)

	assert.Contains(t, text, "Grilled sardines with lemon and olive oil.")
	assert.Contains(t, text, "Our Menu")
	assert.NotContains(t, text, "pageview")
	assert.NotContains(t, text, "color: red")
	assert.NotContains(t, text, "Site header")
	assert.NotContains(t, text, "Copyright")
	assert.NotContains(t, text, "  ", "whitespace runs must be collapsed")
}

func TestFetchReadableText_SetsUserAgent(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte("<html><body>hi</body></html>"))
	}))
	defer server.Close()

	NewPageExtractor().FetchReadableText(context.Background(), server.URL)
	assert.Contains(t, gotUA, "TasteTrailBot")
}

func TestFetchReadableText_TruncatesLongPages(t *testing.T) {
	long := strings.Repeat("menu item description ", 1000)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><p>" + long + "</p></body></html>"))
	}))
	defer server.Close()

	text := NewPageExtractor().FetchReadableText(context.Background(), server.URL)
	assert.Len(t, text, maxTextLength)
}

func TestFetchReadableText_Non200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	text := NewPageExtractor().FetchReadableText(context.Background(), server.URL)
	assert.Equal(t, "", text)
}

func TestFetchReadableText_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	extractor := NewPageExtractorWithClient(&http.Client{Timeout: 20 * time.Millisecond})
	text := extractor.FetchReadableText(context.Background(), server.URL)
	assert.Equal(t, "", text)
}

func TestFetchReadableText_UnreachableHost(t *testing.T) {
	extractor := NewPageExtractorWithClient(&http.Client{Timeout: 100 * time.Millisecond})
	text := extractor.FetchReadableText(context.Background(), "http://127.0.0.1:1/menu")
	assert.Equal(t, "", text)
}
