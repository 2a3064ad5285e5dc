package content

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/koladele/tastetrail/internal/infrastructure/observability"
	"golang.org/x/net/html"
)

const (
	fetchTimeout  = 8 * time.Second
	maxTextLength = 4000
	userAgent     = "TasteTrailBot/1.0 (+https://github.com/koladele/tastetrail; restaurant menu research)"
)

var skippedElements = map[string]struct{}{
	"script":   {},
	"style":    {},
	"nav":      {},
	"footer":   {},
	"header":   {},
	"noscript": {},
	"iframe":   {},
}

// PageExtractor implements the PageFetcher interface by downloading a page
// and reducing it to bounded plain text.
type PageExtractor struct {
	httpClient *http.Client
}

// NewPageExtractor creates a new page extractor.
func NewPageExtractor() *PageExtractor {
	return NewPageExtractorWithClient(nil)
}

// NewPageExtractorWithClient allows overriding the HTTP client (used for tests).
func NewPageExtractorWithClient(httpClient *http.Client) *PageExtractor {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: fetchTimeout}
	}
	return &PageExtractor{httpClient: httpClient}
}

// FetchReadableText downloads a page and returns its visible text, truncated
// to 4000 characters. Every failure mode returns an empty string: the caller
// falls back to web-search context instead of aborting.
func (p *PageExtractor) FetchReadableText(ctx context.Context, pageURL string) string {
	logger := observability.LoggerFromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		logger.Debug().Err(err).Str("url", pageURL).Msg("invalid page URL")
		return ""
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		logger.Debug().Err(err).Str("url", pageURL).Msg("page fetch failed")
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Debug().Int("status", resp.StatusCode).Str("url", pageURL).Msg("page fetch returned non-200")
		return ""
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		logger.Debug().Err(err).Str("url", pageURL).Msg("page parse failed")
		return ""
	}

	var sb strings.Builder
	collectText(doc, &sb)

	text := strings.Join(strings.Fields(sb.String()), " ")
	if len(text) > maxTextLength {
		text = text[:maxTextLength]
	}
	return text
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.ElementNode {
		if _, skip := skippedElements[n.Data]; skip {
			return
		}
	}
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		sb.WriteString(" ")
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		collectText(child, sb)
	}
}
