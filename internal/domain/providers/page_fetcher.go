package providers

import "context"

// PageFetcher defines the interface for retrieving readable page text.
type PageFetcher interface {
	// FetchReadableText downloads a page and returns its visible text,
	// bounded in length. It returns an empty string on any failure so
	// callers can fall back to another context source.
	FetchReadableText(ctx context.Context, pageURL string) string
}
