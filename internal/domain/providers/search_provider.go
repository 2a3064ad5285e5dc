package providers

import "context"

// SearchResult is one web search hit.
type SearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
}

// SearchOptions tunes a single web search request.
type SearchOptions struct {
	Depth         string
	MaxResults    int
	IncludeAnswer bool
}

// SearchProvider defines the interface for web search lookups.
type SearchProvider interface {
	// Search runs one query and returns results in provider order.
	Search(ctx context.Context, query string, opts SearchOptions) ([]SearchResult, error)
}
