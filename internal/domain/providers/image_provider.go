package providers

import "context"

// ImageProvider defines the interface for stock photo lookups.
type ImageProvider interface {
	// SearchImage returns the URL of one landscape image matching the query,
	// or an empty string when nothing matched.
	SearchImage(ctx context.Context, query string) (string, error)
}
