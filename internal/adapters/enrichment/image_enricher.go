package enrichment

import (
	"context"

	"github.com/koladele/tastetrail/internal/domain/providers"
	"github.com/koladele/tastetrail/internal/infrastructure/observability"
	"golang.org/x/sync/errgroup"
)

const maxConcurrentLookups = 8

// ImageEnricher resolves image queries to photo URLs in parallel. A nil
// provider disables enrichment: every query resolves to an empty string.
type ImageEnricher struct {
	provider providers.ImageProvider
}

// NewImageEnricher creates a new image enricher.
func NewImageEnricher(provider providers.ImageProvider) *ImageEnricher {
	return &ImageEnricher{provider: provider}
}

// Enabled reports whether an image provider is configured.
func (e *ImageEnricher) Enabled() bool {
	return e.provider != nil
}

// ResolveAll looks up one image URL per query, all lookups running
// concurrently. The result slice is positionally aligned with queries. An
// individual lookup failure yields an empty string for that slot only; it
// never fails the sibling lookups or the caller.
func (e *ImageEnricher) ResolveAll(ctx context.Context, queries []string) []string {
	urls := make([]string, len(queries))
	if e.provider == nil || len(queries) == 0 {
		return urls
	}

	logger := observability.LoggerFromContext(ctx)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLookups)

	for i, query := range queries {
		if query == "" {
			continue
		}
		g.Go(func() error {
			url, err := e.provider.SearchImage(ctx, query)
			if err != nil {
				logger.Debug().Err(err).Str("query", query).Msg("image lookup failed")
				return nil
			}
			urls[i] = url
			return nil
		})
	}

	// Subtasks never return errors, so Wait is only a join point.
	_ = g.Wait()
	return urls
}
