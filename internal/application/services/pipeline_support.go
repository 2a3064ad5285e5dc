package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/koladele/tastetrail/internal/domain/providers"
	"github.com/koladele/tastetrail/internal/infrastructure/observability"
	apperrors "github.com/koladele/tastetrail/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// DefaultCacheTTL bounds how long a recommendation payload stays fresh.
const DefaultCacheTTL = 10 * time.Minute

const maxContextLength = 4000

// cacheKey derives a deterministic colon-delimited key from the tool name
// and its discriminating parameters. Parameters are lower-cased so "Tokyo"
// and "tokyo" hit the same entry; empty parameters are dropped.
func cacheKey(tool string, parts ...string) string {
	segments := []string{tool}
	for _, part := range parts {
		normalized := strings.ToLower(strings.TrimSpace(part))
		if normalized != "" {
			segments = append(segments, normalized)
		}
	}
	return strings.Join(segments, ":")
}

// readCache fills dest from a cached JSON payload. It returns false on a
// miss, an expired entry, or a payload that no longer unmarshals.
func readCache(ctx context.Context, cache providers.CacheProvider, key string, dest interface{}) bool {
	if cache == nil {
		return false
	}
	data, err := cache.Get(ctx, key)
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Str("key", key).Msg("discarding undecodable cache entry")
		return false
	}
	return true
}

// writeCache stores a JSON payload under key. Cache write failures are
// logged, not surfaced: the response in hand is still good.
func writeCache(ctx context.Context, cache providers.CacheProvider, key string, value interface{}, ttl time.Duration) {
	if cache == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		observability.LoggerFromContext(ctx).Error().Err(err).Str("key", key).Msg("failed to marshal cache payload")
		return
	}
	if err := cache.Set(ctx, key, data, ttl); err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}

// gatherSearchContext runs the queries concurrently against the search
// provider and joins the snippets into one bounded context string. Any
// query failure aborts the gather: search is a required context source.
func gatherSearchContext(ctx context.Context, search providers.SearchProvider, queries []string, opts providers.SearchOptions) (string, error) {
	snippets := make([]string, len(queries))

	g, gctx := errgroup.WithContext(ctx)
	for i, query := range queries {
		g.Go(func() error {
			results, err := search.Search(gctx, query, opts)
			if err != nil {
				return fmt.Errorf("search %q: %w", query, err)
			}
			var sb strings.Builder
			for _, result := range results {
				sb.WriteString(result.Title)
				sb.WriteString("\n")
				sb.WriteString(result.Content)
				sb.WriteString("\nSource: ")
				sb.WriteString(result.URL)
				sb.WriteString("\n\n")
			}
			snippets[i] = sb.String()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	return boundContext(strings.Join(snippets, "\n")), nil
}

func boundContext(text string) string {
	collapsed := strings.Join(strings.Fields(text), " ")
	if len(collapsed) > maxContextLength {
		collapsed = collapsed[:maxContextLength]
	}
	return collapsed
}

// decodeArrayField decodes the named array field of an LLM JSON response
// into dest, a pointer to a slice. An unparsable response is an upstream
// error; a parsable response whose field is missing or not an array leaves
// dest empty without erroring, so a sloppy model never crashes a pipeline.
func decodeArrayField(tool, raw, field string, dest interface{}) error {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &envelope); err != nil {
		return apperrors.NewUpstreamError(fmt.Sprintf("%s: extraction returned unparsable JSON", tool), err)
	}

	arr, ok := envelope[field]
	if !ok {
		return nil
	}
	trimmed := bytes.TrimSpace(arr)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil
	}

	// Decode into a fresh slice so a half-failed unmarshal cannot leave
	// partial records behind in dest.
	decoded := reflect.New(reflect.TypeOf(dest).Elem())
	if err := json.Unmarshal(arr, decoded.Interface()); err != nil {
		return nil
	}
	reflect.ValueOf(dest).Elem().Set(decoded.Elem())
	return nil
}
