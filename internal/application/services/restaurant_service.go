package services

import (
	"context"
	"fmt"
	"time"

	"github.com/koladele/tastetrail/internal/domain/entities"
	"github.com/koladele/tastetrail/internal/domain/providers"
	"github.com/koladele/tastetrail/internal/infrastructure/observability"
	apperrors "github.com/koladele/tastetrail/pkg/errors"
)

const restaurantTool = "restaurants"

// RestaurantService is the restaurant search pipeline: web search, LLM
// extraction, cache.
type RestaurantService struct {
	cache   providers.CacheProvider
	search  providers.SearchProvider
	llm     providers.CompletionProvider
	ttl     time.Duration
	metrics *observability.Metrics
}

// NewRestaurantService creates a new restaurant search service. A nil search
// or llm provider marks the corresponding credential as unconfigured.
func NewRestaurantService(cache providers.CacheProvider, search providers.SearchProvider, llm providers.CompletionProvider, ttl time.Duration, metrics *observability.Metrics) *RestaurantService {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &RestaurantService{
		cache:   cache,
		search:  search,
		llm:     llm,
		ttl:     ttl,
		metrics: metrics,
	}
}

// FindRestaurants returns restaurants locals love in a city, a cached
// payload when fresh, and a one-line summary.
func (s *RestaurantService) FindRestaurants(ctx context.Context, city, preferences string) (*entities.RestaurantRecommendations, string, error) {
	if s.search == nil {
		return nil, "", apperrors.NewConfigurationError("TAVILY_API_KEY is not configured")
	}
	if s.llm == nil {
		return nil, "", apperrors.NewConfigurationError("OPENAI_API_KEY is not configured")
	}

	logger := observability.LoggerFromContext(ctx)
	key := cacheKey(restaurantTool, city, preferences)

	var cached entities.RestaurantRecommendations
	if readCache(ctx, s.cache, key, &cached) {
		if s.metrics != nil {
			observability.RecordCacheHit(ctx, s.metrics, restaurantTool)
		}
		logger.Debug().Str("key", key).Msg("restaurant cache hit")
		return &cached, restaurantSummary(&cached), nil
	}
	if s.metrics != nil {
		observability.RecordCacheMiss(ctx, s.metrics, restaurantTool)
	}

	queries := []string{
		fmt.Sprintf("best local restaurants %s where locals eat", city),
	}
	if preferences != "" {
		queries = append(queries, fmt.Sprintf("%s restaurants %s", preferences, city))
	}

	webContext, err := gatherSearchContext(ctx, s.search, queries, providers.SearchOptions{
		Depth:         "basic",
		MaxResults:    5,
		IncludeAnswer: true,
	})
	if err != nil {
		return nil, "", apperrors.NewUpstreamError("restaurant search failed", err)
	}

	raw, err := s.llm.Complete(ctx, restaurantSystemPrompt, buildRestaurantUserPrompt(city, preferences, webContext))
	if err != nil {
		return nil, "", apperrors.NewUpstreamError("restaurant extraction failed", err)
	}

	payload := entities.RestaurantRecommendations{
		City:        city,
		Preferences: preferences,
		Restaurants: []entities.Restaurant{},
	}
	if err := decodeArrayField(restaurantTool, raw, "restaurants", &payload.Restaurants); err != nil {
		return nil, "", err
	}

	writeCache(ctx, s.cache, key, &payload, s.ttl)
	logger.Info().Str("city", city).Int("count", len(payload.Restaurants)).Msg("restaurant recommendations built")

	return &payload, restaurantSummary(&payload), nil
}

func restaurantSummary(payload *entities.RestaurantRecommendations) string {
	return fmt.Sprintf("Found %d local favorites in %s.", len(payload.Restaurants), payload.City)
}
