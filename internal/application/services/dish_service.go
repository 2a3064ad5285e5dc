package services

import (
	"context"
	"fmt"
	"time"

	"github.com/koladele/tastetrail/internal/adapters/enrichment"
	"github.com/koladele/tastetrail/internal/domain/entities"
	"github.com/koladele/tastetrail/internal/domain/providers"
	"github.com/koladele/tastetrail/internal/infrastructure/observability"
	apperrors "github.com/koladele/tastetrail/pkg/errors"
)

const dishTool = "dishes"

// DishService is the dish lookup pipeline: restaurant page text when
// reachable, web search otherwise, then LLM extraction and photo enrichment.
type DishService struct {
	cache    providers.CacheProvider
	search   providers.SearchProvider
	llm      providers.CompletionProvider
	pages    providers.PageFetcher
	enricher *enrichment.ImageEnricher
	ttl      time.Duration
	metrics  *observability.Metrics
}

// NewDishService creates a new dish lookup service.
func NewDishService(cache providers.CacheProvider, search providers.SearchProvider, llm providers.CompletionProvider, pages providers.PageFetcher, enricher *enrichment.ImageEnricher, ttl time.Duration, metrics *observability.Metrics) *DishService {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &DishService{
		cache:    cache,
		search:   search,
		llm:      llm,
		pages:    pages,
		enricher: enricher,
		ttl:      ttl,
		metrics:  metrics,
	}
}

// LookupDishes returns the signature dishes of one restaurant. The page at
// restaurantURL is the preferred context; a failed fetch silently falls back
// to web search so a dead menu link never sinks the lookup.
func (s *DishService) LookupDishes(ctx context.Context, restaurant, city, restaurantURL string) (*entities.DishMenu, string, error) {
	if s.search == nil {
		return nil, "", apperrors.NewConfigurationError("TAVILY_API_KEY is not configured")
	}
	if s.llm == nil {
		return nil, "", apperrors.NewConfigurationError("OPENAI_API_KEY is not configured")
	}

	logger := observability.LoggerFromContext(ctx)
	key := cacheKey(dishTool, city, restaurant)

	var cached entities.DishMenu
	if readCache(ctx, s.cache, key, &cached) {
		if s.metrics != nil {
			observability.RecordCacheHit(ctx, s.metrics, dishTool)
		}
		logger.Debug().Str("key", key).Msg("dish cache hit")
		return &cached, dishSummary(&cached), nil
	}
	if s.metrics != nil {
		observability.RecordCacheMiss(ctx, s.metrics, dishTool)
	}

	var pageText string
	if restaurantURL != "" && s.pages != nil {
		pageText = s.pages.FetchReadableText(ctx, restaurantURL)
		if pageText == "" {
			logger.Debug().Str("url", restaurantURL).Msg("restaurant page unreadable, using search context only")
		}
	}

	queries := []string{
		fmt.Sprintf("%s %s menu signature dishes what to order", restaurant, city),
	}
	webContext, err := gatherSearchContext(ctx, s.search, queries, providers.SearchOptions{
		Depth:         "basic",
		MaxResults:    5,
		IncludeAnswer: true,
	})
	if err != nil {
		return nil, "", apperrors.NewUpstreamError("dish search failed", err)
	}

	raw, err := s.llm.Complete(ctx, dishSystemPrompt, buildDishUserPrompt(restaurant, city, pageText, webContext))
	if err != nil {
		return nil, "", apperrors.NewUpstreamError("dish extraction failed", err)
	}

	payload := entities.DishMenu{
		Restaurant: restaurant,
		City:       city,
		Dishes:     []entities.Dish{},
	}
	if err := decodeArrayField(dishTool, raw, "dishes", &payload.Dishes); err != nil {
		return nil, "", err
	}

	if s.enricher != nil && s.enricher.Enabled() {
		queries := make([]string, len(payload.Dishes))
		for i, dish := range payload.Dishes {
			queries[i] = dish.ImageQuery
		}
		urls := s.enricher.ResolveAll(ctx, queries)
		for i := range payload.Dishes {
			payload.Dishes[i].ImageURL = urls[i]
		}
	}

	writeCache(ctx, s.cache, key, &payload, s.ttl)
	logger.Info().Str("restaurant", restaurant).Str("city", city).Int("count", len(payload.Dishes)).Msg("dish menu built")

	return &payload, dishSummary(&payload), nil
}

func dishSummary(payload *entities.DishMenu) string {
	return fmt.Sprintf("%d dishes worth ordering at %s.", len(payload.Dishes), payload.Restaurant)
}
