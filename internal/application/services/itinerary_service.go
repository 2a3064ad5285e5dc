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

const itineraryTool = "itinerary"

// ItineraryService is the single-day food itinerary pipeline.
type ItineraryService struct {
	cache    providers.CacheProvider
	search   providers.SearchProvider
	llm      providers.CompletionProvider
	enricher *enrichment.ImageEnricher
	ttl      time.Duration
	metrics  *observability.Metrics
}

// NewItineraryService creates a new itinerary service.
func NewItineraryService(cache providers.CacheProvider, search providers.SearchProvider, llm providers.CompletionProvider, enricher *enrichment.ImageEnricher, ttl time.Duration, metrics *observability.Metrics) *ItineraryService {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &ItineraryService{
		cache:    cache,
		search:   search,
		llm:      llm,
		enricher: enricher,
		ttl:      ttl,
		metrics:  metrics,
	}
}

// extractedStop carries the photo search phrase alongside the stop; the
// phrase is extraction-time only and not part of the returned payload.
type extractedStop struct {
	entities.ItineraryStop
	ImageQuery string `json:"image_query"`
}

// PlanFoodDay builds one full eating day in a city, ordered morning to night.
func (s *ItineraryService) PlanFoodDay(ctx context.Context, city, preferences string) (*entities.DayPlan, string, error) {
	if s.search == nil {
		return nil, "", apperrors.NewConfigurationError("TAVILY_API_KEY is not configured")
	}
	if s.llm == nil {
		return nil, "", apperrors.NewConfigurationError("OPENAI_API_KEY is not configured")
	}

	logger := observability.LoggerFromContext(ctx)
	key := cacheKey(itineraryTool, city, preferences)

	var cached entities.DayPlan
	if readCache(ctx, s.cache, key, &cached) {
		if s.metrics != nil {
			observability.RecordCacheHit(ctx, s.metrics, itineraryTool)
		}
		logger.Debug().Str("key", key).Msg("itinerary cache hit")
		return &cached, itinerarySummary(&cached), nil
	}
	if s.metrics != nil {
		observability.RecordCacheMiss(ctx, s.metrics, itineraryTool)
	}

	queries := []string{
		fmt.Sprintf("iconic dishes %s must eat food", city),
		fmt.Sprintf("%s food culture history neighborhoods", city),
	}
	webContext, err := gatherSearchContext(ctx, s.search, queries, providers.SearchOptions{
		Depth:         "basic",
		MaxResults:    4,
		IncludeAnswer: true,
	})
	if err != nil {
		return nil, "", apperrors.NewUpstreamError("itinerary search failed", err)
	}

	raw, err := s.llm.Complete(ctx, itinerarySystemPrompt, buildItineraryUserPrompt(city, preferences, webContext))
	if err != nil {
		return nil, "", apperrors.NewUpstreamError("itinerary extraction failed", err)
	}

	extracted := []extractedStop{}
	if err := decodeArrayField(itineraryTool, raw, "stops", &extracted); err != nil {
		return nil, "", err
	}

	payload := entities.DayPlan{
		City:        city,
		Preferences: preferences,
		Stops:       make([]entities.ItineraryStop, len(extracted)),
	}
	for i, stop := range extracted {
		payload.Stops[i] = stop.ItineraryStop
	}

	if s.enricher != nil && s.enricher.Enabled() {
		imageQueries := make([]string, len(extracted))
		for i, stop := range extracted {
			imageQueries[i] = stop.ImageQuery
		}
		urls := s.enricher.ResolveAll(ctx, imageQueries)
		for i := range payload.Stops {
			payload.Stops[i].DishImageURL = urls[i]
		}
	}

	writeCache(ctx, s.cache, key, &payload, s.ttl)
	logger.Info().Str("city", city).Int("stops", len(payload.Stops)).Msg("day itinerary built")

	return &payload, itinerarySummary(&payload), nil
}

func itinerarySummary(payload *entities.DayPlan) string {
	return fmt.Sprintf("A %d-stop eating day through %s.", len(payload.Stops), payload.City)
}
