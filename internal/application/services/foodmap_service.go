package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/koladele/tastetrail/internal/adapters/enrichment"
	"github.com/koladele/tastetrail/internal/domain/entities"
	"github.com/koladele/tastetrail/internal/domain/providers"
	"github.com/koladele/tastetrail/internal/infrastructure/observability"
	apperrors "github.com/koladele/tastetrail/pkg/errors"
)

const foodMapTool = "foodmap"

// FoodMapService is the multi-day food map pipeline.
type FoodMapService struct {
	cache    providers.CacheProvider
	search   providers.SearchProvider
	llm      providers.CompletionProvider
	enricher *enrichment.ImageEnricher
	ttl      time.Duration
	metrics  *observability.Metrics
}

// NewFoodMapService creates a new food map service.
func NewFoodMapService(cache providers.CacheProvider, search providers.SearchProvider, llm providers.CompletionProvider, enricher *enrichment.ImageEnricher, ttl time.Duration, metrics *observability.Metrics) *FoodMapService {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &FoodMapService{
		cache:    cache,
		search:   search,
		llm:      llm,
		enricher: enricher,
		ttl:      ttl,
		metrics:  metrics,
	}
}

type extractedMapStop struct {
	entities.MapStop
	ImageQuery string `json:"image_query"`
}

type extractedDay struct {
	Day   int                `json:"day"`
	Label string             `json:"label"`
	Stops []extractedMapStop `json:"stops"`
}

// BuildFoodMap plans a multi-day eating map. The payload carries both the
// per-day grouping and one flat stop list whose order is days 1..N
// concatenated in slot order; map consumers need both.
func (s *FoodMapService) BuildFoodMap(ctx context.Context, city string, days int) (*entities.FoodMap, string, error) {
	if s.search == nil {
		return nil, "", apperrors.NewConfigurationError("TAVILY_API_KEY is not configured")
	}
	if s.llm == nil {
		return nil, "", apperrors.NewConfigurationError("OPENAI_API_KEY is not configured")
	}

	logger := observability.LoggerFromContext(ctx)
	key := cacheKey(foodMapTool, city, strconv.Itoa(days))

	var cached entities.FoodMap
	if readCache(ctx, s.cache, key, &cached) {
		if s.metrics != nil {
			observability.RecordCacheHit(ctx, s.metrics, foodMapTool)
		}
		logger.Debug().Str("key", key).Msg("food map cache hit")
		return &cached, foodMapSummary(&cached), nil
	}
	if s.metrics != nil {
		observability.RecordCacheMiss(ctx, s.metrics, foodMapTool)
	}

	queries := []string{
		fmt.Sprintf("best restaurants %s by neighborhood local favorites", city),
		fmt.Sprintf("iconic dishes %s must eat food", city),
	}
	webContext, err := gatherSearchContext(ctx, s.search, queries, providers.SearchOptions{
		Depth:         "basic",
		MaxResults:    4,
		IncludeAnswer: true,
	})
	if err != nil {
		return nil, "", apperrors.NewUpstreamError("food map search failed", err)
	}

	raw, err := s.llm.Complete(ctx, foodMapSystemPrompt, buildFoodMapUserPrompt(city, days, webContext))
	if err != nil {
		return nil, "", apperrors.NewUpstreamError("food map extraction failed", err)
	}

	extracted := []extractedDay{}
	if err := decodeArrayField(foodMapTool, raw, "days", &extracted); err != nil {
		return nil, "", err
	}

	// Resolve photos for every stop across all days in one parallel batch.
	var imageQueries []string
	for _, day := range extracted {
		for _, stop := range day.Stops {
			imageQueries = append(imageQueries, stop.ImageQuery)
		}
	}
	var urls []string
	if s.enricher != nil && s.enricher.Enabled() {
		urls = s.enricher.ResolveAll(ctx, imageQueries)
	} else {
		urls = make([]string, len(imageQueries))
	}

	payload := entities.FoodMap{
		City:  city,
		Days:  make([]entities.DayItinerary, len(extracted)),
		Stops: []entities.MapStop{},
	}
	cursor := 0
	for i, day := range extracted {
		group := entities.DayItinerary{
			Day:   day.Day,
			Label: day.Label,
			Stops: make([]entities.MapStop, len(day.Stops)),
		}
		for j, stop := range day.Stops {
			record := stop.MapStop
			record.DishImageURL = urls[cursor]
			cursor++
			group.Stops[j] = record
		}
		payload.Days[i] = group
		// The flat list mirrors the grouped order exactly.
		payload.Stops = append(payload.Stops, group.Stops...)
	}

	writeCache(ctx, s.cache, key, &payload, s.ttl)
	logger.Info().Str("city", city).Int("days", len(payload.Days)).Int("stops", len(payload.Stops)).Msg("food map built")

	return &payload, foodMapSummary(&payload), nil
}

func foodMapSummary(payload *entities.FoodMap) string {
	return fmt.Sprintf("A %d-day food map of %s with %d stops.", len(payload.Days), payload.City, len(payload.Stops))
}
