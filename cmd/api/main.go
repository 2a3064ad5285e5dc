package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/koladele/tastetrail/internal/adapters/cache"
	"github.com/koladele/tastetrail/internal/adapters/content"
	"github.com/koladele/tastetrail/internal/adapters/enrichment"
	"github.com/koladele/tastetrail/internal/api/handlers"
	"github.com/koladele/tastetrail/internal/api/routes"
	"github.com/koladele/tastetrail/internal/application/services"
	"github.com/koladele/tastetrail/internal/domain/providers"
	"github.com/koladele/tastetrail/internal/infrastructure/clients/openai"
	redisclient "github.com/koladele/tastetrail/internal/infrastructure/clients/redis"
	"github.com/koladele/tastetrail/internal/infrastructure/clients/tavily"
	"github.com/koladele/tastetrail/internal/infrastructure/clients/unsplash"
	"github.com/koladele/tastetrail/internal/infrastructure/observability"
	"github.com/koladele/tastetrail/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Server.Env)
	logger := observability.GetLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// OpenTelemetry is optional; the service runs fine without an endpoint.
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			defer func() {
				shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer shutdownCancel()
				if err := shutdown(shutdownCtx); err != nil {
					logger.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			logger.Info().Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	// Result cache: Redis when enabled and reachable, in-process otherwise.
	var cacheProvider providers.CacheProvider
	if cfg.Redis.Enabled {
		redisClient, err := redisclient.NewClient(&cfg.Redis)
		if err != nil {
			logger.Warn().Err(err).Msg("Redis unavailable, falling back to in-memory cache")
		} else {
			defer redisClient.Close()
			cacheProvider = cache.NewRedisAdapter(redisClient)
			logger.Info().Msg("Redis result cache initialized")
		}
	}
	if cacheProvider == nil {
		cacheProvider = cache.NewMemoryAdapter()
		logger.Info().Msg("in-memory result cache initialized")
	}

	// Missing required credentials leave the provider nil; each pipeline
	// reports the matching configuration error before any network call.
	var searchProvider providers.SearchProvider
	if cfg.Tavily.APIKey != "" {
		client, err := tavily.NewClient(&cfg.Tavily)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize Tavily client")
		}
		searchProvider = client
	} else {
		logger.Warn().Msg("TAVILY_API_KEY not set, search pipelines unavailable")
	}

	var completionProvider providers.CompletionProvider
	if cfg.OpenAI.APIKey != "" {
		client, err := openai.NewClient(&cfg.OpenAI)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize OpenAI client")
		}
		completionProvider = client
	} else {
		logger.Warn().Msg("OPENAI_API_KEY not set, extraction pipelines unavailable")
	}

	// Missing image credential silently disables enrichment.
	var imageProvider providers.ImageProvider
	if cfg.Unsplash.AccessKey != "" {
		client, err := unsplash.NewClient(&cfg.Unsplash)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to initialize Unsplash client, enrichment disabled")
		} else {
			imageProvider = client
		}
	}
	enricher := enrichment.NewImageEnricher(imageProvider)

	pageExtractor := content.NewPageExtractor()

	ttl := cfg.Cache.TTL
	restaurantService := services.NewRestaurantService(cacheProvider, searchProvider, completionProvider, ttl, metrics)
	dishService := services.NewDishService(cacheProvider, searchProvider, completionProvider, pageExtractor, enricher, ttl, metrics)
	itineraryService := services.NewItineraryService(cacheProvider, searchProvider, completionProvider, enricher, ttl, metrics)
	foodMapService := services.NewFoodMapService(cacheProvider, searchProvider, completionProvider, enricher, ttl, metrics)

	router := routes.NewRouter(
		handlers.NewRestaurantHandler(restaurantService),
		handlers.NewDishHandler(dishService),
		handlers.NewItineraryHandler(itineraryService),
		handlers.NewFoodMapHandler(foodMapService),
		metrics,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.SetupRoutes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", server.Addr).Msg("server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("forced shutdown")
	}
	logger.Info().Msg("server stopped")
}
