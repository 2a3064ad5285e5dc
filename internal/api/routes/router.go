package routes

import (
	"net/http"

	"github.com/koladele/tastetrail/internal/api/handlers"
	"github.com/koladele/tastetrail/internal/api/middleware"
	"github.com/koladele/tastetrail/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	restaurantHandler *handlers.RestaurantHandler
	dishHandler       *handlers.DishHandler
	itineraryHandler  *handlers.ItineraryHandler
	foodMapHandler    *handlers.FoodMapHandler

	metrics *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	restaurantHandler *handlers.RestaurantHandler,
	dishHandler *handlers.DishHandler,
	itineraryHandler *handlers.ItineraryHandler,
	foodMapHandler *handlers.FoodMapHandler,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:               http.NewServeMux(),
		restaurantHandler: restaurantHandler,
		dishHandler:       dishHandler,
		itineraryHandler:  itineraryHandler,
		foodMapHandler:    foodMapHandler,
		metrics:           metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	r.mux.HandleFunc("GET /api/recommendations/restaurants", r.restaurantHandler.FindRestaurants)
	r.mux.HandleFunc("GET /api/recommendations/dishes", r.dishHandler.LookupDishes)
	r.mux.HandleFunc("GET /api/recommendations/itinerary", r.itineraryHandler.PlanFoodDay)
	r.mux.HandleFunc("GET /api/recommendations/foodmap", r.foodMapHandler.BuildFoodMap)

	var handler http.Handler = r.mux
	if r.metrics != nil {
		handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	}
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.CORSMiddleware(handler)

	return handler
}
