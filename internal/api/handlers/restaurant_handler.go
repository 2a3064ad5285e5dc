package handlers

import (
	"net/http"
	"strings"

	"github.com/koladele/tastetrail/internal/application/services"
	"github.com/koladele/tastetrail/internal/domain/entities"
)

// RestaurantHandler handles restaurant recommendation requests
type RestaurantHandler struct {
	service *services.RestaurantService
}

// NewRestaurantHandler creates a new restaurant handler
func NewRestaurantHandler(service *services.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{service: service}
}

type restaurantRequest struct {
	City        string `validate:"required,min=1,max=120"`
	Preferences string `validate:"max=200"`
}

type restaurantResponse struct {
	*entities.RestaurantRecommendations
	Summary string `json:"summary"`
}

// FindRestaurants handles GET /api/recommendations/restaurants?city=&preferences=
func (h *RestaurantHandler) FindRestaurants(w http.ResponseWriter, r *http.Request) {
	req := restaurantRequest{
		City:        strings.TrimSpace(r.URL.Query().Get("city")),
		Preferences: strings.TrimSpace(r.URL.Query().Get("preferences")),
	}
	if err := validate.Struct(req); err != nil {
		respondWithError(w, http.StatusBadRequest, "city parameter is required")
		return
	}

	payload, summary, err := h.service.FindRestaurants(r.Context(), req.City, req.Preferences)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, restaurantResponse{
		RestaurantRecommendations: payload,
		Summary:                   summary,
	})
}
