package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/koladele/tastetrail/internal/application/services"
	"github.com/koladele/tastetrail/internal/domain/entities"
)

const defaultMapDays = 3

// FoodMapHandler handles multi-day food map requests
type FoodMapHandler struct {
	service *services.FoodMapService
}

// NewFoodMapHandler creates a new food map handler
func NewFoodMapHandler(service *services.FoodMapService) *FoodMapHandler {
	return &FoodMapHandler{service: service}
}

type foodMapRequest struct {
	City string `validate:"required,min=1,max=120"`
	Days int    `validate:"min=1,max=7"`
}

type foodMapResponse struct {
	*entities.FoodMap
	Summary string `json:"summary"`
}

// BuildFoodMap handles GET /api/recommendations/foodmap?city=&days=
func (h *FoodMapHandler) BuildFoodMap(w http.ResponseWriter, r *http.Request) {
	days := defaultMapDays
	if daysStr := strings.TrimSpace(r.URL.Query().Get("days")); daysStr != "" {
		parsed, err := strconv.Atoi(daysStr)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "days must be an integer")
			return
		}
		days = parsed
	}

	req := foodMapRequest{
		City: strings.TrimSpace(r.URL.Query().Get("city")),
		Days: days,
	}
	if err := validate.Struct(req); err != nil {
		respondWithError(w, http.StatusBadRequest, "city parameter is required and days must be between 1 and 7")
		return
	}

	payload, summary, err := h.service.BuildFoodMap(r.Context(), req.City, req.Days)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, foodMapResponse{
		FoodMap: payload,
		Summary: summary,
	})
}
