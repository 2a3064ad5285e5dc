package handlers

import (
	"net/http"
	"strings"

	"github.com/koladele/tastetrail/internal/application/services"
	"github.com/koladele/tastetrail/internal/domain/entities"
)

// ItineraryHandler handles single-day itinerary requests
type ItineraryHandler struct {
	service *services.ItineraryService
}

// NewItineraryHandler creates a new itinerary handler
func NewItineraryHandler(service *services.ItineraryService) *ItineraryHandler {
	return &ItineraryHandler{service: service}
}

type itineraryRequest struct {
	City        string `validate:"required,min=1,max=120"`
	Preferences string `validate:"max=200"`
}

type itineraryResponse struct {
	*entities.DayPlan
	Summary string `json:"summary"`
}

// PlanFoodDay handles GET /api/recommendations/itinerary?city=&preferences=
func (h *ItineraryHandler) PlanFoodDay(w http.ResponseWriter, r *http.Request) {
	req := itineraryRequest{
		City:        strings.TrimSpace(r.URL.Query().Get("city")),
		Preferences: strings.TrimSpace(r.URL.Query().Get("preferences")),
	}
	if err := validate.Struct(req); err != nil {
		respondWithError(w, http.StatusBadRequest, "city parameter is required")
		return
	}

	payload, summary, err := h.service.PlanFoodDay(r.Context(), req.City, req.Preferences)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, itineraryResponse{
		DayPlan: payload,
		Summary: summary,
	})
}
