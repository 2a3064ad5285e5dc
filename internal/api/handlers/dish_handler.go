package handlers

import (
	"net/http"
	"strings"

	"github.com/koladele/tastetrail/internal/application/services"
	"github.com/koladele/tastetrail/internal/domain/entities"
)

// DishHandler handles dish lookup requests
type DishHandler struct {
	service *services.DishService
}

// NewDishHandler creates a new dish handler
func NewDishHandler(service *services.DishService) *DishHandler {
	return &DishHandler{service: service}
}

type dishRequest struct {
	City       string `validate:"required,min=1,max=120"`
	Restaurant string `validate:"required,min=1,max=160"`
	URL        string `validate:"omitempty,url"`
}

type dishResponse struct {
	*entities.DishMenu
	Summary string `json:"summary"`
}

// LookupDishes handles GET /api/recommendations/dishes?city=&restaurant=&url=
func (h *DishHandler) LookupDishes(w http.ResponseWriter, r *http.Request) {
	req := dishRequest{
		City:       strings.TrimSpace(r.URL.Query().Get("city")),
		Restaurant: strings.TrimSpace(r.URL.Query().Get("restaurant")),
		URL:        strings.TrimSpace(r.URL.Query().Get("url")),
	}
	if err := validate.Struct(req); err != nil {
		respondWithError(w, http.StatusBadRequest, "city and restaurant parameters are required; url must be a valid URL")
		return
	}

	payload, summary, err := h.service.LookupDishes(r.Context(), req.Restaurant, req.City, req.URL)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, dishResponse{
		DishMenu: payload,
		Summary:  summary,
	})
}
