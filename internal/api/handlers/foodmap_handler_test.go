package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/koladele/tastetrail/internal/adapters/cache"
	"github.com/koladele/tastetrail/internal/adapters/enrichment"
	"github.com/koladele/tastetrail/internal/application/services"
)

func newFoodMapTestHandler() *FoodMapHandler {
	search := &stubSearch{}
	llm := &stubLLM{response: `{"days":[]}`}
	svc := services.NewFoodMapService(cache.NewMemoryAdapter(), search, llm, enrichment.NewImageEnricher(nil), 0, nil)
	return NewFoodMapHandler(svc)
}

func TestBuildFoodMap_DaysValidation(t *testing.T) {
	handler := newFoodMapTestHandler()

	tests := []struct {
		query string
		want  int
	}{
		{"city=Lisbon", http.StatusOK},       // default 3 days
		{"city=Lisbon&days=1", http.StatusOK},
		{"city=Lisbon&days=7", http.StatusOK},
		{"city=Lisbon&days=0", http.StatusBadRequest},
		{"city=Lisbon&days=8", http.StatusBadRequest},
		{"city=Lisbon&days=three", http.StatusBadRequest},
		{"days=3", http.StatusBadRequest}, // city missing
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/api/recommendations/foodmap?"+tt.query, nil)
		rec := httptest.NewRecorder()
		handler.BuildFoodMap(rec, req)
		if rec.Code != tt.want {
			t.Errorf("query %q: expected %d, got %d", tt.query, tt.want, rec.Code)
		}
	}
}
