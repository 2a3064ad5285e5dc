package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/koladele/tastetrail/internal/adapters/cache"
	"github.com/koladele/tastetrail/internal/application/services"
	"github.com/koladele/tastetrail/internal/domain/providers"
)

type stubSearch struct {
	results []providers.SearchResult
}

func (s *stubSearch) Search(ctx context.Context, query string, opts providers.SearchOptions) ([]providers.SearchResult, error) {
	return s.results, nil
}

type stubLLM struct {
	response string
}

func (s *stubLLM) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return s.response, nil
}

func newTestHandler(search providers.SearchProvider, llm providers.CompletionProvider) *RestaurantHandler {
	svc := services.NewRestaurantService(cache.NewMemoryAdapter(), search, llm, 0, nil)
	return NewRestaurantHandler(svc)
}

func TestFindRestaurants_MissingCity(t *testing.T) {
	handler := newTestHandler(&stubSearch{}, &stubLLM{})

	req := httptest.NewRequest(http.MethodGet, "/api/recommendations/restaurants", nil)
	rec := httptest.NewRecorder()
	handler.FindRestaurants(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestFindRestaurants_MissingCredentialReturns503(t *testing.T) {
	handler := newTestHandler(nil, &stubLLM{})

	req := httptest.NewRequest(http.MethodGet, "/api/recommendations/restaurants?city=Lisbon", nil)
	rec := httptest.NewRecorder()
	handler.FindRestaurants(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	if body["error"] == "" {
		t.Error("expected a descriptive error message")
	}
}

func TestFindRestaurants_OK(t *testing.T) {
	search := &stubSearch{results: []providers.SearchResult{
		{Title: "Guide", URL: "https://food.example", Content: "Eat here."},
	}}
	llm := &stubLLM{response: `{"restaurants":[{"name":"Tasca do Zé","neighborhood":"Alfama","cuisine_type":"Portuguese","vibe_tagline":"Tiny","why_local":"Cheap and good.","url":"https://food.example/tasca"}]}`}
	handler := newTestHandler(search, llm)

	req := httptest.NewRequest(http.MethodGet, "/api/recommendations/restaurants?city=Lisbon", nil)
	rec := httptest.NewRecorder()
	handler.FindRestaurants(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		City        string `json:"city"`
		Summary     string `json:"summary"`
		Restaurants []struct {
			Name string `json:"name"`
		} `json:"restaurants"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.City != "Lisbon" {
		t.Errorf("expected city Lisbon, got %q", body.City)
	}
	if len(body.Restaurants) != 1 || body.Restaurants[0].Name != "Tasca do Zé" {
		t.Errorf("unexpected restaurants: %+v", body.Restaurants)
	}
	if body.Summary == "" {
		t.Error("expected a summary line")
	}
}
