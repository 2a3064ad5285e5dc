package tavily

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/koladele/tastetrail/internal/domain/providers"
	"github.com/koladele/tastetrail/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient(&config.TavilyConfig{})
	assert.Error(t, err)

	_, err = NewClient(nil)
	assert.Error(t, err)
}

func TestSearch_SendsRequestAndParsesResults(t *testing.T) {
	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/search", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"answer": "Lisbon is famous for seafood.",
			"results": []map[string]string{
				{"title": "Guide", "url": "https://food.example/guide", "content": "Eat sardines in Alfama."},
				{"title": "Gems", "url": "https://food.example/gems", "content": "Try the bifana."},
			},
		})
	}))
	defer server.Close()

	client, err := NewClientWithOptions(&config.TavilyConfig{APIKey: "test-key"}, server.URL, nil)
	require.NoError(t, err)

	results, err := client.Search(context.Background(), "best food lisbon", providers.SearchOptions{
		Depth:         "basic",
		MaxResults:    5,
		IncludeAnswer: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "test-key", gotBody["api_key"])
	assert.Equal(t, "best food lisbon", gotBody["query"])
	assert.Equal(t, "basic", gotBody["search_depth"])
	assert.Equal(t, float64(5), gotBody["max_results"])
	assert.Equal(t, true, gotBody["include_answer"])

	require.Len(t, results, 2)
	assert.Equal(t, "Guide", results[0].Title)
	assert.Equal(t, "https://food.example/gems", results[1].URL)
	assert.Equal(t, "Eat sardines in Alfama.", results[0].Content)
}

func TestSearch_Non200IsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client, err := NewClientWithOptions(&config.TavilyConfig{APIKey: "k"}, server.URL, nil)
	require.NoError(t, err)

	_, err = client.Search(context.Background(), "q", providers.SearchOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestSearch_MalformedResponseIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client, err := NewClientWithOptions(&config.TavilyConfig{APIKey: "k"}, server.URL, nil)
	require.NoError(t, err)

	_, err = client.Search(context.Background(), "q", providers.SearchOptions{})
	assert.Error(t, err)
}
