package unsplash

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/koladele/tastetrail/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_RequiresAccessKey(t *testing.T) {
	_, err := NewClient(&config.UnsplashConfig{})
	assert.Error(t, err)
}

func TestSearchImage_ReturnsSmallURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/search/photos", r.URL.Path)
		require.Equal(t, "Client-ID test-key", r.Header.Get("Authorization"))
		require.Equal(t, "tonkotsu ramen", r.URL.Query().Get("query"))
		require.Equal(t, "1", r.URL.Query().Get("per_page"))
		require.Equal(t, "landscape", r.URL.Query().Get("orientation"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"results": []map[string]interface{}{
				{"urls": map[string]string{"small": "https://images.example/ramen-small", "regular": "https://images.example/ramen-reg"}},
			},
		})
	}))
	defer server.Close()

	client, err := NewClientWithOptions(&config.UnsplashConfig{AccessKey: "test-key"}, server.URL, nil)
	require.NoError(t, err)

	url, err := client.SearchImage(context.Background(), "tonkotsu ramen")
	require.NoError(t, err)
	assert.Equal(t, "https://images.example/ramen-small", url)
}

func TestSearchImage_NoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"results": []interface{}{}})
	}))
	defer server.Close()

	client, err := NewClientWithOptions(&config.UnsplashConfig{AccessKey: "k"}, server.URL, nil)
	require.NoError(t, err)

	url, err := client.SearchImage(context.Background(), "nothing matches this")
	require.NoError(t, err)
	assert.Equal(t, "", url)
}

func TestSearchImage_Non200IsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusForbidden)
	}))
	defer server.Close()

	client, err := NewClientWithOptions(&config.UnsplashConfig{AccessKey: "k"}, server.URL, nil)
	require.NoError(t, err)

	_, err = client.SearchImage(context.Background(), "ramen")
	assert.Error(t, err)
}
