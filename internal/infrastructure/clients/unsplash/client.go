package unsplash

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/koladele/tastetrail/pkg/config"
)

const (
	defaultBaseURL     = "https://api.unsplash.com"
	defaultHTTPTimeout = 10 * time.Second
)

// Client implements the ImageProvider against the Unsplash search API.
type Client struct {
	accessKey  string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new Unsplash client.
func NewClient(cfg *config.UnsplashConfig) (*Client, error) {
	if cfg == nil || cfg.AccessKey == "" {
		return nil, errors.New("unsplash access key is required")
	}
	return &Client{
		accessKey:  cfg.AccessKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
	}, nil
}

// NewClientWithOptions allows overriding base URL and HTTP client (used for tests).
func NewClientWithOptions(cfg *config.UnsplashConfig, baseURL string, httpClient *http.Client) (*Client, error) {
	client, err := NewClient(cfg)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(baseURL) != "" {
		client.baseURL = strings.TrimRight(baseURL, "/")
	}
	if httpClient != nil {
		client.httpClient = httpClient
	}
	return client, nil
}

type photoURLs struct {
	Small string `json:"small"`
}

type photo struct {
	URLs photoURLs `json:"urls"`
}

type searchResponse struct {
	Results []photo `json:"results"`
}

// SearchImage returns the small URL of one landscape photo matching the
// query, or an empty string when the search produced no results.
func (c *Client) SearchImage(ctx context.Context, query string) (string, error) {
	params := url.Values{
		"query":       []string{query},
		"per_page":    []string{"1"},
		"orientation": []string{"landscape"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search/photos?"+params.Encode(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Client-ID "+c.accessKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("unsplash search failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("unsplash search failed with status %d", resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode unsplash response: %w", err)
	}

	if len(parsed.Results) == 0 {
		return "", nil
	}
	return parsed.Results[0].URLs.Small, nil
}
