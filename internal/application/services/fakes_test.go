package services

import (
	"context"
	"errors"
	"sync"

	"github.com/koladele/tastetrail/internal/domain/providers"
)

type fakeSearch struct {
	mu      sync.Mutex
	calls   int
	results []providers.SearchResult
	err     error
}

func (f *fakeSearch) Search(ctx context.Context, query string, opts providers.SearchOptions) ([]providers.SearchResult, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.results, nil
}

func (f *fakeSearch) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeLLM struct {
	mu       sync.Mutex
	calls    int
	response string
	err      error
}

func (f *fakeLLM) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeLLM) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeImages struct {
	mu      sync.Mutex
	calls   int
	failFor map[string]bool
}

func (f *fakeImages) SearchImage(ctx context.Context, query string) (string, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.failFor[query] {
		return "", errors.New("image api unavailable")
	}
	return "https://images.example/" + query, nil
}

type fakePages struct {
	mu    sync.Mutex
	calls int
	text  string
}

func (f *fakePages) FetchReadableText(ctx context.Context, pageURL string) string {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	return f.text
}

var sampleSearchResults = []providers.SearchResult{
	{Title: "Where locals eat", URL: "https://food.example/guide", Content: "Tasca do Zé serves grilled sardines in Alfama."},
	{Title: "Hidden gems", URL: "https://food.example/gems", Content: "Cantina Nova is a neighborhood favorite."},
}
