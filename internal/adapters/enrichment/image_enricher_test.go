package enrichment

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeImageProvider struct {
	mu      sync.Mutex
	calls   int
	failFor map[string]bool
}

func (f *fakeImageProvider) SearchImage(ctx context.Context, query string) (string, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.failFor[query] {
		return "", errors.New("image api unavailable")
	}
	return "https://images.example/" + query, nil
}

func TestResolveAll_AllSucceed(t *testing.T) {
	provider := &fakeImageProvider{}
	enricher := NewImageEnricher(provider)

	urls := enricher.ResolveAll(context.Background(), []string{"ramen", "gyoza", "mochi"})

	assert.Equal(t, []string{
		"https://images.example/ramen",
		"https://images.example/gyoza",
		"https://images.example/mochi",
	}, urls)
	assert.Equal(t, 3, provider.calls)
}

func TestResolveAll_OneFailureIsIsolated(t *testing.T) {
	provider := &fakeImageProvider{failFor: map[string]bool{"gyoza": true}}
	enricher := NewImageEnricher(provider)

	urls := enricher.ResolveAll(context.Background(), []string{"ramen", "gyoza", "mochi"})

	assert.Len(t, urls, 3)
	assert.Equal(t, "https://images.example/ramen", urls[0])
	assert.Equal(t, "", urls[1], "failed lookup degrades to empty, not error")
	assert.Equal(t, "https://images.example/mochi", urls[2])
}

func TestResolveAll_NilProviderSkipsLookups(t *testing.T) {
	enricher := NewImageEnricher(nil)

	urls := enricher.ResolveAll(context.Background(), []string{"ramen", "gyoza"})

	assert.Equal(t, []string{"", ""}, urls)
	assert.False(t, enricher.Enabled())
}

func TestResolveAll_EmptyQueriesSkipped(t *testing.T) {
	provider := &fakeImageProvider{}
	enricher := NewImageEnricher(provider)

	urls := enricher.ResolveAll(context.Background(), []string{"", "ramen", ""})

	assert.Equal(t, []string{"", "https://images.example/ramen", ""}, urls)
	assert.Equal(t, 1, provider.calls)
}

func TestResolveAll_NoQueries(t *testing.T) {
	enricher := NewImageEnricher(&fakeImageProvider{})
	assert.Empty(t, enricher.ResolveAll(context.Background(), nil))
}
