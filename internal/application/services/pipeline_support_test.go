package services

import (
	"context"
	"strings"
	"testing"

	"github.com/koladele/tastetrail/internal/domain/entities"
	"github.com/koladele/tastetrail/internal/domain/providers"
	apperrors "github.com/koladele/tastetrail/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheKey(t *testing.T) {
	tests := []struct {
		name  string
		tool  string
		parts []string
		want  string
	}{
		{"city only", "restaurants", []string{"Lisbon"}, "restaurants:lisbon"},
		{"mixed case", "restaurants", []string{"ToKyO"}, "restaurants:tokyo"},
		{"with preference", "restaurants", []string{"Lisbon", "Cheap Eats"}, "restaurants:lisbon:cheap eats"},
		{"empty parts dropped", "itinerary", []string{"Lisbon", ""}, "itinerary:lisbon"},
		{"whitespace trimmed", "dishes", []string{"  Tokyo ", " Ichiran "}, "dishes:tokyo:ichiran"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cacheKey(tt.tool, tt.parts...))
		})
	}
}

func TestDecodeArrayField_StrictDecode(t *testing.T) {
	var restaurants []entities.Restaurant
	err := decodeArrayField("restaurants", `{"restaurants":[{"name":"A"}]}`, "restaurants", &restaurants)
	require.NoError(t, err)
	require.Len(t, restaurants, 1)
	assert.Equal(t, "A", restaurants[0].Name)
}

func TestDecodeArrayField_NonArrayValue(t *testing.T) {
	restaurants := []entities.Restaurant{}
	err := decodeArrayField("restaurants", `{"restaurants":"not an array"}`, "restaurants", &restaurants)
	require.NoError(t, err)
	assert.Empty(t, restaurants)
}

func TestDecodeArrayField_MissingField(t *testing.T) {
	restaurants := []entities.Restaurant{}
	err := decodeArrayField("restaurants", `{"something_else":[]}`, "restaurants", &restaurants)
	require.NoError(t, err)
	assert.Empty(t, restaurants)
}

func TestDecodeArrayField_MalformedElementsDegradeToEmpty(t *testing.T) {
	restaurants := []entities.Restaurant{}
	err := decodeArrayField("restaurants", `{"restaurants":[{"name":17}]}`, "restaurants", &restaurants)
	require.NoError(t, err)
	assert.Empty(t, restaurants, "a half-failed decode must not leave partial records")
}

func TestDecodeArrayField_UnparsableJSON(t *testing.T) {
	var restaurants []entities.Restaurant
	err := decodeArrayField("restaurants", `sorry, no json here`, "restaurants", &restaurants)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeUpstream, apperrors.TypeOf(err))
}

func TestGatherSearchContext_JoinsAndBounds(t *testing.T) {
	long := strings.Repeat("snippet ", 2000)
	search := &fakeSearch{results: []providers.SearchResult{
		{Title: "T", URL: "https://x.example", Content: long},
	}}

	contextText, err := gatherSearchContext(context.Background(), search, []string{"q1", "q2"}, providers.SearchOptions{MaxResults: 3})
	require.NoError(t, err)
	assert.Equal(t, 2, search.callCount())
	assert.LessOrEqual(t, len(contextText), maxContextLength)
	assert.NotContains(t, contextText, "  ", "whitespace is collapsed")
}

func TestGatherSearchContext_FailurePropagates(t *testing.T) {
	search := &fakeSearch{err: assert.AnError}
	_, err := gatherSearchContext(context.Background(), search, []string{"q"}, providers.SearchOptions{})
	assert.Error(t, err)
}
