package relevance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopicScorer(t *testing.T) {
	scorer := NewTopicScorer()

	testCases := []struct {
		name     string
		topic    string
		content  string
		expected float64
	}{
		{
			name:     "AllWordsPresent",
			topic:    "machine learning",
			content:  "Machine learning models are learning patterns from data.",
			expected: 1.0,
		},
		{
			name:     "StemmedFormCounts",
			topic:    "diagnostics",
			content:  "AI improves diagnostic accuracy in radiology.",
			expected: 1.0,
		},
		{
			name:     "PartialMatch",
			topic:    "quantum cryptography",
			content:  "Quantum computers are getting bigger every year.",
			expected: 0.5,
		},
		{
			name:     "Unrelated",
			topic:    "climate change",
			content:  "The stock market closed higher today.",
			expected: 0.0,
		},
		{
			name:     "EmptyContent",
			topic:    "anything",
			content:  "",
			expected: 0.0,
		},
		{
			name:     "EmptyTopic",
			topic:    "   ",
			content:  "some text",
			expected: 0.0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := scorer.Score(tc.topic, tc.content)
			assert.InDelta(t, tc.expected, got, 0.001)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
		})
	}
}
