package planner

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tmc/langchaingo/llms"
)

type fakeModel struct {
	response string
	err      error
}

func (m *fakeModel) GenerateContent(_ context.Context, _ []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: m.response}}}, nil
}

func (m *fakeModel) Call(_ context.Context, _ string, _ ...llms.CallOption) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func TestTemplatePlanner(t *testing.T) {
	p := NewTemplatePlanner(nil)

	testCases := []struct {
		name     string
		topic    string
		count    int
		expected []string
	}{
		{
			name:  "FullTriple",
			topic: "X",
			count: 3,
			expected: []string{
				"X",
				"X latest developments",
				"X practical applications",
			},
		},
		{
			name:     "TruncatesToCount",
			topic:    "solar power",
			count:    2,
			expected: []string{"solar power", "solar power latest developments"},
		},
		{
			name:     "SingleQuery",
			topic:    "solar power",
			count:    1,
			expected: []string{"solar power"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, p.Plan(context.Background(), tc.topic, tc.count))
		})
	}
}

func TestLLMPlannerSplitsLines(t *testing.T) {
	model := &fakeModel{response: "what is fusion energy\n\n  fusion energy breakthroughs 2026  \nfusion reactors in industry\nextra query beyond count\n"}
	p := NewLLMPlanner(model, 0.7, 200, nil)

	queries := p.Plan(context.Background(), "fusion energy", 3)

	assert.Equal(t, []string{
		"what is fusion energy",
		"fusion energy breakthroughs 2026",
		"fusion reactors in industry",
	}, queries)
}

func TestLLMPlannerFallsBackOnError(t *testing.T) {
	model := &fakeModel{err: errors.New("model unavailable")}
	p := NewLLMPlanner(model, 0.7, 200, nil)

	queries := p.Plan(context.Background(), "fusion energy", 3)

	assert.Equal(t, []string{
		"fusion energy",
		"fusion energy latest news",
		"fusion energy applications",
	}, queries)
}

func TestLLMPlannerBlankResponse(t *testing.T) {
	model := &fakeModel{response: "\n  \n"}
	p := NewLLMPlanner(model, 0.7, 200, nil)

	queries := p.Plan(context.Background(), "fusion energy", 3)

	assert.Equal(t, []string{"fusion energy"}, queries, "never returns an empty plan")
}
