// Package planner turns one research topic into several diversified
// search queries.
package planner

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"

	"scout/agentlog"
)

// Planner produces up to count queries for a topic, each non-empty, in
// the order they should be searched. Implementations never fail; the
// worst case is a deterministic fallback.
type Planner interface {
	Plan(ctx context.Context, topic string, count int) []string
}

// TemplatePlanner is the offline strategy: a fixed three-way expansion
// of the topic.
type TemplatePlanner struct {
	log *agentlog.Logger
}

func NewTemplatePlanner(log *agentlog.Logger) *TemplatePlanner {
	return &TemplatePlanner{log: log}
}

func (p *TemplatePlanner) Plan(_ context.Context, topic string, count int) []string {
	queries := truncate([]string{
		topic,
		fmt.Sprintf("%s latest developments", topic),
		fmt.Sprintf("%s practical applications", topic),
	}, count)
	p.log.Log("QueryPlanner", "generated template queries", queries...)
	return queries
}

const queryPrompt = `You are a research assistant. Generate %d different search queries
to comprehensively research the topic: "%s"

Each query should focus on a different aspect:
1. General overview and definition
2. Recent developments or news
3. Practical applications or use cases

Return ONLY the queries, one per line, without numbering or explanation.`

// LLMPlanner asks a generative model for the queries and degrades to a
// simple deterministic triple on any model failure.
type LLMPlanner struct {
	model       llms.Model
	temperature float64
	maxTokens   int
	log         *agentlog.Logger
}

func NewLLMPlanner(model llms.Model, temperature float64, maxTokens int, log *agentlog.Logger) *LLMPlanner {
	return &LLMPlanner{model: model, temperature: temperature, maxTokens: maxTokens, log: log}
}

func (p *LLMPlanner) Plan(ctx context.Context, topic string, count int) []string {
	prompt := fmt.Sprintf(queryPrompt, count, topic)

	completion, err := llms.GenerateFromSinglePrompt(ctx, p.model, prompt,
		llms.WithTemperature(p.temperature),
		llms.WithMaxTokens(p.maxTokens),
	)
	if err != nil {
		p.log.Error("QueryPlanner", "query generation failed, using fallback queries", err)
		return truncate([]string{
			topic,
			fmt.Sprintf("%s latest news", topic),
			fmt.Sprintf("%s applications", topic),
		}, count)
	}

	var queries []string
	for _, line := range strings.Split(completion, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			queries = append(queries, line)
		}
	}
	if len(queries) == 0 {
		p.log.Log("QueryPlanner", "model returned no queries, using topic")
		queries = []string{topic}
	}

	queries = truncate(queries, count)
	p.log.Log("QueryPlanner", "generated queries", queries...)
	return queries
}

func truncate(queries []string, count int) []string {
	if count >= 0 && len(queries) > count {
		return queries[:count]
	}
	return queries
}
