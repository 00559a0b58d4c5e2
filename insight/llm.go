package insight

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"

	"scout/agentlog"
	"scout/search"
)

const synthesisPrompt = `Analyze the following information about "%s" and provide:

1. A brief overview (2-3 sentences)
2. Key findings (3-4 bullet points)
3. Important implications or applications

Content:
%s

Format your response as:
OVERVIEW: [your overview]
KEY_FINDINGS: [bullet points]
IMPLICATIONS: [implications]`

// LLM synthesizes insights with a generative model and degrades to the
// deterministic synthesizer on any failure, so callers always get a
// complete triple.
type LLM struct {
	model      llms.Model
	fallback   *Deterministic
	charBudget int
	maxTokens  int
	log        *agentlog.Logger
}

func NewLLM(model llms.Model, fallback *Deterministic, charBudget, maxTokens int, log *agentlog.Logger) *LLM {
	if charBudget <= 0 {
		charBudget = 3000
	}
	return &LLM{model: model, fallback: fallback, charBudget: charBudget, maxTokens: maxTokens, log: log}
}

func (l *LLM) Synthesize(ctx context.Context, topic, combined string, results []search.Result) Insights {
	if len(combined) > l.charBudget {
		combined = combined[:l.charBudget] + "..."
	}

	l.log.Log("InsightSynthesizer", "synthesizing insights with model")

	response, err := llms.GenerateFromSinglePrompt(ctx, l.model,
		fmt.Sprintf(synthesisPrompt, topic, combined),
		llms.WithTemperature(0.5),
		llms.WithMaxTokens(l.maxTokens),
	)
	if err != nil {
		l.log.Error("InsightSynthesizer", "model call failed, using deterministic fallback", err)
		return l.fallback.Synthesize(ctx, topic, combined, results)
	}

	parsed, err := parseSections(response)
	if err != nil {
		l.log.Error("InsightSynthesizer", "unparseable response, using deterministic fallback", err)
		return l.fallback.Synthesize(ctx, topic, combined, results)
	}

	// A header can be present but empty; backfill so the triple is
	// always complete.
	if parsed.Overview == "" {
		parsed.Overview = overviewFrom(topic, results)
	}
	if parsed.KeyFindings == "" {
		parsed.KeyFindings = findingsFrom(results)
	}
	if parsed.Implications == "" {
		parsed.Implications = implicationsFor(topic)
	}
	return parsed
}
