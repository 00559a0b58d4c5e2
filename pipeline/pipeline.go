// Package pipeline orchestrates one research run: plan queries, search,
// deduplicate, analyze, synthesize, report.
package pipeline

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"scout/agentlog"
	"scout/insight"
	"scout/planner"
	"scout/search"
	"scout/text"
)

// State tracks pipeline progress. Failed is terminal and reachable from
// any in-progress state.
type State int

const (
	StateIdle State = iota
	StateSearching
	StateAnalyzing
	StateReporting
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSearching:
		return "searching"
	case StateAnalyzing:
		return "analyzing"
	case StateReporting:
		return "reporting"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// AnalysisResult is the structured output of a run, handed to the
// report collaborator. Built fresh per run; nothing is shared between
// runs.
type AnalysisResult struct {
	Topic     string           `json:"topic"`
	Queries   []string         `json:"queries"`
	Keywords  []string         `json:"keywords"`
	KeyPoints []string         `json:"key_points"`
	Insights  insight.Insights `json:"insights"`
	Sources   []search.Result  `json:"sources"`
}

// Searcher is the provider-facing contract; *search.Provider satisfies it.
type Searcher interface {
	Search(ctx context.Context, query string) ([]search.Result, error)
}

// Reporter renders and persists an AnalysisResult, returning an
// addressable path for the artifact.
type Reporter interface {
	Write(res *AnalysisResult) (string, error)
}

// Enricher optionally upgrades thin snippets before analysis.
type Enricher interface {
	Enrich(ctx context.Context, results []search.Result) []search.Result
}

// Scorer optionally annotates sources with topic relevance.
type Scorer interface {
	Score(topic, content string) float64
}

// Sources feeding key-point extraction, and points taken per source.
const (
	keyPointSources = 5
	pointsPerSource = 2
)

type Pipeline struct {
	planner  planner.Planner
	searcher Searcher
	synth    insight.Synthesizer
	reporter Reporter
	enricher Enricher // nil outside live mode
	scorer   Scorer   // nil disables relevance annotation
	log      *agentlog.Logger

	numQueries  int
	maxKeywords int

	state State
}

type Option func(*Pipeline)

func WithEnricher(e Enricher) Option {
	return func(p *Pipeline) { p.enricher = e }
}

func WithScorer(s Scorer) Option {
	return func(p *Pipeline) { p.scorer = s }
}

func New(pl planner.Planner, searcher Searcher, synth insight.Synthesizer, reporter Reporter,
	numQueries, maxKeywords int, log *agentlog.Logger, opts ...Option) *Pipeline {
	p := &Pipeline{
		planner:     pl,
		searcher:    searcher,
		synth:       synth,
		reporter:    reporter,
		log:         log,
		numQueries:  numQueries,
		maxKeywords: maxKeywords,
		state:       StateIdle,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// State reports the current pipeline state. The pipeline is
// single-threaded; reading between runs is well defined.
func (p *Pipeline) State() State { return p.state }

// Run executes the full research flow for one topic and returns the
// analysis and the report path. Any unhandled stage error marks the
// pipeline Failed and surfaces to the caller; retry or abort is the
// caller's decision.
func (p *Pipeline) Run(ctx context.Context, topic string) (*AnalysisResult, string, error) {
	p.state = StateIdle

	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, "", p.fail(fmt.Errorf("topic must not be empty"))
	}

	p.state = StateSearching
	p.log.Log("ResearchPipeline", "starting research", topic)

	queries := p.planner.Plan(ctx, topic, p.numQueries)

	var gathered []search.Result
	for _, query := range queries {
		results, err := p.searcher.Search(ctx, query)
		if err != nil {
			return nil, "", p.fail(fmt.Errorf("search %q: %w", query, err))
		}
		gathered = append(gathered, results...)
	}

	sources := search.Dedupe(gathered)
	p.log.Log("ResearchPipeline", "search complete",
		strconv.Itoa(len(sources))+" unique sources")

	p.state = StateAnalyzing

	if p.enricher != nil {
		sources = p.enricher.Enrich(ctx, sources)
	}
	if p.scorer != nil {
		for i := range sources {
			sources[i].Score = p.scorer.Score(topic, sources[i].Title+" "+sources[i].Snippet)
		}
	}

	snippets := make([]string, len(sources))
	for i, r := range sources {
		snippets[i] = r.Snippet
	}
	combined := text.SummarizeSnippets(snippets)

	keywords := text.ExtractKeywords(combined, p.maxKeywords)
	p.log.Log("ResearchPipeline", "extracted keywords",
		strconv.Itoa(len(keywords))+" keywords")

	var keyPoints []string
	for _, r := range sources[:min(len(sources), keyPointSources)] {
		keyPoints = append(keyPoints, text.ExtractKeyPoints(r.Snippet, pointsPerSource)...)
	}

	insights := p.synth.Synthesize(ctx, topic, combined, sources)

	result := &AnalysisResult{
		Topic:     topic,
		Queries:   queries,
		Keywords:  keywords,
		KeyPoints: keyPoints,
		Insights:  insights,
		Sources:   sources,
	}

	p.state = StateReporting
	path, err := p.reporter.Write(result)
	if err != nil {
		return nil, "", p.fail(fmt.Errorf("write report: %w", err))
	}

	p.state = StateDone
	p.log.Log("ResearchPipeline", "research complete", path)
	return result, path, nil
}

func (p *Pipeline) fail(err error) error {
	p.state = StateFailed
	p.log.Error("ResearchPipeline", "run failed", err)
	return err
}
