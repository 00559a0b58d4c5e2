// Package fetch upgrades thin live-search snippets to real article text.
package fetch

import (
	"context"
	"time"

	"github.com/go-shiori/go-readability"

	"scout/agentlog"
	"scout/search"
)

const (
	// Snippets at least this long are left alone.
	minSnippetLen = 200
	// Extracted article text is cut to this many characters.
	maxContentLen = 1500
)

// Enricher replaces short snippets with readability-extracted article
// bodies. Fetch failures leave the original result untouched; this
// stage can only improve results, never lose them.
type Enricher struct {
	timeout time.Duration
	log     *agentlog.Logger

	// extract is swappable in tests.
	extract func(url string, timeout time.Duration) (string, error)
}

func NewEnricher(timeout time.Duration, log *agentlog.Logger) *Enricher {
	return &Enricher{
		timeout: timeout,
		log:     log,
		extract: extractArticle,
	}
}

func (e *Enricher) Enrich(ctx context.Context, results []search.Result) []search.Result {
	enriched := make([]search.Result, len(results))
	copy(enriched, results)

	for i, r := range enriched {
		if len(r.Snippet) >= minSnippetLen {
			continue
		}
		if err := ctx.Err(); err != nil {
			return enriched
		}

		content, err := e.extract(r.URL, e.timeout)
		if err != nil {
			e.log.Error("ContentEnricher", "fetch failed, keeping snippet", err)
			continue
		}
		if len(content) <= len(r.Snippet) {
			continue
		}
		if len(content) > maxContentLen {
			content = content[:maxContentLen]
		}
		enriched[i].Snippet = content
		e.log.Log("ContentEnricher", "enriched source", r.URL)
	}
	return enriched
}

func extractArticle(url string, timeout time.Duration) (string, error) {
	article, err := readability.FromURL(url, timeout)
	if err != nil {
		return "", err
	}
	return article.TextContent, nil
}
