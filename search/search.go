package search

import (
	"context"
	"errors"
	"strings"
)

// Result is a single search hit. URL is the identity used for
// deduplication; everything downstream treats Result as read-only.
type Result struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Snippet string  `json:"snippet"`
	Score   float64 `json:"score,omitempty"`
}

type Request struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

// Engine is one way of answering a query. The Provider composes engines
// and owns retry and fallback policy; engines just search.
type Engine interface {
	Search(ctx context.Context, req *Request) ([]Result, error)
}

// ErrRateLimited classifies backend throttling. It is the only error
// class the Provider retries.
var ErrRateLimited = errors.New("search backend rate limited")

// Dedupe merges results keyed by URL, first occurrence wins, relative
// order of first occurrences preserved.
func Dedupe(results []Result) []Result {
	seen := make(map[string]struct{}, len(results))
	unique := make([]Result, 0, len(results))
	for _, r := range results {
		if _, ok := seen[r.URL]; ok {
			continue
		}
		seen[r.URL] = struct{}{}
		unique = append(unique, r)
	}
	return unique
}

// IsRateLimited reports whether err belongs to the rate-limit class,
// either by sentinel or by backend message text.
func IsRateLimited(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrRateLimited) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "ratelimit")
}
