package search

import (
	"context"
	"time"

	"scout/agentlog"
)

// Sleeper abstracts backoff delays so retry behavior can be tested
// without real time passing.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

type realSleeper struct{}

func (realSleeper) Sleep(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// NopSleeper returns immediately. Use it in tests.
func NopSleeper() Sleeper { return nopSleeper{} }

type nopSleeper struct{}

func (nopSleeper) Sleep(context.Context, time.Duration) error { return nil }

// Provider is the search front door for the pipeline. It owns result
// capping, the retry policy for rate limits, and the one-way live to
// offline fallback. Engines are injected at construction, never read
// from global configuration.
type Provider struct {
	live    Engine
	offline Engine

	maxResults int
	maxRetries int
	baseDelay  time.Duration
	fallback   bool

	sleeper Sleeper
	log     *agentlog.Logger

	// usingOffline flips exactly once, on rate-limit exhaustion with
	// fallback enabled. There is no path back to live.
	usingOffline bool
}

type ProviderOption func(*Provider)

func WithSleeper(s Sleeper) ProviderOption {
	return func(p *Provider) { p.sleeper = s }
}

func WithRetryPolicy(maxRetries int, baseDelay time.Duration) ProviderOption {
	return func(p *Provider) {
		p.maxRetries = maxRetries
		p.baseDelay = baseDelay
	}
}

// NewOfflineProvider serves only canned data.
func NewOfflineProvider(offline Engine, maxResults int, log *agentlog.Logger, opts ...ProviderOption) *Provider {
	p := newProvider(nil, offline, maxResults, false, log, opts...)
	p.usingOffline = true
	return p
}

// NewLiveProvider serves live results with bounded retry. When fallback
// is enabled and retries exhaust on a rate limit, the provider switches
// itself to the offline engine for the rest of its lifetime.
func NewLiveProvider(live, offline Engine, maxResults int, fallback bool, log *agentlog.Logger, opts ...ProviderOption) *Provider {
	return newProvider(live, offline, maxResults, fallback, log, opts...)
}

func newProvider(live, offline Engine, maxResults int, fallback bool, log *agentlog.Logger, opts ...ProviderOption) *Provider {
	p := &Provider{
		live:       live,
		offline:    offline,
		maxResults: maxResults,
		maxRetries: 3,
		baseDelay:  2 * time.Second,
		fallback:   fallback,
		sleeper:    realSleeper{},
		log:        log,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// UsingOffline reports whether the provider currently serves canned data.
func (p *Provider) UsingOffline() bool { return p.usingOffline }

// Search runs one query through the active engine. It never errors on
// backend failure; degradation is empty results or offline data.
func (p *Provider) Search(ctx context.Context, query string) ([]Result, error) {
	if p.maxResults <= 0 {
		return []Result{}, nil
	}

	req := &Request{Query: query, MaxResults: p.maxResults}

	if p.usingOffline {
		return p.offline.Search(ctx, req)
	}

	for attempt := 0; attempt < p.maxRetries; attempt++ {
		results, err := p.live.Search(ctx, req)
		if err == nil {
			if len(results) > p.maxResults {
				results = results[:p.maxResults]
			}
			return results, nil
		}

		if !IsRateLimited(err) {
			p.log.Error("SearchProvider", "search failed", err)
			return []Result{}, nil
		}

		if attempt < p.maxRetries-1 {
			delay := p.baseDelay * (1 << attempt)
			p.log.Log("SearchProvider", "rate limited, backing off", delay.String())
			if serr := p.sleeper.Sleep(ctx, delay); serr != nil {
				return nil, serr
			}
		}
	}

	if p.fallback && p.offline != nil {
		p.log.Log("SearchProvider", "rate limit exhausted, switching to offline mode")
		p.usingOffline = true
		return p.offline.Search(ctx, req)
	}

	p.log.Log("SearchProvider", "rate limit exhausted, returning no results", query)
	return []Result{}, nil
}
