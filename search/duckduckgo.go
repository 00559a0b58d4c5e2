package search

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"
)

const ddgEndpoint = "https://lite.duckduckgo.com/lite/"

// DuckDuckGoEngine scrapes the DuckDuckGo lite HTML interface. Region and
// safe-search are fixed; the lite endpoint has no result-count parameter,
// so MaxResults is enforced client-side.
type DuckDuckGoEngine struct {
	client   *http.Client
	limiter  *rate.Limiter
	endpoint string
}

func NewDuckDuckGoEngine(timeout time.Duration) *DuckDuckGoEngine {
	return &DuckDuckGoEngine{
		client:   &http.Client{Timeout: timeout},
		limiter:  rate.NewLimiter(rate.Limit(1), 1),
		endpoint: ddgEndpoint,
	}
}

func (e *DuckDuckGoEngine) Search(ctx context.Context, req *Request) ([]Result, error) {
	if strings.TrimSpace(req.Query) == "" {
		return nil, fmt.Errorf("query is empty")
	}
	if err := e.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("q", req.Query)
	form.Set("kl", "wt-wt")
	form.Set("kp", "1")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")

	resp, err := e.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("duckduckgo: %w", ErrRateLimited)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("duckduckgo returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse search response: %w", err)
	}

	return parseLiteResults(doc, req.MaxResults), nil
}

// parseLiteResults walks the lite page table. Result links carry the
// result-link class and their snippet sits in the following
// result-snippet cell; the two lists line up by index.
func parseLiteResults(doc *goquery.Document, max int) []Result {
	var snippets []string
	doc.Find("td.result-snippet").Each(func(_ int, s *goquery.Selection) {
		snippets = append(snippets, strings.TrimSpace(s.Text()))
	})

	var results []Result
	doc.Find("a.result-link").Each(func(i int, s *goquery.Selection) {
		if max >= 0 && len(results) >= max {
			return
		}
		href, ok := s.Attr("href")
		title := strings.TrimSpace(s.Text())
		if !ok || href == "" || title == "" {
			return
		}
		snippet := "No description available"
		if i < len(snippets) && snippets[i] != "" {
			snippet = snippets[i]
		}
		results = append(results, Result{
			Title:   title,
			URL:     href,
			Snippet: snippet,
		})
	})
	return results
}
