package fetch

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scout/search"
)

func TestEnricherReplacesThinSnippets(t *testing.T) {
	longSnippet := strings.Repeat("already rich content. ", 20)
	article := strings.Repeat("full article body. ", 200)

	e := NewEnricher(time.Second, nil)
	e.extract = func(url string, _ time.Duration) (string, error) {
		if url == "https://example.com/broken" {
			return "", errors.New("fetch failed")
		}
		return article, nil
	}

	input := []search.Result{
		{URL: "https://example.com/thin", Snippet: "short"},
		{URL: "https://example.com/rich", Snippet: longSnippet},
		{URL: "https://example.com/broken", Snippet: "also short"},
	}

	got := e.Enrich(context.Background(), input)

	require.Len(t, got, 3)
	assert.True(t, strings.HasPrefix(got[0].Snippet, "full article body."))
	assert.LessOrEqual(t, len(got[0].Snippet), maxContentLen)
	assert.Equal(t, longSnippet, got[1].Snippet, "rich snippets are left alone")
	assert.Equal(t, "also short", got[2].Snippet, "fetch failure keeps the original")

	// Input slice is never mutated.
	assert.Equal(t, "short", input[0].Snippet)
}

func TestEnricherKeepsSnippetWhenArticleIsShorter(t *testing.T) {
	e := NewEnricher(time.Second, nil)
	e.extract = func(string, time.Duration) (string, error) {
		return "tiny", nil
	}

	got := e.Enrich(context.Background(), []search.Result{
		{URL: "https://example.com/a", Snippet: "a snippet longer than the article"},
	})
	assert.Equal(t, "a snippet longer than the article", got[0].Snippet)
}
