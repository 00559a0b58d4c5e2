package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const litePage = `<html><body><table>
<tr><td><a rel="nofollow" href="https://example.com/one" class="result-link">First Result</a></td></tr>
<tr><td class="result-snippet">Snippet for the first result.</td></tr>
<tr><td><a rel="nofollow" href="https://example.com/two" class="result-link">Second Result</a></td></tr>
<tr><td class="result-snippet">Snippet for the second result.</td></tr>
<tr><td><a rel="nofollow" href="https://example.com/three" class="result-link">Third Result</a></td></tr>
<tr><td class="result-snippet"></td></tr>
</table></body></html>`

func newTestEngine(srv *httptest.Server) *DuckDuckGoEngine {
	engine := NewDuckDuckGoEngine(5 * time.Second)
	engine.endpoint = srv.URL
	return engine
}

func TestDuckDuckGoParsesResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "golang testing", r.PostForm.Get("q"))
		assert.Equal(t, "wt-wt", r.PostForm.Get("kl"))
		w.Write([]byte(litePage))
	}))
	defer srv.Close()

	results, err := newTestEngine(srv).Search(context.Background(),
		&Request{Query: "golang testing", MaxResults: 5})
	require.NoError(t, err)

	require.Len(t, results, 3)
	assert.Equal(t, Result{
		Title:   "First Result",
		URL:     "https://example.com/one",
		Snippet: "Snippet for the first result.",
	}, results[0])
	// Empty snippet cell falls back to the placeholder.
	assert.Equal(t, "No description available", results[2].Snippet)
}

func TestDuckDuckGoCapsResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(litePage))
	}))
	defer srv.Close()

	results, err := newTestEngine(srv).Search(context.Background(),
		&Request{Query: "golang", MaxResults: 2})
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestDuckDuckGoClassifiesRateLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := newTestEngine(srv).Search(context.Background(),
		&Request{Query: "golang", MaxResults: 5})
	require.Error(t, err)
	assert.True(t, IsRateLimited(err))
}

func TestDuckDuckGoOtherStatusIsGenericError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestEngine(srv).Search(context.Background(),
		&Request{Query: "golang", MaxResults: 5})
	require.Error(t, err)
	assert.False(t, IsRateLimited(err))
}

func TestDuckDuckGoEmptyQuery(t *testing.T) {
	_, err := NewDuckDuckGoEngine(time.Second).Search(context.Background(),
		&Request{Query: "   ", MaxResults: 5})
	assert.Error(t, err)
}
