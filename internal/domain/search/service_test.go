package search

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-search-agent/internal/domain/searchconfig"
	"smart-search-agent/utils/platformerrors"
)

type staticConfig searchconfig.SearchConfig

func (c staticConfig) Resolve(context.Context) searchconfig.SearchConfig {
	return searchconfig.SearchConfig(c)
}

type fakeClient struct {
	calls    atomic.Int32
	mu       sync.Mutex
	endpoint Endpoint
	request  SearchRequest
	resp     *SearchResponse
	err      error
	panicVal any
}

func (f *fakeClient) Search(_ context.Context, endpoint Endpoint, req SearchRequest) (*SearchResponse, error) {
	f.calls.Add(1)
	f.mu.Lock()
	f.endpoint = endpoint
	f.request = req
	f.mu.Unlock()
	if f.panicVal != nil {
		panic(f.panicVal)
	}
	return f.resp, f.err
}

func configured() staticConfig {
	return staticConfig{APIKey: "real-key", APIURL: "https://search.test/api", MaxResults: 10}
}

func TestSearch_UnconfiguredKeyMakesNoCall(t *testing.T) {
	for _, key := range []string{"", searchconfig.PlaceholderAPIKey} {
		client := &fakeClient{}
		svc := NewSearchService(staticConfig{APIKey: key, APIURL: searchconfig.DefaultAPIURL}, client, zerolog.Nop())

		out := svc.Search(context.Background(), "anything")

		assert.Equal(t, MessageAPIKeyNotConfigured, out)
		assert.EqualValues(t, 0, client.calls.Load())
	}
}

func TestSearch_TimeoutReturnsErrorText(t *testing.T) {
	client := &fakeClient{
		err: platformerrors.NewError(context.Background(), platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeTimeout, "search request timed out", context.DeadlineExceeded, ""),
	}
	svc := NewSearchService(configured(), client, zerolog.Nop())

	var out string
	require.NotPanics(t, func() { out = svc.Search(context.Background(), "slow") })

	assert.Contains(t, out, "❌ Error performing search")
	assert.Contains(t, out, "timed out")
	assert.EqualValues(t, 1, client.calls.Load())
}

func TestSearch_ExternalErrorReturnsErrorText(t *testing.T) {
	client := &fakeClient{
		err: platformerrors.NewError(context.Background(), platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal, "search API returned status 403", nil, ""),
	}
	svc := NewSearchService(configured(), client, zerolog.Nop())

	out := svc.Search(context.Background(), "q")
	assert.Equal(t, "❌ Error performing search: search API returned status 403", out)
}

func TestSearch_OtherErrorsAreUnexpected(t *testing.T) {
	client := &fakeClient{err: errors.New("boom")}
	svc := NewSearchService(configured(), client, zerolog.Nop())

	assert.Equal(t, "❌ Unexpected error: boom", svc.Search(context.Background(), "q"))
}

func TestSearch_PanicIsRecovered(t *testing.T) {
	client := &fakeClient{panicVal: "kaboom"}
	svc := NewSearchService(configured(), client, zerolog.Nop())

	var out string
	require.NotPanics(t, func() { out = svc.Search(context.Background(), "q") })
	assert.Equal(t, "❌ Unexpected error: kaboom", out)
}

func TestSearch_FormatsOrganicResults(t *testing.T) {
	client := &fakeClient{resp: &SearchResponse{Organic: []SearchResultItem{
		{Title: ptr("A"), Link: ptr("B"), Snippet: ptr("C")},
	}}}
	svc := NewSearchService(configured(), client, zerolog.Nop())

	out := svc.Search(context.Background(), "letters")

	assert.Contains(t, out, "'letters'")
	assert.Contains(t, out, "Found 1 results")
	assert.Contains(t, out, "1. A")
	assert.Contains(t, out, "B")
	assert.Contains(t, out, "C")

	assert.Equal(t, Endpoint{URL: "https://search.test/api", APIKey: "real-key"}, client.endpoint)
	assert.Equal(t, SearchRequest{Q: "letters", Num: 5}, client.request)
}

func TestSearch_MissingOrganicIsEmpty(t *testing.T) {
	for _, resp := range []*SearchResponse{nil, {}} {
		client := &fakeClient{resp: resp}
		svc := NewSearchService(configured(), client, zerolog.Nop())

		out := svc.Search(context.Background(), "nothing")
		assert.Equal(t, "🔍 Search Results for: 'nothing'\nFound 0 results\n\n", out)
	}
}

func TestSearch_ConcurrentCallsAreIndependent(t *testing.T) {
	client := &fakeClient{resp: &SearchResponse{Organic: []SearchResultItem{{Title: ptr("A")}}}}
	svc := NewSearchService(configured(), client, zerolog.Nop())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Contains(t, svc.Search(context.Background(), "q"), "1. A")
		}()
	}
	wg.Wait()
	assert.EqualValues(t, 16, client.calls.Load())
}
