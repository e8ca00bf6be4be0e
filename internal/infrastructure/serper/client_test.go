package serper

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainsearch "smart-search-agent/internal/domain/search"
	"smart-search-agent/utils/platformerrors"
)

func TestClient_Search(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("X-API-KEY"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"q": "golang", "num": float64(5)}, body)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"searchParameters":{"q":"golang"},"organic":[{"title":"A","link":"B","snippet":"C","position":1}]}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{}, zerolog.Nop())
	resp, err := client.Search(context.Background(),
		domainsearch.Endpoint{URL: server.URL + "/search", APIKey: "secret"},
		domainsearch.SearchRequest{Q: "golang", Num: 5},
	)

	require.NoError(t, err)
	require.Len(t, resp.Organic, 1)
	assert.Equal(t, "A", *resp.Organic[0].Title)
	assert.Equal(t, "B", *resp.Organic[0].Link)
	assert.Equal(t, "C", *resp.Organic[0].Snippet)
	assert.EqualValues(t, 1, calls.Load())
}

func TestClient_Search_MissingOrganic(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"searchParameters":{}}`))
	}))
	defer server.Close()

	resp, err := NewClient(ClientConfig{}, zerolog.Nop()).Search(context.Background(),
		domainsearch.Endpoint{URL: server.URL, APIKey: "k"}, domainsearch.SearchRequest{Q: "q", Num: 5})

	require.NoError(t, err)
	assert.NotNil(t, resp.Organic)
	assert.Empty(t, resp.Organic)
}

func TestClient_Search_HTTPErrorIsExternal(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, `{"message":"Unauthorized."}`, http.StatusForbidden)
	}))
	defer server.Close()

	_, err := NewClient(ClientConfig{}, zerolog.Nop()).Search(context.Background(),
		domainsearch.Endpoint{URL: server.URL, APIKey: "bad"}, domainsearch.SearchRequest{Q: "q", Num: 5})

	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeExternal))
	assert.Contains(t, err.Error(), "403")
	assert.EqualValues(t, 1, calls.Load(), "must not retry")
}

func TestClient_Search_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client := NewClient(ClientConfig{HTTPTimeout: 50 * time.Millisecond}, zerolog.Nop())
	_, err := client.Search(context.Background(),
		domainsearch.Endpoint{URL: server.URL, APIKey: "k"}, domainsearch.SearchRequest{Q: "q", Num: 5})

	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeTimeout))
}

func TestClient_Search_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := NewClient(ClientConfig{}, zerolog.Nop()).Search(context.Background(),
		domainsearch.Endpoint{URL: url, APIKey: "k"}, domainsearch.SearchRequest{Q: "q", Num: 5})

	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeExternal))
}

func TestClient_Search_InvalidJSONIsInternal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	}))
	defer server.Close()

	_, err := NewClient(ClientConfig{}, zerolog.Nop()).Search(context.Background(),
		domainsearch.Endpoint{URL: server.URL, APIKey: "k"}, domainsearch.SearchRequest{Q: "q", Num: 5})

	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeInternal))
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestClient_Search_CustomTransport(t *testing.T) {
	var calls atomic.Int32
	transport := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		calls.Add(1)
		rec := httptest.NewRecorder()
		rec.WriteHeader(http.StatusOK)
		_, _ = rec.WriteString(`{"organic":[]}`)
		resp := rec.Result()
		resp.Request = r
		return resp, nil
	})

	client := NewClient(ClientConfig{Transport: transport}, zerolog.Nop())
	resp, err := client.Search(context.Background(),
		domainsearch.Endpoint{URL: "https://google.serper.dev/search", APIKey: "k"}, domainsearch.SearchRequest{Q: "q", Num: 5})

	require.NoError(t, err)
	assert.Empty(t, resp.Organic)
	assert.EqualValues(t, 1, calls.Load())
}
