package search

import (
	"context"

	"smart-search-agent/internal/domain/searchconfig"
)

// RequestedResults is the fixed "num" sent to the search API.
const RequestedResults = 5

// SearchRequest is the body posted to the Serper search API.
type SearchRequest struct {
	Q   string `json:"q"`
	Num int    `json:"num"`
}

// Endpoint carries the per-call target and credentials.
type Endpoint struct {
	URL    string
	APIKey string
}

// SearchResultItem is one organic result. Nil fields were absent upstream.
type SearchResultItem struct {
	Title   *string `json:"title,omitempty"`
	Link    *string `json:"link,omitempty"`
	Snippet *string `json:"snippet,omitempty"`
}

// SearchResponse holds the part of the Serper response this service reads.
type SearchResponse struct {
	Organic []SearchResultItem `json:"organic"`
}

// SearchClient performs one outbound search call.
type SearchClient interface {
	Search(ctx context.Context, endpoint Endpoint, req SearchRequest) (*SearchResponse, error)
}

// ConfigProvider supplies the search configuration for each call.
type ConfigProvider interface {
	Resolve(ctx context.Context) searchconfig.SearchConfig
}
