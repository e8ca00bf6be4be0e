package search

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"smart-search-agent/utils/platformerrors"
)

// MessageAPIKeyNotConfigured is returned to the caller when no usable key is configured.
const MessageAPIKeyNotConfigured = ErrorMarker + " Error: SERPER_API_KEY not configured. Please set it as an environment variable."

// SearchService runs a web search and renders the result as text.
// It holds no mutable state; concurrent calls are independent.
type SearchService struct {
	configProvider ConfigProvider
	client         SearchClient
	logger         zerolog.Logger
}

// NewSearchService creates a new search service
func NewSearchService(configProvider ConfigProvider, client SearchClient, logger zerolog.Logger) *SearchService {
	return &SearchService{
		configProvider: configProvider,
		client:         client,
		logger:         logger.With().Str("component", "search_service").Logger(),
	}
}

// Search always returns text: either the formatted report or a
// user-facing error message.
func (s *SearchService) Search(ctx context.Context, query string) (report string) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().Interface("panic", r).Str("query", query).Msg("search panicked")
			report = fmt.Sprintf("%s Unexpected error: %v", ErrorMarker, r)
		}
	}()

	cfg := s.configProvider.Resolve(ctx)
	if !cfg.HasAPIKey() {
		s.logger.Error().Str("query", query).Msg("serper api key not configured")
		return MessageAPIKeyNotConfigured
	}

	s.logger.Info().Str("query", query).Str("api_url", cfg.APIURL).Msg("calling search api")
	start := time.Now()

	resp, err := s.client.Search(ctx,
		Endpoint{URL: cfg.APIURL, APIKey: cfg.APIKey},
		SearchRequest{Q: query, Num: RequestedResults},
	)
	if err != nil {
		s.logger.Error().Err(err).Str("query", query).Msg("search request failed")
		if platformerrors.IsErrorType(err, platformerrors.ErrorTypeExternal) ||
			platformerrors.IsErrorType(err, platformerrors.ErrorTypeTimeout) {
			return fmt.Sprintf("%s Error performing search: %v", ErrorMarker, err)
		}
		return fmt.Sprintf("%s Unexpected error: %v", ErrorMarker, err)
	}

	var organic []SearchResultItem
	if resp != nil {
		organic = resp.Organic
	}

	s.logger.Info().
		Str("query", query).
		Int("results", len(organic)).
		Int("rendered", RenderedCount(organic)).
		Dur("elapsed", time.Since(start)).
		Msg("search api response received")

	return FormatResults(query, organic, len(organic))
}
