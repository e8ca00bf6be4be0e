package serper

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/codes"

	domainsearch "smart-search-agent/internal/domain/search"
	"smart-search-agent/internal/infrastructure/metrics"
	"smart-search-agent/internal/infrastructure/observability"
	"smart-search-agent/utils/platformerrors"
)

const (
	providerName = "serper"

	// DefaultTimeout bounds each outbound search call.
	DefaultTimeout = 10 * time.Second
)

// ClientConfig captures the knobs of the Serper client.
type ClientConfig struct {
	// HTTPTimeout overrides DefaultTimeout when positive.
	HTTPTimeout time.Duration
	// Transport overrides the default HTTP transport.
	Transport http.RoundTripper
}

// Client posts search queries to a Serper-compatible endpoint. It never
// retries: one call, one attempt.
type Client struct {
	http   *resty.Client
	logger zerolog.Logger
}

var _ domainsearch.SearchClient = (*Client)(nil)

// NewClient creates a Serper client.
func NewClient(cfg ClientConfig, logger zerolog.Logger) *Client {
	timeout := DefaultTimeout
	if cfg.HTTPTimeout > 0 {
		timeout = cfg.HTTPTimeout
	}

	httpClient := resty.New().
		SetHeader("User-Agent", "Smart-Search-Agent/1.0").
		SetTimeout(timeout).
		SetRetryCount(0)
	if cfg.Transport != nil {
		httpClient.SetTransport(cfg.Transport)
	}

	return &Client{
		http:   httpClient,
		logger: logger.With().Str("service", providerName).Logger(),
	}
}

// Search performs exactly one POST to endpoint.URL.
func (c *Client) Search(ctx context.Context, endpoint domainsearch.Endpoint, query domainsearch.SearchRequest) (*domainsearch.SearchResponse, error) {
	ctx, span := observability.GetTracer().Start(ctx, "serper.search")
	defer span.End()
	span.SetAttributes(observability.SearchAttributes(providerName, endpoint.URL, query.Num)...)

	startTime := time.Now()
	status := "success"
	defer func() {
		metrics.RecordProviderRequest(providerName, status)
		metrics.RecordExternalProviderLatency(providerName, time.Since(startTime).Seconds())
	}()

	c.logger.Debug().
		Str("endpoint", endpoint.URL).
		Str("q", query.Q).
		Int("num", query.Num).
		Msg("serper search request")

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("X-API-KEY", endpoint.APIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(query).
		Post(endpoint.URL)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport error")
		if isTimeout(err) {
			status = "timeout"
			c.logger.Error().Err(err).Str("endpoint", endpoint.URL).Msg("serper search timed out")
			return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeTimeout,
				"search request timed out", err, "serper-timeout")
		}
		status = "error"
		c.logger.Error().Err(err).Str("endpoint", endpoint.URL).Msg("failed to query Serper search API")
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal,
			"search request failed", err, "serper-transport")
	}

	if !resp.IsSuccess() {
		status = "http_error"
		span.SetStatus(codes.Error, resp.Status())
		c.logger.Error().Int("status", resp.StatusCode()).Str("response", resp.String()).Msg("Serper search API error")
		return nil, platformerrors.NewErrorWithContext(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal,
			fmt.Sprintf("search API returned status %d", resp.StatusCode()), nil, "serper-status",
			map[string]any{"status": resp.StatusCode()})
	}

	var result domainsearch.SearchResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		status = "decode_error"
		span.RecordError(err)
		span.SetStatus(codes.Error, "decode error")
		c.logger.Error().Err(err).Msg("failed to decode Serper search response")
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeInternal,
			"decode search response", err, "serper-decode")
	}
	if result.Organic == nil {
		result.Organic = []domainsearch.SearchResultItem{}
	}

	c.logger.Info().
		Int("results", len(result.Organic)).
		Dur("elapsed", time.Since(startTime)).
		Msg("serper search completed")

	return &result, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
