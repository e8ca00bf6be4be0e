package mcp

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	domainsearch "smart-search-agent/internal/domain/search"
)

const (
	ResourceURISerperConfig  = "config://serper-api"
	resourceNameSerperConfig = "serper-api-config"
)

// ConfigMCP exposes the resolved Serper configuration as a resource.
type ConfigMCP struct {
	provider domainsearch.ConfigProvider
	logger   zerolog.Logger
}

func NewConfigMCP(provider domainsearch.ConfigProvider, logger zerolog.Logger) *ConfigMCP {
	return &ConfigMCP{provider: provider, logger: logger}
}

func (c *ConfigMCP) RegisterResources(server *mcp.Server) {
	server.AddResource(&mcp.Resource{
		Name:        resourceNameSerperConfig,
		URI:         ResourceURISerperConfig,
		MIMEType:    "application/json",
		Description: "Serper.dev API configuration read from the config file, falling back to the SERPER_API_KEY environment variable.",
	}, c.readConfig)
}

func (c *ConfigMCP) readConfig(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	ctx, call := startCall(ctx, kindResource, ResourceURISerperConfig)
	status := "success"
	defer func() { call.finish(status) }()

	c.logger.Info().Str("resource", ResourceURISerperConfig).Msg("resource call")

	cfg := c.provider.Resolve(ctx)
	data, err := json.Marshal(cfg)
	if err != nil {
		status = "error"
		return nil, err
	}

	c.logger.Info().
		Str("resource", ResourceURISerperConfig).
		Str("source", string(cfg.Source)).
		Str("api_url", cfg.APIURL).
		Int("max_results", cfg.MaxResults).
		Msg("resource result")

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      ResourceURISerperConfig,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
