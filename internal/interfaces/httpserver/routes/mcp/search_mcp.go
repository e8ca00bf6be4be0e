package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	domainsearch "smart-search-agent/internal/domain/search"
)

const ToolKeyAISearch = "ai_search"

// SearchArgs defines the arguments for the ai_search tool
type SearchArgs struct {
	Query string `json:"query" jsonschema:"the search query to execute"`
}

// SearchMCP handles MCP tool registration for search tooling.
type SearchMCP struct {
	searchService *domainsearch.SearchService
	logger        zerolog.Logger
}

// NewSearchMCP creates a new search MCP handler.
func NewSearchMCP(searchService *domainsearch.SearchService, logger zerolog.Logger) *SearchMCP {
	return &SearchMCP{searchService: searchService, logger: logger}
}

// RegisterTools registers the ai_search tool with the MCP server
func (s *SearchMCP) RegisterTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        ToolKeyAISearch,
		Description: "Search the web using the Serper.dev search API and return a readable summary of the top results.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input SearchArgs) (*mcp.CallToolResult, any, error) {
		ctx, call := startCall(ctx, kindTool, ToolKeyAISearch)
		status := "panic"
		defer func() { call.finish(status) }()

		s.logger.Info().Str("tool", ToolKeyAISearch).Str("query", input.Query).Msg("tool call")

		text := s.searchService.Search(ctx, input.Query)
		failed := domainsearch.IsErrorReport(text)

		status = "success"
		if failed {
			status = "error"
			s.logger.Error().Str("tool", ToolKeyAISearch).Str("query", input.Query).Str("result", text).Msg("tool failed")
		} else {
			s.logger.Info().Str("tool", ToolKeyAISearch).Str("query", input.Query).Msg("tool result")
		}
		return textResult(text, failed), nil, nil
	})
}
