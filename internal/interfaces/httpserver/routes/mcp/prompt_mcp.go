package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	domainsearch "smart-search-agent/internal/domain/search"
)

const PromptKeyFormatSearchResults = "format_search_results"

// PromptMCP registers the result formatting prompt. Prompt arguments are
// strings only, so the result list and count arrive serialized.
type PromptMCP struct {
	logger zerolog.Logger
}

func NewPromptMCP(logger zerolog.Logger) *PromptMCP {
	return &PromptMCP{logger: logger}
}

func (p *PromptMCP) RegisterPrompts(server *mcp.Server) {
	server.AddPrompt(&mcp.Prompt{
		Name:        PromptKeyFormatSearchResults,
		Description: "Formats search results from Serper.dev into a readable summary.",
		Arguments: []*mcp.PromptArgument{
			{Name: "query", Description: "The search query that was executed", Required: true},
			{Name: "results_json", Description: "JSON string of search results from Serper.dev", Required: true},
			{Name: "num_results", Description: "Number of results found (as string)", Required: true},
		},
	}, p.formatSearchResults)
}

func (p *PromptMCP) formatSearchResults(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	_, call := startCall(ctx, kindPrompt, PromptKeyFormatSearchResults)
	status := "success"
	defer func() { call.finish(status) }()

	args := req.Params.Arguments
	query := args["query"]
	p.logger.Info().
		Str("prompt", PromptKeyFormatSearchResults).
		Str("query", query).
		Str("num_results", args["num_results"]).
		Msg("prompt call")

	text := domainsearch.FormatSerializedResults(query, args["results_json"], args["num_results"])
	if domainsearch.IsErrorReport(text) {
		status = "parse_error"
		p.logger.Error().Str("prompt", PromptKeyFormatSearchResults).Str("result", text).Msg("prompt failed to parse results")
	} else {
		p.logger.Info().Str("prompt", PromptKeyFormatSearchResults).Str("query", query).Msg("prompt result")
	}

	return &mcp.GetPromptResult{
		Description: "Formatted search results for '" + query + "'",
		Messages: []*mcp.PromptMessage{{
			Role:    "user",
			Content: &mcp.TextContent{Text: text},
		}},
	}, nil
}
