package routes

import (
	"github.com/google/wire"

	"smart-search-agent/internal/interfaces/httpserver/routes/mcp"
)

// RoutesProvider provides all route dependencies
var RoutesProvider = wire.NewSet(
	mcp.NewGreetMCP,
	mcp.NewConfigMCP,
	mcp.NewPromptMCP,
	mcp.NewSearchMCP,
	mcp.NewMCPServer,
	mcp.NewMCPRoute,
)
