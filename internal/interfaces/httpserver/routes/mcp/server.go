package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	ServerName    = "SmartSearchAgent"
	ServerVersion = "1.0.0"
)

// NewMCPServer builds the MCP server shared by the stdio and HTTP transports.
func NewMCPServer(
	greetMCP *GreetMCP,
	configMCP *ConfigMCP,
	promptMCP *PromptMCP,
	searchMCP *SearchMCP,
) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, nil)

	greetMCP.RegisterTools(server)
	configMCP.RegisterResources(server)
	promptMCP.RegisterPrompts(server)
	searchMCP.RegisterTools(server)

	return server
}
