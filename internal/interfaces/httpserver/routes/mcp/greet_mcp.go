package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
)

const ToolKeyGreet = "greet"

// GreetArgs defines the arguments for the greet tool
type GreetArgs struct {
	Name string `json:"name" jsonschema:"the name of the person to greet"`
}

// GreetMCP registers the greeting tool.
type GreetMCP struct {
	logger zerolog.Logger
}

func NewGreetMCP(logger zerolog.Logger) *GreetMCP {
	return &GreetMCP{logger: logger}
}

// Greet builds the greeting text.
func Greet(name string) string {
	return fmt.Sprintf("Hello, %s!", name)
}

func (g *GreetMCP) RegisterTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        ToolKeyGreet,
		Description: "Greet a user by name.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input GreetArgs) (*mcp.CallToolResult, any, error) {
		_, call := startCall(ctx, kindTool, ToolKeyGreet)
		defer call.finish("success")

		g.logger.Info().Str("tool", ToolKeyGreet).Str("name", input.Name).Msg("tool call")
		result := Greet(input.Name)
		g.logger.Info().Str("tool", ToolKeyGreet).Str("result", result).Msg("tool result")

		return textResult(result, false), nil, nil
	})
}
