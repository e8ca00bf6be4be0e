package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/trace"

	"smart-search-agent/internal/infrastructure/metrics"
	"smart-search-agent/internal/infrastructure/observability"
)

const (
	kindTool     = "tool"
	kindResource = "resource"
	kindPrompt   = "prompt"
)

// callTracker times one MCP handler invocation and records it once finished.
type callTracker struct {
	kind  string
	name  string
	start time.Time
	span  trace.Span
}

func startCall(ctx context.Context, kind, name string) (context.Context, *callTracker) {
	ctx, span := observability.GetTracer().Start(ctx, "mcp."+kind+"."+name)
	span.SetAttributes(observability.MCPAttributes(kind, name)...)
	return ctx, &callTracker{kind: kind, name: name, start: time.Now(), span: span}
}

func (t *callTracker) finish(status string) {
	metrics.RecordToolCall(t.name, t.kind, status, time.Since(t.start).Seconds())
	t.span.End()
}

func textResult(text string, isError bool) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: isError,
	}
}
