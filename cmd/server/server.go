package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"smart-search-agent/internal/infrastructure/config"
	"smart-search-agent/internal/infrastructure/observability"
	"smart-search-agent/internal/interfaces/httpserver"
)

type Application struct {
	config          *config.Config
	logger          zerolog.Logger
	httpServer      *httpserver.HTTPServer
	mcpServer       *mcpsdk.Server
	shutdownTracing observability.Shutdown
}

// @title Smart Search Agent MCP Service
// @version 1.0
// @description Model Context Protocol (MCP) server exposing a greeting tool, a Serper configuration resource, a result formatting prompt and a web search tool.
// @BasePath /
func (app *Application) Start(ctx context.Context) error {
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.shutdownTracing(shutdownCtx); err != nil {
			app.logger.Warn().Err(err).Msg("Failed to flush traces")
		}
	}()

	switch app.config.Transport {
	case config.TransportStdio:
		app.logger.Info().Msg("Serving MCP over stdio")
		return app.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
	default:
		return app.httpServer.Run(ctx)
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, cleanup, err := CreateApplication(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create application: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	application.logger.Info().
		Str("transport", string(application.config.Transport)).
		Str("address", application.config.Addr()).
		Str("log_level", application.config.LogLevel).
		Str("config_file", application.config.SearchConfigFile).
		Msg("Starting smart search agent")

	if err := application.Start(ctx); err != nil {
		application.logger.Error().Err(err).Msg("Server stopped with error")
		cleanup()
		os.Exit(1)
	}
}
