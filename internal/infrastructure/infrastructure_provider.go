package infrastructure

import (
	"context"

	"github.com/google/wire"
	"github.com/rs/zerolog"

	domainsearch "smart-search-agent/internal/domain/search"
	"smart-search-agent/internal/domain/searchconfig"
	"smart-search-agent/internal/infrastructure/auth"
	"smart-search-agent/internal/infrastructure/config"
	"smart-search-agent/internal/infrastructure/logger"
	"smart-search-agent/internal/infrastructure/observability"
	"smart-search-agent/internal/infrastructure/serper"
)

// InfrastructureProvider provides all infrastructure dependencies
var InfrastructureProvider = wire.NewSet(
	ProvideConfig,
	ProvideLogger,
	ProvideTracing,
	ProvideConfigResolver,
	ProvideSearchClient,
	ProvideAuthValidator,
)

// ProvideConfig loads and provides the application configuration
func ProvideConfig() (*config.Config, error) {
	return config.LoadConfig()
}

// ProvideLogger builds the service logger. The cleanup closes the log file.
func ProvideLogger(cfg *config.Config) (zerolog.Logger, func()) {
	log, closer := logger.New(cfg)
	return log, func() { _ = closer.Close() }
}

// ProvideTracing installs the OpenTelemetry tracer provider when enabled
func ProvideTracing(ctx context.Context, cfg *config.Config, log zerolog.Logger) (observability.Shutdown, error) {
	return observability.Setup(ctx, cfg, log)
}

// ProvideConfigResolver provides the Serper config resolver
func ProvideConfigResolver(cfg *config.Config, log zerolog.Logger) *searchconfig.Resolver {
	return searchconfig.NewResolver(cfg.SearchConfigFile, log)
}

// ProvideSearchClient provides the outbound search client
func ProvideSearchClient(log zerolog.Logger) domainsearch.SearchClient {
	return serper.NewClient(serper.ClientConfig{}, log)
}

// ProvideAuthValidator provides the auth validator, nil when auth is disabled
func ProvideAuthValidator(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*auth.Validator, error) {
	return auth.NewValidator(ctx, cfg, log)
}
