package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Transport selects how the MCP server is exposed to the host.
type Transport string

const (
	TransportHTTP  Transport = "http"
	TransportStdio Transport = "stdio"
)

// Config holds all configuration for the search agent service
type Config struct {
	// MCP transport and HTTP server - using SEARCH_AGENT_ prefix to avoid collisions
	Transport Transport `env:"SEARCH_AGENT_TRANSPORT" envDefault:"http"`
	HTTPHost  string    `env:"SEARCH_AGENT_HTTP_HOST" envDefault:"127.0.0.1"`
	HTTPPort  string    `env:"SEARCH_AGENT_HTTP_PORT" envDefault:"8000"`

	LogLevel  string `env:"SEARCH_AGENT_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"SEARCH_AGENT_LOG_FORMAT" envDefault:"json"` // json or console
	LogFile   string `env:"SEARCH_AGENT_LOG_FILE" envDefault:"logs/mcp.log"`

	// Path of the Serper config file, re-read on every resolution
	SearchConfigFile string `env:"SEARCH_AGENT_CONFIG_FILE" envDefault:"config.json"`

	// Observability
	ServiceName   string `env:"SERVICE_NAME" envDefault:"smart-search-agent"`
	Environment   string `env:"ENVIRONMENT" envDefault:"development"`
	EnableTracing bool   `env:"ENABLE_TRACING" envDefault:"false"`
	OTLPEndpoint  string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`

	// Authentication (HTTP transport only)
	AuthEnabled bool   `env:"AUTH_ENABLED" envDefault:"false"`
	AuthIssuer  string `env:"AUTH_ISSUER"`
	Account     string `env:"ACCOUNT"`
	AuthJWKSURL string `env:"AUTH_JWKS_URL"`
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.HTTPHost, c.HTTPPort)
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if strings.TrimSpace(os.Getenv("SEARCH_AGENT_LOG_LEVEL")) == "" {
		if global := strings.TrimSpace(os.Getenv("LOG_LEVEL")); global != "" {
			cfg.LogLevel = global
		}
	}
	if strings.TrimSpace(os.Getenv("SEARCH_AGENT_LOG_FORMAT")) == "" {
		if global := strings.TrimSpace(os.Getenv("LOG_FORMAT")); global != "" {
			cfg.LogFormat = global
		}
	}

	if v, ok := os.LookupEnv("SEARCH_AGENT_LOG_FILE"); ok && strings.TrimSpace(v) == "" {
		cfg.LogFile = ""
	}
	cfg.LogFile = anchorDefault("SEARCH_AGENT_LOG_FILE", cfg.LogFile)
	cfg.SearchConfigFile = anchorDefault("SEARCH_AGENT_CONFIG_FILE", cfg.SearchConfigFile)

	cfg.Transport = Transport(strings.ToLower(strings.TrimSpace(string(cfg.Transport))))
	switch cfg.Transport {
	case TransportHTTP, TransportStdio:
	default:
		return nil, fmt.Errorf("SEARCH_AGENT_TRANSPORT must be %q or %q, got %q", TransportHTTP, TransportStdio, cfg.Transport)
	}

	if cfg.AuthEnabled {
		if strings.TrimSpace(cfg.AuthIssuer) == "" {
			return nil, fmt.Errorf("AUTH_ISSUER is required when AUTH_ENABLED is true")
		}
		if strings.TrimSpace(cfg.Account) == "" {
			return nil, fmt.Errorf("ACCOUNT is required when AUTH_ENABLED is true")
		}
		if strings.TrimSpace(cfg.AuthJWKSURL) == "" {
			return nil, fmt.Errorf("AUTH_JWKS_URL is required when AUTH_ENABLED is true")
		}
	}
	return cfg, nil
}

// anchorDefault resolves a relative default path against the directory of
// the running binary. Stdio hosts start the server from arbitrary working
// directories. Paths set explicitly through the environment are kept as given.
func anchorDefault(envKey, path string) string {
	if strings.TrimSpace(os.Getenv(envKey)) != "" || path == "" || filepath.IsAbs(path) {
		return path
	}
	dir, err := executableDir()
	if err != nil {
		return path
	}
	return filepath.Join(dir, path)
}

func executableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}
