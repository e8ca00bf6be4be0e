package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, TransportHTTP, cfg.Transport)
	assert.Equal(t, "127.0.0.1:8000", cfg.Addr())
	assert.False(t, cfg.AuthEnabled)
}

func TestLoadConfig_DefaultPathsFollowBinary(t *testing.T) {
	dir, err := executableDir()
	require.NoError(t, err)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.json"), cfg.SearchConfigFile)
	assert.Equal(t, filepath.Join(dir, "logs", "mcp.log"), cfg.LogFile)
}

func TestLoadConfig_ExplicitPathsAreKept(t *testing.T) {
	t.Setenv("SEARCH_AGENT_CONFIG_FILE", "conf/serper.yaml")
	t.Setenv("SEARCH_AGENT_LOG_FILE", "var/agent.log")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "conf/serper.yaml", cfg.SearchConfigFile)
	assert.Equal(t, "var/agent.log", cfg.LogFile)
}

func TestLoadConfig_EmptyLogFileDisablesFileLogging(t *testing.T) {
	t.Setenv("SEARCH_AGENT_LOG_FILE", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Empty(t, cfg.LogFile)
}

func TestLoadConfig_GlobalLogFallback(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)

	t.Setenv("SEARCH_AGENT_LOG_LEVEL", "warn")
	cfg, err = LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfig_Transport(t *testing.T) {
	t.Setenv("SEARCH_AGENT_TRANSPORT", " STDIO ")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, TransportStdio, cfg.Transport)

	t.Setenv("SEARCH_AGENT_TRANSPORT", "websocket")
	_, err = LoadConfig()
	assert.ErrorContains(t, err, "SEARCH_AGENT_TRANSPORT")
}

func TestLoadConfig_AuthRequiresSettings(t *testing.T) {
	t.Setenv("AUTH_ENABLED", "true")
	_, err := LoadConfig()
	assert.ErrorContains(t, err, "AUTH_ISSUER")

	t.Setenv("AUTH_ISSUER", "https://issuer.test")
	_, err = LoadConfig()
	assert.ErrorContains(t, err, "ACCOUNT")

	t.Setenv("ACCOUNT", "search-agent")
	_, err = LoadConfig()
	assert.ErrorContains(t, err, "AUTH_JWKS_URL")

	t.Setenv("AUTH_JWKS_URL", "https://issuer.test/jwks")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.AuthEnabled)
}
