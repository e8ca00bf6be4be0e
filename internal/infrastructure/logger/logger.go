package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"smart-search-agent/internal/infrastructure/config"
)

// New builds the service logger. Output goes to stderr because stdout
// carries the MCP stdio transport. When a log file is configured, entries
// are also appended there; a log file that cannot be opened is reported on
// stderr and skipped. The returned closer releases the file.
func New(cfg *config.Config) (zerolog.Logger, io.Closer) {
	var console io.Writer = os.Stderr
	if strings.EqualFold(cfg.LogFormat, "console") {
		console = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}

	writers := []io.Writer{console}
	var closer io.Closer = nopCloser{}
	file, fileErr := openLogFile(cfg.LogFile)
	if file != nil {
		writers = append(writers, file)
		closer = file
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Logger().
		Level(ParseLevel(cfg.LogLevel))

	if fileErr != nil {
		logger.Warn().Err(fileErr).Str("path", cfg.LogFile).Msg("log file unavailable, logging to stderr only")
	}
	return logger, closer
}

func openLogFile(path string) (*os.File, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return file, nil
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(raw string) zerolog.Level {
	if raw == "" {
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(strings.ToLower(raw))
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
