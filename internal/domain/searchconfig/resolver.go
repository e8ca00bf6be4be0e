package searchconfig

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Resolver produces a SearchConfig from the config file, then the
// environment, then built-in defaults. The file is re-read on every call.
type Resolver struct {
	path      string
	lookupEnv func(string) (string, bool)
	logger    zerolog.Logger
}

// NewResolver creates a resolver reading the config file at path.
func NewResolver(path string, logger zerolog.Logger) *Resolver {
	return &Resolver{
		path:      path,
		lookupEnv: os.LookupEnv,
		logger:    logger.With().Str("component", "config_resolver").Logger(),
	}
}

// Path returns the config file location.
func (r *Resolver) Path() string {
	return r.path
}

// Resolve never fails: a missing, unreadable or malformed file falls back
// to the environment and then to defaults.
func (r *Resolver) Resolve(ctx context.Context) SearchConfig {
	cfg := SearchConfig{
		APIURL:     DefaultAPIURL,
		MaxResults: DefaultMaxResults,
		Source:     SourceDefault,
	}

	section, err := r.loadSerperSection()
	switch {
	case errors.Is(err, fs.ErrNotExist):
		r.logger.Debug().Str("path", r.path).Msg("config file not found")
	case err != nil:
		r.logger.Warn().Err(err).Str("path", r.path).Msg("error reading config file, ignoring it")
	case section != nil:
		if key, ok := r.stringField(section, "api_key"); ok && strings.TrimSpace(key) != "" {
			cfg.APIKey = key
			cfg.Source = SourceConfigFile
		}
		if url, ok := r.stringField(section, "api_url"); ok && strings.TrimSpace(url) != "" {
			cfg.APIURL = url
		}
		if n, ok := r.intField(section, "max_results"); ok {
			cfg.MaxResults = n
		}
	}

	if cfg.APIKey == "" {
		if key, ok := r.lookupEnv(APIKeyEnvVar); ok && strings.TrimSpace(key) != "" {
			cfg.APIKey = key
			cfg.Source = SourceEnvironment
		} else {
			cfg.APIKey = PlaceholderAPIKey
		}
	}

	r.logger.Info().
		Str("source", string(cfg.Source)).
		Str("api_url", cfg.APIURL).
		Int("max_results", cfg.MaxResults).
		Bool("api_key_configured", cfg.HasAPIKey()).
		Msg("resolved search config")

	return cfg
}

// loadSerperSection reads the file loosely so one mistyped field does not
// discard its siblings. A nil section means the file has no serper object.
func (r *Resolver) loadSerperSection() (map[string]any, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, err
	}
	doc, err := decodeDocument(data)
	if err != nil {
		return nil, err
	}
	raw, ok := doc["serper"]
	if !ok || raw == nil {
		return nil, nil
	}
	section, ok := raw.(map[string]any)
	if !ok {
		r.logger.Warn().Str("path", r.path).Msgf("serper section is %T, not an object; ignoring it", raw)
		return nil, nil
	}
	return section, nil
}

func (r *Resolver) stringField(section map[string]any, name string) (string, bool) {
	raw, ok := section[name]
	if !ok || raw == nil {
		return "", false
	}
	v, ok := raw.(string)
	if !ok {
		r.logger.Warn().Str("path", r.path).Str("field", name).Msgf("expected a string, got %T; using default", raw)
	}
	return v, ok
}

func (r *Resolver) intField(section map[string]any, name string) (int, bool) {
	raw, ok := section[name]
	if !ok || raw == nil {
		return 0, false
	}
	switch v := raw.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case uint64:
		return int(v), true
	case float64:
		if v == math.Trunc(v) {
			return int(v), true
		}
	}
	r.logger.Warn().Str("path", r.path).Str("field", name).Msgf("expected an integer, got %v; using default", raw)
	return 0, false
}

// decodeDocument decodes a JSON or YAML document into generic values.
// The top level must be an object; an empty document decodes to nil.
func decodeDocument(data []byte) (map[string]any, error) {
	var doc any
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	} else if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	if doc == nil {
		return nil, nil
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("parse config file: top level is %T, not an object", doc)
	}
	return obj, nil
}

// LoadFile reads and strictly parses a config file. A missing file returns
// an error wrapping fs.ErrNotExist.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseFile(data)
}

// ParseFile decodes a JSON or YAML config document. An empty document is valid.
func ParseFile(data []byte) (*File, error) {
	var file File
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		// JSON documents may be tab-indented, which YAML rejects.
		if err := json.Unmarshal(trimmed, &file); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
		return &file, nil
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	return &file, nil
}
