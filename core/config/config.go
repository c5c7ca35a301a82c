// File: config.go
// Title: Core Configuration Management Implementation
// Description: Implements the Config type: loading and parsing TOML and YAML
//              settings, dotted key lookup and environment overrides.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	spanerror "github.com/msto63/span/core/error"
	"github.com/msto63/span/core/log"
)

// DefaultEnvPrefix prefixes every environment override.
const DefaultEnvPrefix = "SPAN"

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config holds loaded settings with thread-safe access
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	filePath  string
	format    Format
	envPrefix string
	lookupEnv func(string) (string, bool)
	logger    *log.Logger
	pinned    map[string]bool // keys Set at runtime, shielded from the environment
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format                 // File format (default: auto-detect)
	EnvPrefix string                 // Environment variable prefix (default: SPAN)
	Defaults  map[string]interface{} // Default values for top-level sections
	Logger    *log.Logger            // Receives debug traces (default: log.GetDefault())

	// LookupEnv replaces os.LookupEnv, mainly for tests
	LookupEnv func(string) (string, bool)
}

// Load loads configuration from a file with default options
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{Format: FormatAuto})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, spanerror.New("config file path cannot be empty").
			WithCode(spanerror.CodeInvalidInput).
			WithOperation("config.LoadWithOptions")
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, spanerror.New(fmt.Sprintf("config file not found: %s", filePath)).
			WithCode(spanerror.CodeNotFound).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, spanerror.Wrap(err, "failed to read config file").
			WithCode(spanerror.CodeConfigError).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, spanerror.Wrap(err, "failed to parse config file").
			WithCode(spanerror.CodeInvalidConfig).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath).
			WithDetail("format", format.String())
	}

	c := newConfig(data, format, options)
	c.filePath = filePath
	c.logger.Debug("configuration loaded", log.String("file", filePath), log.String("format", format.String()))
	return c, nil
}

// LoadFromString loads configuration from a string with specified format
func LoadFromString(content string, format Format) (*Config, error) {
	return LoadFromStringWithOptions(content, LoadOptions{Format: format})
}

// LoadFromStringWithOptions is LoadFromString with custom options
func LoadFromStringWithOptions(content string, options LoadOptions) (*Config, error) {
	format := options.Format
	if format == FormatAuto {
		format = FormatTOML
	}

	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, spanerror.Wrap(err, "failed to parse config from string").
			WithCode(spanerror.CodeInvalidConfig).
			WithOperation("config.LoadFromString").
			WithDetail("format", format.String())
	}
	return newConfig(data, format, options), nil
}

// FromEnv returns a configuration without a file; only environment overrides
// and defaults apply.
func FromEnv(options LoadOptions) *Config {
	return newConfig(nil, FormatTOML, options)
}

func newConfig(data map[string]interface{}, format Format, options LoadOptions) *Config {
	if data == nil {
		data = make(map[string]interface{})
	}
	if options.Defaults != nil {
		data = mergeDefaults(data, options.Defaults)
	}
	c := &Config{
		data:      data,
		format:    format,
		envPrefix: options.EnvPrefix,
		lookupEnv: options.LookupEnv,
		logger:    options.Logger,
	}
	if c.envPrefix == "" {
		c.envPrefix = DefaultEnvPrefix
	}
	if c.lookupEnv == nil {
		c.lookupEnv = os.LookupEnv
	}
	if c.logger == nil {
		c.logger = log.GetDefault()
	}
	return c
}

// detectFormat determines the configuration format from file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// parseContent parses configuration content based on format
func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	var data map[string]interface{}

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, spanerror.Wrap(err, "TOML parse error").
				WithCode(spanerror.CodeInvalidConfig).
				WithOperation("config.parseContent")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, spanerror.Wrap(err, "YAML parse error").
				WithCode(spanerror.CodeInvalidConfig).
				WithOperation("config.parseContent")
		}
	default:
		return nil, spanerror.New(fmt.Sprintf("unsupported format: %s", format)).
			WithCode(spanerror.CodeInvalidInput).
			WithOperation("config.parseContent").
			WithDetail("format", format.String())
	}

	return data, nil
}

// mergeDefaults merges default values into configuration data
func mergeDefaults(data, defaults map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{}, len(data)+len(defaults))
	for k, v := range defaults {
		result[k] = v
	}
	for k, v := range data {
		result[k] = v
	}
	return result
}

// GetString returns a string value, the environment override winning over
// the file, with optional default
func (c *Config) GetString(key string, defaultValue ...string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue, ok := c.getEnvValue(key); ok {
		return envValue
	}

	switch v := c.getValue(key).(type) {
	case nil:
		if len(defaultValue) > 0 {
			return defaultValue[0]
		}
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// GetDuration returns a duration value. Strings are parsed with
// time.ParseDuration; bare numbers are taken as seconds.
func (c *Config) GetDuration(key string, defaultValue ...time.Duration) (time.Duration, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var value interface{}
	if envValue, ok := c.getEnvValue(key); ok {
		value = envValue
	} else {
		value = c.getValue(key)
	}

	switch v := value.(type) {
	case nil:
		if len(defaultValue) > 0 {
			return defaultValue[0], nil
		}
		return 0, nil
	case time.Duration:
		return v, nil
	case int64:
		return time.Duration(v) * time.Second, nil
	case int:
		return time.Duration(v) * time.Second, nil
	case float64:
		return time.Duration(v * float64(time.Second)), nil
	case string:
		d, err := time.ParseDuration(v)
		if err != nil {
			return 0, c.invalid(key, v, "a duration such as 3s or 500ms")
		}
		return d, nil
	default:
		return 0, c.invalid(key, fmt.Sprintf("%v", v), "a duration such as 3s or 500ms")
	}
}

func (c *Config) invalid(key, value, expected string) *spanerror.Error {
	return spanerror.New(fmt.Sprintf("invalid value %q for %s, expected %s", value, key, expected)).
		WithCode(spanerror.CodeInvalidConfig).
		WithOperation("config").
		WithDetail("key", key).
		WithDetail("env", c.formatEnvKey(key))
}

// getValue retrieves a value by dotted key
func (c *Config) getValue(key string) interface{} {
	current := c.data
	keys := strings.Split(key, ".")
	for i, k := range keys {
		if i == len(keys)-1 {
			return current[k]
		}
		next, ok := current[k].(map[string]interface{})
		if !ok {
			return nil
		}
		current = next
	}
	return nil
}

// getEnvValue returns the environment override for key, if set
func (c *Config) getEnvValue(key string) (string, bool) {
	if c.pinned[key] {
		return "", false
	}
	return c.lookupEnv(c.formatEnvKey(key))
}

// formatEnvKey converts a config key to environment variable format
// (format.time -> SPAN_FORMAT_TIME)
func (c *Config) formatEnvKey(key string) string {
	envKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	return strings.ToUpper(c.envPrefix) + "_" + envKey
}

// Has checks if a key is set in the file or the environment
func (c *Config) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if _, ok := c.getEnvValue(key); ok {
		return true
	}
	return c.getValue(key) != nil
}

// Set sets a value at runtime (not persisted). A value set this way wins over
// both the file and the environment; the CLI uses it for flag overrides.
func (c *Config) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pinned == nil {
		c.pinned = make(map[string]bool)
	}
	c.pinned[key] = true

	keys := strings.Split(key, ".")
	current := c.data
	for i, k := range keys {
		if i == len(keys)-1 {
			current[k] = value
			return
		}
		next, ok := current[k].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[k] = next
		}
		current = next
	}
}

// FilePath returns the path of the loaded file, empty when not loaded from one
func (c *Config) FilePath() string {
	return c.filePath
}

// Format returns the configuration file format
func (c *Config) Format() Format {
	return c.format
}

// String returns a one-line summary listing the top-level sections
func (c *Config) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	sections := make([]string, 0, len(c.data))
	for k := range c.data {
		sections = append(sections, k)
	}
	sort.Strings(sections)
	source := c.filePath
	if source == "" {
		source = "<env>"
	}
	return fmt.Sprintf("Config{file=%s format=%s sections=[%s]}", source, c.format, strings.Join(sections, ","))
}
