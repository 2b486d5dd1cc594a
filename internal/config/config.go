// Package config provides configuration loading and validation for the server
// and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Default suggestion latency in milliseconds, mimicking a remote generator.
const defaultSuggestLatencyMS = 800

// Config represents the application configuration. It can be loaded from a
// JSON file; environment variables override file values.
type Config struct {
	Port             int    `json:"port,omitempty"`               // HTTP listen port
	DataPath         string `json:"data_path,omitempty"`          // SQLite database file
	TemplatePath     string `json:"template_path,omitempty"`      // Base .docx template
	ChromePath       string `json:"chrome_path,omitempty"`        // Chrome binary for PDF printing
	SuggestLatencyMS int    `json:"suggest_latency_ms,omitempty"` // Artificial suggestion delay
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() Config {
	dataPath := "resumify.db"
	if home, err := os.UserHomeDir(); err == nil {
		dataPath = filepath.Join(home, ".resumify", "resumify.db")
	}
	return Config{
		Port:             8080,
		DataPath:         dataPath,
		TemplatePath:     filepath.Join("templates", "base.docx"),
		SuggestLatencyMS: defaultSuggestLatencyMS,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Load builds the effective configuration: defaults, overlaid by the JSON
// file at path (when non-empty), overlaid by environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		fileCfg, err := LoadConfig(path)
		if err != nil {
			return Config{}, err
		}
		cfg = cfg.MergeWith(*fileCfg)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// MergeWith returns c with zero-valued fields replaced by values from other.
func (c Config) MergeWith(other Config) Config {
	result := c
	if other.Port != 0 {
		result.Port = other.Port
	}
	if other.DataPath != "" {
		result.DataPath = other.DataPath
	}
	if other.TemplatePath != "" {
		result.TemplatePath = other.TemplatePath
	}
	if other.ChromePath != "" {
		result.ChromePath = other.ChromePath
	}
	if other.SuggestLatencyMS != 0 {
		result.SuggestLatencyMS = other.SuggestLatencyMS
	}
	return result
}

func (c *Config) applyEnv() {
	if v := os.Getenv("RESUMIFY_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := os.Getenv("RESUMIFY_DATA_PATH"); v != "" {
		c.DataPath = v
	}
	if v := os.Getenv("RESUMIFY_TEMPLATE_PATH"); v != "" {
		c.TemplatePath = v
	}
	if v := os.Getenv("CHROME_PATH"); v != "" {
		c.ChromePath = v
	}
	if v := os.Getenv("RESUMIFY_SUGGEST_LATENCY_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			c.SuggestLatencyMS = ms
		}
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be in 1-65535, got %d", c.Port)
	}
	if c.DataPath == "" {
		return fmt.Errorf("config error: 'data_path' must not be empty")
	}
	if c.SuggestLatencyMS < 0 {
		return fmt.Errorf("config error: 'suggest_latency_ms' must be non-negative")
	}
	return nil
}
