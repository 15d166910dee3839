// Package config provides configuration loading and validation for the CLI
// and the HTTP server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Defaults applied by MergeWithDefaults.
const (
	DefaultPort          = 8080
	DefaultDictionaryURL = "https://en.wiktionary.org/wiki/%s"
	DefaultIPASelector   = "span.IPA"
)

// Config represents settings that can be loaded from a JSON file.
// All fields are optional; CLI flags win over file values.
type Config struct {
	// Storage
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Transcription lookup
	DictionaryURL string `json:"dictionary_url,omitempty"` // URL template, %s is replaced by the word
	IPASelector   string `json:"ipa_selector,omitempty"`   // CSS selector for transcriptions on the page
	UseBrowser    bool   `json:"use_browser,omitempty"`    // Render dictionary pages in headless Chrome when static HTML has no match
	APIKey        string `json:"api_key,omitempty"`        // Gemini API key for transcription fallback

	// Behavior
	Workers int  `json:"workers,omitempty"` // Parallel batch workers (0 = GOMAXPROCS)
	Verbose bool `json:"verbose,omitempty"` // Debug logging
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

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.Workers < 0 {
		return fmt.Errorf("config error: 'workers' must be non-negative")
	}
	if c.DictionaryURL != "" {
		if err := ValidateDictionaryURL(c.DictionaryURL); err != nil {
			return fmt.Errorf("config error: 'dictionary_url' %w", err)
		}
	}
	return nil
}

// ValidateDictionaryURL checks that template has exactly one %s placeholder
// and no other formatting verbs.
func ValidateDictionaryURL(template string) error {
	if strings.Count(template, "%s") != 1 || strings.Count(template, "%") != 1 {
		return fmt.Errorf("must contain exactly one %%s placeholder and no other %% signs")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.DictionaryURL == "" {
		result.DictionaryURL = defaults.DictionaryURL
	}
	if result.IPASelector == "" {
		result.IPASelector = defaults.IPASelector
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}

	// last resort values
	if result.Port == 0 {
		result.Port = DefaultPort
	}
	if result.DictionaryURL == "" {
		result.DictionaryURL = DefaultDictionaryURL
	}
	if result.IPASelector == "" {
		result.IPASelector = DefaultIPASelector
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
