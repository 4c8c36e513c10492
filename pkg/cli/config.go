package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/goccy/go-yaml"

	"github.com/jsonata-tools/jsonata-lint/pkg/constants"
	"github.com/jsonata-tools/jsonata-lint/pkg/validator"
)

// Config is the optional per-project configuration loaded from
// .jsonata-lint.yml in the working directory.
type Config struct {
	// MaxProblems caps diagnostics per document; 0 keeps the default.
	MaxProblems int `yaml:"max-problems"`
	// Suggestions toggles the suggestion lookup; nil means enabled.
	Suggestions *bool `yaml:"suggestions"`
	// Modes overrides extraction mode per glob pattern.
	Modes []ModeOverride `yaml:"modes"`
}

// ModeOverride forces an extraction mode for files matching Pattern.
type ModeOverride struct {
	Pattern string `yaml:"pattern"`
	Mode    string `yaml:"mode"` // "jsonata" or "json"
}

// LoadConfig reads the config file from dir. A missing file yields the zero
// config; a malformed one is an error so typos do not silently disable rules.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, constants.ConfigFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", constants.ConfigFileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", constants.ConfigFileName, err)
	}

	for _, m := range cfg.Modes {
		if m.Mode != "jsonata" && m.Mode != "json" {
			return nil, fmt.Errorf("%s: invalid mode %q for pattern %q (want \"jsonata\" or \"json\")",
				constants.ConfigFileName, m.Mode, m.Pattern)
		}
	}
	return &cfg, nil
}

// SuggestionsEnabled reports whether suggestion lookup is on.
func (c *Config) SuggestionsEnabled() bool {
	return c.Suggestions == nil || *c.Suggestions
}

// ModeFor returns the configured extraction mode for path, if any override
// matches it.
func (c *Config) ModeFor(path string) (validator.DocumentKind, bool) {
	for _, m := range c.Modes {
		matched, err := doublestar.Match(m.Pattern, filepath.ToSlash(path))
		if err != nil || !matched {
			continue
		}
		if m.Mode == "json" {
			return validator.KindJSON, true
		}
		return validator.KindJSONata, true
	}
	return validator.KindJSONata, false
}
