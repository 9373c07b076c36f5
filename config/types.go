package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/mitchellh/mapstructure"
)

//go:generate go run ../tools/schema-generator/

// Mode values accepted in flux.yml and the FLUX_MODE environment variable.
const (
	ModeDevelopment = "development"
	ModeProduction  = "production"
)

// Config is the parsed contents of a flux.yml file. The store behaves
// identically in both modes; development mode additionally runs the shape
// diagnostics and emits warnings.
type Config struct {
	// Mode selects "development" (default) or "production".
	Mode string `yaml:"mode,omitempty" jsonschema:"description=Runtime mode: development enables shape diagnostics and warnings,enum=development,enum=production"`

	// Extensions captures all other top-level keys (e.g. "logging") for
	// extensibility.
	Extensions map[string]interface{} `yaml:",inline" jsonschema:"-"`
}

// IsProduction reports whether the configuration selects production mode.
func (c *Config) IsProduction() bool {
	return c != nil && c.Mode == ModeProduction
}

// UnmarshalExtension decodes a specific extension's configuration from the
// loaded flux.yml into the provided target struct. The target must be a pointer.
// This provides a type-safe way for extensions to access their
// custom configuration sections.
//
// Example:
//
//	var logCfg logging.Config
//	err := cfg.UnmarshalExtension("logging", &logCfg)
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := c.Extensions[key]
	if !ok {
		// It's not an error if the key doesn't exist.
		// The target struct will simply remain zero-valued.
		return nil
	}

	// Use mapstructure to decode the generic map[string]interface{}
	// into the strongly-typed target struct. We configure it to use
	// `yaml` tags for consistency.
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  target,
		TagName: "yaml",
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}

var (
	defaultOnce sync.Once
	defaultCfg  *Config
)

// cachedDefault loads the default configuration once. A missing or broken
// flux.yml yields nil and the defaults apply.
func cachedDefault() *Config {
	defaultOnce.Do(func() {
		if cfg, err := LoadDefault(); err == nil {
			defaultCfg = cfg
		}
	})
	return defaultCfg
}

// Development reports whether development-only diagnostics should run.
// The FLUX_MODE environment variable takes precedence over flux.yml; without
// either, development mode is assumed.
func Development() bool {
	if mode := os.Getenv("FLUX_MODE"); mode != "" {
		return mode != ModeProduction
	}
	if cfg := cachedDefault(); cfg != nil {
		return !cfg.IsProduction()
	}
	return true
}
