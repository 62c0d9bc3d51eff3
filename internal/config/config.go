package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/ziadkadry99/webstarter/internal/theme"
)

// EnvPrefix marks environment variables that override the config file.
const EnvPrefix = "WEBSTARTER_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (WEBSTARTER_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: WEBSTARTER_PORT -> port, etc.
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}

	if c.DefaultTheme != "" {
		if _, ok := theme.Lookup(c.DefaultTheme); !ok {
			return fmt.Errorf("invalid default_theme %q: must be one of %s", c.DefaultTheme, strings.Join(theme.Keys(), ", "))
		}
	}

	for name, v := range map[string]int{
		"search_debounce_ms": c.SearchDebounceMS,
		"edit_debounce_ms":   c.EditDebounceMS,
		"paste_delay_ms":     c.PasteDelayMS,
		"ack_duration_ms":    c.AckDurationMS,
		"search_cache_size":  c.SearchCacheSize,
		"rate_limit_burst":   c.RateLimitBurst,
	} {
		if v < 0 {
			return fmt.Errorf("%s must be non-negative", name)
		}
	}

	if c.MinQueryLength < 1 {
		return fmt.Errorf("min_query_length must be at least 1")
	}

	if c.RateLimitRPS < 0 {
		return fmt.Errorf("rate_limit_rps must be non-negative")
	}

	return nil
}
