package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// envPrefix namespaces environment overrides, e.g. SEACANAL_SEARCH_META=false.
const envPrefix = "SEACANAL"

// Load reads configuration from the specified YAML file. Environment
// variables prefixed with SEACANAL_ override file values.
func Load(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return LoadFromViper(v)
}

// LoadDefaults builds a Config from defaults and environment only.
func LoadDefaults() (*Config, error) {
	return LoadFromViper(newViper())
}

// LoadFromViper creates a Config from an existing Viper instance.
// Useful for testing or when Viper is configured externally.
func LoadFromViper(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// newViper returns a Viper instance that knows every key, so that
// AutomaticEnv can bind them.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	d := DefaultConfig()
	v.SetDefault("search.max_length", d.Search.MaxLength)
	v.SetDefault("search.meta", d.Search.Meta)
	v.SetDefault("search.parallelism", d.Search.Parallelism)
	v.SetDefault("search.all", d.Search.All)
	v.SetDefault("search.relations", d.Search.Relations)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.output", d.Logging.Output)
	v.SetDefault("output.color", d.Output.Color)

	return v
}

// Overrides contains CLI flag values that override config file settings.
// Zero values leave the configuration untouched.
type Overrides struct {
	LogLevel    string
	LogFormat   string
	MaxLength   int
	NoMeta      bool
	All         bool
	Relations   []string
	Parallelism int
	Color       bool
}

// ApplyOverrides applies CLI flag overrides to the configuration.
// Only non-zero/non-empty values are applied; relations are appended.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.LogLevel != "" {
		c.Logging.Level = o.LogLevel
	}
	if o.LogFormat != "" {
		c.Logging.Format = o.LogFormat
	}
	if o.MaxLength > 0 {
		c.Search.MaxLength = o.MaxLength
	}
	if o.NoMeta {
		c.Search.Meta = false
	}
	if o.All {
		c.Search.All = true
	}
	if len(o.Relations) > 0 {
		c.Search.Relations = append(c.Search.Relations, o.Relations...)
	}
	if o.Parallelism > 0 {
		c.Search.Parallelism = o.Parallelism
	}
	if o.Color {
		c.Output.Color = true
	}
}
