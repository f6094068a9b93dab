// Package config provides configuration structures and loading for seacanal.
package config

// Config represents the complete application configuration.
type Config struct {
	Search  SearchConfig  `yaml:"search" mapstructure:"search"`
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
	Output  OutputConfig  `yaml:"output" mapstructure:"output"`
}

// SearchConfig controls the pattern search.
type SearchConfig struct {
	MaxLength   int      `yaml:"max_length" mapstructure:"max_length"` // 0 derives the bound from the input length
	Meta        bool     `yaml:"meta" mapstructure:"meta"`
	Parallelism int      `yaml:"parallelism" mapstructure:"parallelism"`
	All         bool     `yaml:"all" mapstructure:"all"` // print every minimal pattern
	Relations   []string `yaml:"relations" mapstructure:"relations"`
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// OutputConfig controls result rendering.
type OutputConfig struct {
	Color bool `yaml:"color" mapstructure:"color"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			MaxLength:   0,
			Meta:        true,
			Parallelism: 1,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
			Output: "stderr",
		},
	}
}
