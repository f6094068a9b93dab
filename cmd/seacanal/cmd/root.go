package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/seacanal/internal/config"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// defaultConfigFile is read when present; its absence is not an error.
const defaultConfigFile = "seacanal.yaml"

// CLI flags that override config file values
var (
	cfgFile     string
	logLevel    string
	logFormat   string
	maxLength   int
	noMeta      bool
	printAll    bool
	relations   []string
	parallelism int
	useColor    bool
)

var rootCmd = &cobra.Command{
	Use:   "seacanal [numbers...]",
	Short: "Find the repeating operation cycle behind an integer sequence",
	Long: `seacanal reads a sequence of integers and searches for the shortest
cycle of elementary operations that explains every step.

The sequence is taken from the arguments, or from the first line of stdin
when no arguments are given. Put "--" before arguments that start with a
minus sign so they are not read as flags.

Operations:
  - set (=v), add (+d), multiply (*f), divide (/f)
  - square, square root, cube, cube root
  - custom relations (^k, root k, %m) via --relation
  - nested cycles whose operands themselves repeat

Example:
  echo "1 4 3 6 5" | seacanal
  seacanal --all 2 4 2 4 2
  seacanal -- 5 -5 5 -5`,
	Version: Version,
	Args:    cobra.ArbitraryArgs,
	RunE:    runAnalyze,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", defaultConfigFile,
		"Path to configuration file")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Search overrides
	rootCmd.PersistentFlags().IntVar(&maxLength, "max", 0,
		"Longest cycle to try (0 derives it from the input length)")
	rootCmd.PersistentFlags().BoolVar(&noMeta, "no-meta", false,
		"Disable nested (meta) cycles")
	rootCmd.PersistentFlags().BoolVar(&printAll, "all", false,
		"Print every cycle of the shortest length instead of one")
	rootCmd.PersistentFlags().StringArrayVar(&relations, "relation", nil,
		"Add a custom relation (^k, root k, %m); repeatable")
	rootCmd.PersistentFlags().IntVar(&parallelism, "parallelism", 0,
		"Offsets analysed concurrently (0 keeps the configured value)")

	// Output overrides
	rootCmd.PersistentFlags().BoolVar(&useColor, "color", false,
		"Colorize the result")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() config.Overrides {
	return config.Overrides{
		LogLevel:    logLevel,
		LogFormat:   logFormat,
		MaxLength:   maxLength,
		NoMeta:      noMeta,
		All:         printAll,
		Relations:   relations,
		Parallelism: parallelism,
		Color:       useColor,
	}
}

// loadConfig reads the config file and applies the CLI overrides. A missing
// default config file falls back to defaults; a missing explicit one fails.
func loadConfig() (*config.Config, error) {
	path := GetConfigFile()

	cfg, err := config.Load(path)
	if err != nil {
		if path != defaultConfigFile || !isNotExist(path) {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if cfg, err = config.LoadDefaults(); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	cfg.ApplyOverrides(GetCLIOverrides())
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func isNotExist(path string) bool {
	_, err := os.Stat(path)
	return errors.Is(err, fs.ErrNotExist)
}
