// Package config provides configuration loading and validation for esio.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/siyuan-infoblox/es-imports-optimizer/pkg/optimizer"
)

// Sentinel validation errors.
var (
	ErrInvalidLogLevel = errors.New("invalid log level")
	ErrInvalidJobs     = errors.New("jobs must not be negative")
	ErrNoExtensions    = errors.New("at least one source extension is required")
)

// Config file lookup.
const (
	FileName  = ".esio"
	FileType  = "yaml"
	EnvPrefix = "ESIO"
)

// DefaultExtensions lists the file extensions processed when walking directories.
var DefaultExtensions = []string{".js", ".jsx", ".mjs", ".cjs", ".ts", ".tsx", ".mts", ".cts"}

// Config holds all configuration for esio.
type Config struct {
	Rules      RulesConfig      `mapstructure:"rules"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Processing ProcessingConfig `mapstructure:"processing"`
}

// RulesConfig holds the optimization rules.
type RulesConfig struct {
	SortImports      bool `mapstructure:"sort_imports"`
	RemoveDuplicates bool `mapstructure:"remove_duplicates"`
	MergeImports     bool `mapstructure:"merge_imports"`
	KeepMalformed    bool `mapstructure:"keep_malformed"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// ProcessingConfig holds file processing configuration.
type ProcessingConfig struct {
	Extensions []string `mapstructure:"extensions"`
	Jobs       int      `mapstructure:"jobs"` // 0 means GOMAXPROCS
}

// flagKeys maps command line flags onto configuration keys.
var flagKeys = map[string]string{
	"sort":           "rules.sort_imports",
	"dedupe":         "rules.remove_duplicates",
	"merge":          "rules.merge_imports",
	"keep-malformed": "rules.keep_malformed",
	"log-level":      "logging.level",
	"jobs":           "processing.jobs",
}

// OptimizerRules converts the rules section into optimizer rules.
func (c *Config) OptimizerRules() optimizer.Rules {
	return optimizer.Rules{
		SortImports:      c.Rules.SortImports,
		RemoveDuplicates: c.Rules.RemoveDuplicates,
		MergeImports:     c.Rules.MergeImports,
		KeepMalformed:    c.Rules.KeepMalformed,
	}
}

// LogLevel returns the parsed logging level.
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Logging.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// LoadConfig loads configuration from defaults, a config file, environment variables and the
// given flags, in increasing order of precedence. When configPath is empty a `.esio.yaml` is
// looked up in searchPaths; a missing file is not an error.
func LoadConfig(configPath string, flags *pflag.FlagSet, searchPaths ...string) (*Config, error) {
	viperCfg := viper.New()

	// Set defaults.
	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(FileName)
		viperCfg.SetConfigType(FileType)
		for _, path := range searchPaths {
			if path != "" {
				viperCfg.AddConfigPath(path)
			}
		}
	}

	// Read environment variables.
	viperCfg.SetEnvPrefix(EnvPrefix)
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if flags != nil {
		for name, key := range flagKeys {
			if flag := flags.Lookup(name); flag != nil {
				if err := viperCfg.BindPFlag(key, flag); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	// Read config file.
	if configPath != "" || len(searchPaths) > 0 {
		readErr := viperCfg.ReadInConfig()
		if readErr != nil {
			var notFoundErr viper.ConfigFileNotFoundError
			if !errors.As(readErr, &notFoundErr) {
				return nil, fmt.Errorf("failed to read config file: %w", readErr)
			}
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := validateConfig(&config)
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(viperCfg *viper.Viper) {
	// Rule defaults, all rules are opt-in.
	viperCfg.SetDefault("rules.sort_imports", false)
	viperCfg.SetDefault("rules.remove_duplicates", false)
	viperCfg.SetDefault("rules.merge_imports", false)
	viperCfg.SetDefault("rules.keep_malformed", false)

	// Logging defaults.
	viperCfg.SetDefault("logging.level", "warn")

	// Processing defaults.
	viperCfg.SetDefault("processing.extensions", DefaultExtensions)
	viperCfg.SetDefault("processing.jobs", 0)
}

// validateConfig validates the configuration.
func validateConfig(config *Config) error {
	if _, err := log.ParseLevel(config.Logging.Level); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, config.Logging.Level)
	}

	if config.Processing.Jobs < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidJobs, config.Processing.Jobs)
	}

	if len(config.Processing.Extensions) == 0 {
		return fmt.Errorf("%w", ErrNoExtensions)
	}

	for i, ext := range config.Processing.Extensions {
		if !strings.HasPrefix(ext, ".") {
			config.Processing.Extensions[i] = "." + ext
		}
	}

	return nil
}
