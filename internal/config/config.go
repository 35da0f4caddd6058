package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by LoadConfig.
const EnvPrefix = "FREQDICT"

// Config holds all configuration for freqdict
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Tokenize TokenizeConfig `mapstructure:"tokenize"`
	Build    BuildConfig    `mapstructure:"build"`
	Complete CompleteConfig `mapstructure:"complete"`
}

// LogConfig holds logging related configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// TokenizeConfig controls how text is split into dictionary words
type TokenizeConfig struct {
	MinLength int  `mapstructure:"min_length"`
	FoldCase  bool `mapstructure:"fold_case"`
	Normalize bool `mapstructure:"normalize"`
}

// BuildConfig holds dictionary build configuration
type BuildConfig struct {
	Workers int `mapstructure:"workers"`
}

// CompleteConfig holds prefix completion configuration
type CompleteConfig struct {
	Limit int `mapstructure:"limit"`
}

// LoadConfig loads configuration from an optional file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", true)

	v.SetDefault("tokenize.min_length", 1)
	v.SetDefault("tokenize.fold_case", true)
	v.SetDefault("tokenize.normalize", true)

	v.SetDefault("build.workers", 4)

	v.SetDefault("complete.limit", 10)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	if c.Tokenize.MinLength < 1 {
		return fmt.Errorf("tokenize min_length must be at least 1, got %d", c.Tokenize.MinLength)
	}
	if c.Build.Workers < 1 {
		return fmt.Errorf("build workers must be at least 1, got %d", c.Build.Workers)
	}
	if c.Complete.Limit < 0 {
		return fmt.Errorf("complete limit cannot be negative, got %d", c.Complete.Limit)
	}
	return nil
}

// LogLevel returns the configured zerolog level, defaulting to info.
func (c *LogConfig) LogLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(c.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
