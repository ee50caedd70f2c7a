// Package config loads the docmend CLI configuration.
//
// Configuration merges three sources, later ones winning: defaults, an
// optional .docmend.yaml file (current directory, then $HOME), and DOCMEND_*
// environment variables. Command-line flags override all of them but are
// bound by the CLI layer, not here.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = ".docmend"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "yaml"
	// EnvPrefix prefixes environment variable overrides (DOCMEND_FORMAT,
	// DOCMEND_LOG_LEVEL, DOCMEND_QUIET).
	EnvPrefix = "DOCMEND"
)

// Output formats accepted for the format key and the --format flag.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds the effective CLI configuration.
type Config struct {
	// Format selects the report rendering: text, json or yaml.
	Format string `mapstructure:"format" json:"format" yaml:"format"`
	// LogLevel sets the diagnostic log verbosity: debug, info, warn or error.
	LogLevel string `mapstructure:"log_level" json:"log_level" yaml:"log_level"`
	// Quiet suppresses diagnostic logging entirely; reports are still printed.
	Quiet bool `mapstructure:"quiet" json:"quiet" yaml:"quiet"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Format:   FormatText,
		LogLevel: "info",
		Quiet:    false,
	}
}

// Load reads the configuration. When explicitPath is non-empty that file must
// exist and parse; otherwise the default locations are searched and a missing
// file silently yields defaults. The resolved config file path is returned
// for display, empty when defaults are in effect.
func Load(explicitPath string) (*Config, string, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("format", defaults.Format)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("quiet", defaults.Quiet)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, "", fmt.Errorf("failed to load config from %s: %w", explicitPath, err)
		}
	} else {
		v.SetConfigName(ConfigFileName)
		v.SetConfigType(ConfigFileExt)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, "", fmt.Errorf("failed to load config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return &cfg, v.ConfigFileUsed(), nil
}

// Validate rejects values no renderer or logger can honor.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("invalid format %q: must be 'text', 'json' or 'yaml'", c.Format)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q: must be 'debug', 'info', 'warn' or 'error'", c.LogLevel)
	}
	return nil
}
