// Package astconfig loads host-tool configuration for asttool: conversion
// engine limits, logging, and the default source dialect name. Grounded on
// the teacher's pkg/config/config.go (viper-backed, mapstructure tags,
// sentinel validation errors, typed defaults table), rehomed from server
// ops settings to AST-core tool settings.
package astconfig

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Sentinel validation errors.
var (
	ErrInvalidMaxPasses    = errors.New("max conversion passes must be positive")
	ErrInvalidMatchSiteCap = errors.New("match site cap must be positive")
	ErrInvalidSourceName   = errors.New("default source name must not be empty")
)

// Default configuration values.
const (
	defaultMaxPasses    = 256
	defaultMatchSiteCap = 10000
	defaultSourceName   = "draft"
)

// Config holds all configuration for asttool.
type Config struct {
	Convert ConvertConfig `mapstructure:"convert"`
	Match   MatchConfig   `mapstructure:"match"`
	Logging LoggingConfig `mapstructure:"logging"`
	Source  SourceConfig  `mapstructure:"source"`
}

// ConvertConfig holds conversion-engine configuration.
type ConvertConfig struct {
	// MaxPasses is the configured conversion pass cap. Load rejects values
	// that are not positive.
	MaxPasses int `mapstructure:"max_passes"`
}

// MatchConfig holds pattern-matching configuration.
type MatchConfig struct {
	// SiteCap is the configured limit on match sites per Match call. Load
	// rejects values that are not positive. pattern.Matcher takes no such
	// limit and does not read this value.
	SiteCap int `mapstructure:"site_cap"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level     string `mapstructure:"level"`
	Component string `mapstructure:"component"`
}

// SourceConfig holds default-dialect configuration.
type SourceConfig struct {
	// DefaultName names the dialect asttool assumes when none is given on
	// the command line (e.g. "draft" for the textual mini-language).
	DefaultName string `mapstructure:"default_name"`
}

// Load loads configuration from configPath (or the conventional search
// path when empty) and the environment, falling back to defaults for
// anything unset. Environment variables are read under the AST prefix,
// e.g. AST_CONVERT_MAX_PASSES.
func Load(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName("asttool")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("./config")
		viperCfg.AddConfigPath("/etc/asttool")
	}

	viperCfg.SetEnvPrefix("AST")
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viperCfg.ReadInConfig(); err != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(err, &notFoundErr) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config

	if err := viperCfg.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("convert.max_passes", defaultMaxPasses)
	viperCfg.SetDefault("match.site_cap", defaultMatchSiteCap)
	viperCfg.SetDefault("logging.level", "info")
	viperCfg.SetDefault("logging.component", "asttool")
	viperCfg.SetDefault("source.default_name", defaultSourceName)
}

func validate(cfg *Config) error {
	if cfg.Convert.MaxPasses <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxPasses, cfg.Convert.MaxPasses)
	}

	if cfg.Match.SiteCap <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMatchSiteCap, cfg.Match.SiteCap)
	}

	if strings.TrimSpace(cfg.Source.DefaultName) == "" {
		return ErrInvalidSourceName
	}

	return nil
}
