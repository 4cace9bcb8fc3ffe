// Copyright (C) 2026 The tzoffset Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ConfigLoader reads settings from the environment.
type ConfigLoader struct {
	v        *viper.Viper
	prefix   string
	warnings []string
}

// ConfigLoaderOption defines a functional option for configuring a ConfigLoader.
type ConfigLoaderOption func(*ConfigLoader)

// WithEnvPrefix overrides the environment variable prefix (default AppSlug).
func WithEnvPrefix(prefix string) ConfigLoaderOption {
	return func(l *ConfigLoader) {
		l.prefix = prefix
	}
}

// NewConfigLoader creates a ConfigLoader with the given viper instance and options.
func NewConfigLoader(v *viper.Viper, options ...ConfigLoaderOption) *ConfigLoader {
	loader := &ConfigLoader{v: v, prefix: AppSlug}
	for _, opt := range options {
		opt(loader)
	}
	return loader
}

// Load is a shorthand for NewConfigLoader(viper.New()).Load().
func Load(options ...ConfigLoaderOption) (*Config, error) {
	return NewConfigLoader(viper.New(), options...).Load()
}

// Load applies defaults and environment overrides and returns a validated
// Config.
func (l *ConfigLoader) Load() (*Config, error) {
	l.configureViper()
	l.setDefaults()
	l.bindEnvironmentVariables()

	var def Definition
	if err := l.v.Unmarshal(&def); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg := l.buildConfig(def)
	cfg.Warnings = l.warnings
	return cfg, nil
}

func (l *ConfigLoader) buildConfig(def Definition) *Config {
	cfg := &Config{Debug: def.Debug}

	format := strings.ToLower(strings.TrimSpace(def.LogFormat))
	switch format {
	case LogFormatText, LogFormatJSON:
		cfg.LogFormat = format
	default:
		l.warnings = append(l.warnings, fmt.Sprintf("Invalid log_format value: %s, using %s", def.LogFormat, LogFormatText))
		cfg.LogFormat = LogFormatText
	}

	return cfg
}

func (l *ConfigLoader) setDefaults() {
	l.v.SetDefault("debug", false)
	l.v.SetDefault("log_format", LogFormatText)
}

var envBindings = []struct {
	key string
	env string
}{
	{key: "debug", env: "DEBUG"},
	{key: "log_format", env: "LOG_FORMAT"},
}

func (l *ConfigLoader) bindEnvironmentVariables() {
	prefix := strings.ToUpper(l.prefix) + "_"
	for _, b := range envBindings {
		_ = l.v.BindEnv(b.key, prefix+b.env)
	}
}

func (l *ConfigLoader) configureViper() {
	l.v.SetEnvPrefix(strings.ToUpper(l.prefix))
	l.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	l.v.AutomaticEnv()
}
