// Copyright (C) 2026 The tzoffset Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import "github.com/tzoffset/tzoffset/internal/build"

// AppSlug is the prefix of every environment variable the loader binds.
var AppSlug = build.Slug

// Supported log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds the diagnostic settings of a run. None of them affect the
// offset line written to stdout.
type Config struct {
	// Debug enables debug level logging with source locations.
	Debug bool

	// LogFormat is either "text" or "json".
	LogFormat string

	// Warnings contains a list of warnings generated during loading.
	Warnings []string
}

// Definition is the raw shape decoded from viper before validation.
type Definition struct {
	Debug     bool   `mapstructure:"debug"`
	LogFormat string `mapstructure:"log_format"`
}
