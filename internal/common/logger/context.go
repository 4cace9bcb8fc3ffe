// Copyright (C) 2026 The tzoffset Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package logger

import (
	"context"
)

type loggerKey struct{}

// WithLogger returns a new context with the given logger.
func WithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger stored in ctx, or the default stderr
// logger when none is set.
func FromContext(ctx context.Context) Logger {
	if value, ok := ctx.Value(loggerKey{}).(Logger); ok {
		return value
	}
	return defaultLogger
}

// WithValues adds key-value pairs to the context logger.
func WithValues(ctx context.Context, keyvals ...any) context.Context {
	if len(keyvals)%2 != 0 {
		keyvals = append(keyvals, "MISSING_VALUE")
	}
	return WithLogger(ctx, FromContext(ctx).With(keyvals...))
}

// Debug logs a message with debug level.
func Debug(ctx context.Context, msg string, tags ...any) {
	FromContext(ctx).Debug(msg, tags...)
}

// Info logs a message with info level.
func Info(ctx context.Context, msg string, tags ...any) {
	FromContext(ctx).Info(msg, tags...)
}

// Warn logs a message with warn level.
func Warn(ctx context.Context, msg string, tags ...any) {
	FromContext(ctx).Warn(msg, tags...)
}

// Error logs a message with error level.
func Error(ctx context.Context, msg string, tags ...any) {
	FromContext(ctx).Error(msg, tags...)
}
