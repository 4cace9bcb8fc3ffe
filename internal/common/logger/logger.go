// Copyright (C) 2026 The tzoffset Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"sync"
	"time"

	slogmulti "github.com/samber/slog-multi"
)

// Logger is the diagnostic logger. It never writes to stdout, which is
// reserved for the offset line.
type Logger interface {
	Debug(msg string, tags ...any)
	Info(msg string, tags ...any)
	Warn(msg string, tags ...any)
	Error(msg string, tags ...any)

	Debugf(format string, v ...any)
	Warnf(format string, v ...any)

	With(attrs ...any) Logger
}

var _ Logger = (*appLogger)(nil)

type appLogger struct {
	logger *slog.Logger
	debug  bool
}

type Config struct {
	debug   bool
	format  string
	writer  io.Writer
	console io.Writer
	quiet   bool
}

type Option func(*Config)

// WithDebug sets the level of the logger to debug.
func WithDebug() Option {
	return func(o *Config) {
		o.debug = true
	}
}

// WithFormat sets the format of the logger (text or json).
func WithFormat(format string) Option {
	return func(o *Config) {
		o.format = format
	}
}

// WithWriter adds a second destination besides the console.
func WithWriter(w io.Writer) Option {
	return func(o *Config) {
		o.writer = w
	}
}

// WithConsole replaces stderr as the console destination.
func WithConsole(w io.Writer) Option {
	return func(o *Config) {
		o.console = w
	}
}

// WithQuiet suppresses output to the console.
func WithQuiet() Option {
	return func(o *Config) {
		o.quiet = true
	}
}

var defaultLogger = NewLogger(WithFormat("text"))

func NewLogger(opts ...Option) Logger {
	cfg := &Config{console: os.Stderr}
	for _, opt := range opts {
		opt(cfg)
	}

	level := slog.LevelInfo
	if cfg.debug {
		level = slog.LevelDebug
	}

	handlerOpts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	var handlers []slog.Handler
	if !cfg.quiet {
		handlers = append(handlers, newHandler(cfg.console, cfg.format, handlerOpts))
	}
	if cfg.writer != nil {
		handlers = append(handlers, newGuardedHandler(newHandler(cfg.writer, cfg.format, handlerOpts)))
	}

	return &appLogger{
		logger: slog.New(slogmulti.Fanout(handlers...)),
		debug:  cfg.debug,
	}
}

var _ slog.Handler = (*guardedHandler)(nil)

// guardedHandler serializes writes from loggers derived with With so
// lines sharing one writer do not interleave.
type guardedHandler struct {
	handler slog.Handler
	mu      *sync.Mutex
}

func newGuardedHandler(handler slog.Handler) *guardedHandler {
	return &guardedHandler{handler: handler, mu: &sync.Mutex{}}
}

// Enabled implements slog.Handler.
func (s *guardedHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return s.handler.Enabled(ctx, level)
}

// Handle implements slog.Handler.
func (s *guardedHandler) Handle(ctx context.Context, record slog.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.handler.Handle(ctx, record)
}

// WithAttrs implements slog.Handler.
func (s *guardedHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &guardedHandler{handler: s.handler.WithAttrs(attrs), mu: s.mu}
}

// WithGroup implements slog.Handler.
func (s *guardedHandler) WithGroup(name string) slog.Handler {
	return &guardedHandler{handler: s.handler.WithGroup(name), mu: s.mu}
}

func newHandler(w io.Writer, format string, opts *slog.HandlerOptions) slog.Handler {
	if format == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// Debug implements logger.Logger.
func (a *appLogger) Debug(msg string, tags ...any) {
	a.log(slog.LevelDebug, msg, tags...)
}

// Info implements logger.Logger.
func (a *appLogger) Info(msg string, tags ...any) {
	a.log(slog.LevelInfo, msg, tags...)
}

// Warn implements logger.Logger.
func (a *appLogger) Warn(msg string, tags ...any) {
	a.log(slog.LevelWarn, msg, tags...)
}

// Error implements logger.Logger.
func (a *appLogger) Error(msg string, tags ...any) {
	a.log(slog.LevelError, msg, tags...)
}

// Debugf implements logger.Logger.
func (a *appLogger) Debugf(format string, v ...any) {
	a.log(slog.LevelDebug, fmt.Sprintf(format, v...))
}

// Warnf implements logger.Logger.
func (a *appLogger) Warnf(format string, v ...any) {
	a.log(slog.LevelWarn, fmt.Sprintf(format, v...))
}

// log records the caller of the public method as the source, not this file.
func (a *appLogger) log(level slog.Level, msg string, tags ...any) {
	ctx := context.Background()
	if !a.logger.Enabled(ctx, level) {
		return
	}

	var pc uintptr
	if a.debug {
		var pcs [1]uintptr
		runtime.Callers(3, pcs[:]) // Skip runtime.Callers, log, and the logger method
		pc = pcs[0]
	}

	record := slog.NewRecord(time.Now(), level, msg, pc)
	record.Add(tags...)
	_ = a.logger.Handler().Handle(ctx, record)
}

// With implements logger.Logger.
func (a *appLogger) With(attrs ...any) Logger {
	return &appLogger{
		logger: a.logger.With(attrs...),
		debug:  a.debug,
	}
}
