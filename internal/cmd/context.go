// Copyright (C) 2026 The tzoffset Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tzoffset/tzoffset/internal/common/config"
	"github.com/tzoffset/tzoffset/internal/common/logger"
)

// Context holds the configuration for a command.
type Context struct {
	context.Context

	Command *cobra.Command
	Config  *config.Config
}

// NewContext loads configuration and sets up the logger context for cmd.
func NewContext(cmd *cobra.Command) (*Context, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	var opts []logger.Option
	if cfg.Debug {
		opts = append(opts, logger.WithDebug())
	}
	if cfg.LogFormat != "" {
		opts = append(opts, logger.WithFormat(cfg.LogFormat))
	}
	opts = append(opts, logger.WithConsole(cmd.ErrOrStderr()))

	ctx = config.WithConfig(ctx, cfg)
	ctx = logger.WithLogger(ctx, logger.NewLogger(opts...))

	for _, w := range cfg.Warnings {
		logger.Warn(ctx, w)
	}

	return &Context{
		Context: ctx,
		Command: cmd,
		Config:  cfg,
	}, nil
}

// NewCommand wraps run so that it receives an initialized Context.
func NewCommand(cmd *cobra.Command, run func(*Context, []string) error) *cobra.Command {
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx, err := NewContext(cmd)
		if err != nil {
			return err
		}
		return run(ctx, args)
	}
	return cmd
}
