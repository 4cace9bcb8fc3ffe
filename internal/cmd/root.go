// Copyright (C) 2026 The tzoffset Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tzoffset/tzoffset/internal/build"
	"github.com/tzoffset/tzoffset/internal/tzoffset"
)

// Root returns the top-level command. Run without arguments it prints the
// host's current UTC offset, e.g. "UTC+08:00".
func Root() *cobra.Command {
	return newRoot()
}

func newRoot(opts ...tzoffset.Option) *cobra.Command {
	root := NewCommand(
		&cobra.Command{
			Use:   build.Slug,
			Short: "Print the current UTC offset of this host",
			Long: `Print the UTC offset currently in effect for this host as a single line
in the form UTC+HH:MM or UTC-HH:MM, daylight saving included.

The output is meant to be captured by a build and embedded as a constant.`,
			Args:         cobra.NoArgs,
			SilenceUsage: true,
		},
		func(ctx *Context, _ []string) error {
			return tzoffset.NewReporter(ctx.Command.OutOrStdout(), opts...).Report(ctx)
		},
	)
	root.AddCommand(Version())
	return root
}
