// Copyright (C) 2026 The tzoffset Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tzoffset/tzoffset/internal/build"
)

func Version() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display the binary version",
		Long:  `Print the current version of the ` + build.AppName + ` executable.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), build.Version)
			return err
		},
	}
}
