// Copyright (C) 2026 The tzoffset Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"os"

	"github.com/tzoffset/tzoffset/internal/build"
	"github.com/tzoffset/tzoffset/internal/cmd"
)

func main() {
	if err := cmd.Root().Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	build.Version = version
}

var version = "0.0.0"
