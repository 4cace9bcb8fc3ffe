// Copyright (C) 2026 The tzoffset Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package build

import "strings"

// Set via -ldflags at release time.
var (
	Version = "dev"
	AppName = "tzoffset"
	Slug    = ""
)

func init() {
	if Slug == "" {
		Slug = strings.ToLower(AppName)
	}
}
