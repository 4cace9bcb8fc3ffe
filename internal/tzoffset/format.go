// Copyright (C) 2026 The tzoffset Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package tzoffset reports the UTC offset in effect for a timezone at an
// instant as a "UTC±HH:MM" string.
package tzoffset

import (
	"fmt"

	"github.com/samber/lo"
)

const (
	secondsPerHour   = 3600
	secondsPerMinute = 60
)

// Split breaks an offset in seconds ahead of UTC into its hour and minute
// components. Hours truncate toward zero and carry the sign; minutes are
// taken from the magnitude of the whole offset and are never negative.
func Split(offset int) (hours, minutes int) {
	hours = offset / secondsPerHour
	minutes = (abs(offset) % secondsPerHour) / secondsPerMinute
	return hours, minutes
}

// Format renders offset (seconds ahead of UTC) as "UTC+HH:MM" or
// "UTC-HH:MM".
//
// The sign follows the truncated hour component, so offsets strictly
// between -1h and 0 render with '+' (e.g. -30m is "UTC+00:30").
func Format(offset int) string {
	hours, minutes := Split(offset)
	sign := lo.Ternary(hours >= 0, "+", "-")
	return fmt.Sprintf("UTC%s%02d:%02d", sign, abs(hours), minutes)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
