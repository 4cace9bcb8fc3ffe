// Copyright (C) 2026 The tzoffset Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package tzoffset

import (
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
)

// ErrNoLocation is returned by a Source that has no timezone data.
var ErrNoLocation = errors.New("no timezone location available")

// Zone is the state of a timezone at one instant, in the platform
// convention of seconds west of UTC.
type Zone struct {
	// StandardWest is the standard-time offset, seconds west of UTC.
	StandardWest int
	// DaylightWest is the daylight-saving offset, seconds west of UTC.
	DaylightWest int
	// DST reports whether daylight saving is in effect.
	DST bool
}

// Offset returns the offset currently in effect in seconds ahead of UTC.
func (z Zone) Offset() int {
	if z.DST {
		return -z.DaylightWest
	}
	return -z.StandardWest
}

// Source supplies the zone state for an instant.
type Source interface {
	Zone(now time.Time) (Zone, error)
}

// SourceFunc adapts a function to a Source.
type SourceFunc func(now time.Time) (Zone, error)

// Zone implements Source.
func (f SourceFunc) Zone(now time.Time) (Zone, error) {
	return f(now)
}

// FixedSource returns a Source that always reports z.
func FixedSource(z Zone) Source {
	return SourceFunc(func(time.Time) (Zone, error) {
		return z, nil
	})
}

// LocalSource returns a Source backed by loc, usually time.Local.
func LocalSource(loc *time.Location) Source {
	return locationSource{loc: loc}
}

type locationSource struct {
	loc *time.Location
}

// Zone implements Source.
//
// The offset in effect fills the slot for the current DST state. The other
// slot is probed from January 1 and July 1 of the same year, the smaller
// east offset being standard time and the larger daylight time. Zones
// without DST report the same value in both slots.
func (s locationSource) Zone(now time.Time) (Zone, error) {
	if s.loc == nil {
		return Zone{}, ErrNoLocation
	}

	t := now.In(s.loc)
	_, current := t.Zone()

	year := t.Year()
	_, jan := time.Date(year, time.January, 1, 0, 0, 0, 0, s.loc).Zone()
	_, jul := time.Date(year, time.July, 1, 0, 0, 0, 0, s.loc).Zone()
	standard, daylight := lo.Min([]int{jan, jul}), lo.Max([]int{jan, jul})

	if t.IsDST() {
		return Zone{StandardWest: -standard, DaylightWest: -current, DST: true}, nil
	}
	if standard == daylight {
		daylight = current
	}
	return Zone{StandardWest: -current, DaylightWest: -daylight}, nil
}

// String describes the zone for diagnostics.
func (z Zone) String() string {
	return fmt.Sprintf("std=%ds dst=%ds active=%t", -z.StandardWest, -z.DaylightWest, z.DST)
}
