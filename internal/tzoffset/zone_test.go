// Copyright (C) 2026 The tzoffset Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package tzoffset

import (
	"testing"
	"time"
	_ "time/tzdata" // Named zones regardless of the host's zoneinfo

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZone_Offset(t *testing.T) {
	t.Run("StandardWhenDSTInactive", func(t *testing.T) {
		z := Zone{StandardWest: 18000, DaylightWest: 14400}
		assert.Equal(t, -18000, z.Offset())
	})

	t.Run("DaylightWhenDSTActive", func(t *testing.T) {
		z := Zone{StandardWest: 18000, DaylightWest: 14400, DST: true}
		assert.Equal(t, -14400, z.Offset())
	})

	t.Run("DaylightUsedEvenIfUnusual", func(t *testing.T) {
		z := Zone{StandardWest: 0, DaylightWest: -2 * 3600, DST: true}
		assert.Equal(t, "UTC+02:00", Format(z.Offset()))
	})
}

func TestLocalSource(t *testing.T) {
	winter := time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)
	summer := time.Date(2024, time.July, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		location string
		at       time.Time
		want     Zone
		line     string
	}{
		{
			name:     "UTC",
			location: "UTC",
			at:       winter,
			want:     Zone{},
			line:     "UTC+00:00",
		},
		{
			name:     "ShanghaiNoDST",
			location: "Asia/Shanghai",
			at:       summer,
			want:     Zone{StandardWest: -8 * 3600, DaylightWest: -8 * 3600},
			line:     "UTC+08:00",
		},
		{
			name:     "KolkataHalfHour",
			location: "Asia/Kolkata",
			at:       winter,
			want:     Zone{StandardWest: -(5*3600 + 30*60), DaylightWest: -(5*3600 + 30*60)},
			line:     "UTC+05:30",
		},
		{
			name:     "KathmanduQuarterHour",
			location: "Asia/Kathmandu",
			at:       winter,
			want:     Zone{StandardWest: -(5*3600 + 45*60), DaylightWest: -(5*3600 + 45*60)},
			line:     "UTC+05:45",
		},
		{
			name:     "NewYorkStandard",
			location: "America/New_York",
			at:       winter,
			want:     Zone{StandardWest: 5 * 3600, DaylightWest: 4 * 3600},
			line:     "UTC-05:00",
		},
		{
			name:     "NewYorkDaylight",
			location: "America/New_York",
			at:       summer,
			want:     Zone{StandardWest: 5 * 3600, DaylightWest: 4 * 3600, DST: true},
			line:     "UTC-04:00",
		},
		{
			name:     "StJohnsStandard",
			location: "America/St_Johns",
			at:       winter,
			want:     Zone{StandardWest: 3*3600 + 30*60, DaylightWest: 2*3600 + 30*60},
			line:     "UTC-03:30",
		},
		{
			name:     "AdelaideSouthernSummer",
			location: "Australia/Adelaide",
			at:       winter,
			want:     Zone{StandardWest: -(9*3600 + 30*60), DaylightWest: -(10*3600 + 30*60), DST: true},
			line:     "UTC+10:30",
		},
		{
			name:     "AdelaideSouthernWinter",
			location: "Australia/Adelaide",
			at:       summer,
			want:     Zone{StandardWest: -(9*3600 + 30*60), DaylightWest: -(10*3600 + 30*60)},
			line:     "UTC+09:30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := time.LoadLocation(tt.location)
			require.NoError(t, err)

			got, err := LocalSource(loc).Zone(tt.at)
			require.NoError(t, err)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.line, Format(got.Offset()))
		})
	}
}

func TestLocalSource_FixedZone(t *testing.T) {
	loc := time.FixedZone("", -30*60)

	got, err := LocalSource(loc).Zone(time.Now())
	require.NoError(t, err)

	assert.Equal(t, Zone{StandardWest: 1800, DaylightWest: 1800}, got)
	assert.Equal(t, "UTC+00:30", Format(got.Offset()))
}

func TestLocalSource_NilLocation(t *testing.T) {
	_, err := LocalSource(nil).Zone(time.Now())
	assert.ErrorIs(t, err, ErrNoLocation)
}

func TestFixedSource(t *testing.T) {
	want := Zone{StandardWest: -3600, DaylightWest: -7200, DST: true}

	got, err := FixedSource(want).Zone(time.Time{})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
