// Copyright (C) 2026 The tzoffset Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package tzoffset

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/tzoffset/tzoffset/internal/common/logger"
)

// Reporter writes the current offset line to a writer.
type Reporter struct {
	out    io.Writer
	source Source
	clock  func() time.Time
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithSource overrides the zone source (default LocalSource(time.Local)).
func WithSource(src Source) Option {
	return func(r *Reporter) {
		r.source = src
	}
}

// WithClock overrides the clock used to pick the instant.
func WithClock(clock func() time.Time) Option {
	return func(r *Reporter) {
		r.clock = clock
	}
}

// NewReporter creates a Reporter writing to out.
func NewReporter(out io.Writer, opts ...Option) *Reporter {
	r := &Reporter{
		out:    out,
		source: LocalSource(time.Local),
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Line returns the formatted offset for the current instant without
// writing it.
func (r *Reporter) Line(ctx context.Context) (string, error) {
	now := r.clock()
	zone, err := r.source.Zone(now)
	if err != nil {
		return "", fmt.Errorf("failed to read timezone: %w", err)
	}

	offset := zone.Offset()
	line := Format(offset)
	logger.Debug(ctx, "Resolved UTC offset",
		"zone", zone.String(),
		"offset", offset,
		"line", line,
	)
	return line, nil
}

// Report writes exactly one line, terminated by a newline.
func (r *Reporter) Report(ctx context.Context) error {
	line, err := r.Line(ctx)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(r.out, line); err != nil {
		return fmt.Errorf("failed to write offset: %w", err)
	}
	return nil
}
