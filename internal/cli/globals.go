// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package cli implements the inkgrid command line.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gogpu/inkgrid"
	"github.com/gogpu/inkgrid/internal/sudoku"
)

// Globals contains settings that apply to every command.
type Globals struct {
	// PenWidth is the width multiplier of the writing tip.
	PenWidth float64 `default:"3" help:"Width multiplier of the writing tip."`
	// EraserWidth is the width multiplier of the eraser end.
	EraserWidth float64 `default:"50" help:"Width multiplier of the eraser end."`
	// PressureMax is the full-scale digitizer pressure.
	PressureMax int `default:"2048" help:"Full-scale digitizer pressure."`
	// HoverThreshold is the hover distance above which the stylus counts
	// as lifted.
	HoverThreshold int `default:"1" help:"Hover distance above which the stylus counts as lifted."`
	// Steps is the number of flattening steps per stroke segment.
	Steps int `default:"10" help:"Flattening steps per stroke segment."`
	// Seed seeds the puzzle generator. Zero picks a seed from the clock.
	Seed uint64 `help:"Puzzle generator seed. Zero picks a seed from the clock."`

	LogLevel string `default:"info" enum:"debug,info,warn,error" help:"Minimum level of log records."`
	LogFile  string `type:"path" help:"File to append logs to instead of stderr."`
}

// Options returns the session options selected by the flags.
func (g Globals) Options() []inkgrid.Option {
	return []inkgrid.Option{
		inkgrid.WithPenWidth(g.PenWidth),
		inkgrid.WithEraserWidth(g.EraserWidth),
		inkgrid.WithPressureMax(g.PressureMax),
		inkgrid.WithHoverThreshold(g.HoverThreshold),
		inkgrid.WithSteps(g.Steps),
	}
}

// Generator returns a puzzle generator seeded from the flags.
func (g Globals) Generator() *sudoku.Generator {
	seed := g.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return sudoku.NewGenerator(seed)
}

// SetupLogging installs the inkgrid logger. Records go to the log file
// when one is set and to fallback otherwise; a nil fallback disables
// logging. The returned function closes the log file.
func (g Globals) SetupLogging(fallback io.Writer) (func() error, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(g.LogLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", g.LogLevel, err)
	}

	closer := func() error { return nil }
	out := fallback
	if g.LogFile != "" {
		f, err := os.OpenFile(g.LogFile, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o600)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out, closer = f, f.Close
	}

	if out == nil {
		inkgrid.SetLogger(nil)
		return closer, nil
	}
	inkgrid.SetLogger(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})))
	return closer, nil
}
