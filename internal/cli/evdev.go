// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/gogpu/inkgrid"
	"github.com/gogpu/inkgrid/internal/evdev"
	"github.com/gogpu/inkgrid/internal/replay"
	"github.com/gogpu/inkgrid/surface"
)

type EvdevCmd struct {
	// Device is the digitizer input device.
	Device string `arg:"" optional:"" default:"/dev/input/event0" help:"Digitizer input device."`
	// Out is the PNG file the final panel is written to.
	Out string `short:"o" default:"inkgrid.png" type:"path" help:"PNG file the final panel is written to."`
	// Record is an optional JSON-lines file the session is saved to.
	Record string `short:"r" type:"path" help:"JSON-lines file to record the session to."`

	MaxX     int `default:"20967" help:"Raw X axis maximum."`
	MaxY     int `default:"15725" help:"Raw Y axis maximum."`
	WordSize int `help:"Kernel word size in bytes (4 or 8). Defaults to the host word size."`
}

// config returns the digitizer configuration selected by the flags.
func (c EvdevCmd) config() evdev.Config {
	cfg := evdev.DefaultConfig()
	cfg.MaxX, cfg.MaxY = c.MaxX, c.MaxY
	if c.WordSize != 0 {
		cfg.WordSize = c.WordSize
	}
	return cfg
}

func (c EvdevCmd) Run(g Globals) (err error) {
	closeLog, err := g.SetupLogging(os.Stderr)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closeLog(); err == nil {
			err = closeErr
		}
	}()

	dev, err := os.Open(c.Device)
	if err != nil {
		return fmt.Errorf("failed to open input device: %w", err)
	}
	defer dev.Close()

	var src inkgrid.EventSource = &closingSource{
		EventSource: evdev.NewReader(dev, c.config()),
		closer:      dev,
	}
	if c.Record != "" {
		rec, err := os.Create(c.Record)
		if err != nil {
			return fmt.Errorf("failed to create recording: %w", err)
		}
		defer rec.Close()
		src = replay.NewRecorder(src, rec)
	}

	l := inkgrid.DefaultLayout()
	panel := surface.NewImageSurface(l.Width, l.Height)
	defer panel.Close()

	app := inkgrid.NewApp(inkgrid.NewBoard(), panel, g.Generator(), g.Options()...)
	if err := run(app, src); err != nil {
		return err
	}
	return panel.SavePNG(c.Out)
}

// closingSource closes the device when ctx is done so a blocked read
// returns.
type closingSource struct {
	inkgrid.EventSource
	closer io.Closer
	armed  bool
}

func (s *closingSource) Next(ctx context.Context) (inkgrid.Event, error) {
	if !s.armed {
		s.armed = true
		go func() {
			<-ctx.Done()
			s.closer.Close()
		}()
	}
	ev, err := s.EventSource.Next(ctx)
	if err != nil && ctx.Err() != nil {
		return nil, ctx.Err()
	}
	return ev, err
}
