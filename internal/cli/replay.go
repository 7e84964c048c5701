// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"fmt"
	"os"

	"github.com/gogpu/inkgrid"
	"github.com/gogpu/inkgrid/internal/replay"
	"github.com/gogpu/inkgrid/surface"
)

type ReplayCmd struct {
	// Input is the JSON-lines session to replay.
	Input string `arg:"" type:"existingfile" help:"JSON-lines session to replay."`
	// Out is the PNG file the final panel is written to.
	Out string `short:"o" default:"inkgrid.png" type:"path" help:"PNG file the final panel is written to."`
}

func (c ReplayCmd) Run(g Globals) (err error) {
	closeLog, err := g.SetupLogging(os.Stderr)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closeLog(); err == nil {
			err = closeErr
		}
	}()

	f, err := os.Open(c.Input)
	if err != nil {
		return fmt.Errorf("failed to open session: %w", err)
	}
	defer f.Close()

	l := inkgrid.DefaultLayout()
	panel := surface.NewImageSurface(l.Width, l.Height)
	defer panel.Close()

	app := inkgrid.NewApp(inkgrid.NewBoard(), panel, g.Generator(), g.Options()...)
	if err := run(app, replay.NewDecoder(f)); err != nil {
		return err
	}
	return panel.SavePNG(c.Out)
}
