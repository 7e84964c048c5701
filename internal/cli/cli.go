// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/gogpu/inkgrid"
)

// CLI is the root command.
type CLI struct {
	Globals

	Play   PlayCmd   `cmd:"" help:"Draw on the grid in the terminal, using the mouse as a stylus."`
	Replay ReplayCmd `cmd:"" help:"Render a recorded session to a PNG file."`
	Evdev  EvdevCmd  `cmd:"" help:"Draw from a digitizer input device into a PNG file."`
}

// run starts app and feeds it from src until src ends or the process is
// interrupted.
func run(app *inkgrid.App, src inkgrid.EventSource) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := app.Start(); err != nil {
		return err
	}
	if err := app.Run(ctx, src); err != nil && ctx.Err() == nil {
		return fmt.Errorf("event loop failed: %w", err)
	}
	return nil
}
