// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides panels implementing inkgrid.Display.
//
// ImageSurface is an in-memory framebuffer that records every refresh it
// is asked for; it is used for tests, replays and PNG export.
// TerminalSurface mirrors an ImageSurface onto a tcell screen with
// half-block characters, refreshing asynchronously the way an e-ink
// controller does.
//
//	panel := surface.NewImageSurface(1404, 1872)
//	app := inkgrid.NewApp(inkgrid.NewBoard(), panel, engine)
//	...
//	err := panel.SavePNG("grid.png")
package surface
