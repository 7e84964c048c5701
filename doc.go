// Package inkgrid renders freehand stylus ink onto a fixed-layout sudoku grid.
//
// # Overview
//
// inkgrid is the stylus-to-pixel pipeline of an e-ink sudoku pad. A noisy,
// irregular stream of digitizer samples is turned into a smooth,
// pressure-modulated stroke, rasterized with a variable width, masked against
// the puzzle grid so it never overwrites given digits or printed borders,
// and pushed to the panel as a rapid sequence of small partial refreshes.
//
// # Quick Start
//
//	board := inkgrid.NewBoard()
//	panel := surface.NewImageSurface(1404, 1872)
//
//	app := inkgrid.NewApp(board, panel, sudoku.NewGenerator(seed))
//	if err := app.Start(); err != nil {
//	    log.Fatal(err)
//	}
//	err := app.Run(ctx, source)
//
// # Architecture
//
// One digitizer event flows one way through:
//   - Tracker: instrument state and the three-sample history window
//   - Tessellate: three samples become one variable-width quadratic segment
//   - Rasterizer: per-pixel masking against the [Board] and [Layout]
//   - Scheduler: fast asynchronous refresh of the touched rectangle
//
// [Session] owns the first four stages and returns an [Outcome]. [App] is the
// outer single-consumer loop: it turns tap outcomes into widget callbacks and
// drives the puzzle [Lifecycle].
//
// # Coordinate System
//
// Panel pixels, origin at the top-left, X to the right, Y down. The grid is
// 9x9 cells of [Layout.Cell] pixels placed at [Layout.Offset].
package inkgrid
