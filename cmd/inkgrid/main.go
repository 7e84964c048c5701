// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command inkgrid draws stylus strokes onto a sudoku grid.
package main

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/gogpu/inkgrid/internal/cli"
)

func main() {
	var c cli.CLI
	parser := kong.Must(&c,
		kong.Name("inkgrid"),
		kong.Description("Freehand sudoku on an e-ink style panel."),
		kong.UsageOnError(),
	)

	cfgArgs, err := cli.LoadConfig()
	parser.FatalIfErrorf(err)

	ctx, err := parser.Parse(append(cfgArgs, os.Args[1:]...))
	parser.FatalIfErrorf(err)

	parser.FatalIfErrorf(ctx.Run(c.Globals))
}
