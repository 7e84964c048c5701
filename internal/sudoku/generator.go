// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sudoku

import (
	"math/rand/v2"

	"github.com/gogpu/inkgrid"
)

// Generator produces puzzles from a seeded random source. Puzzles are
// minimal: removing any further given would admit a second solution.
//
// Generator is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand

	solution inkgrid.Grid
}

// NewGenerator creates a generator. Equal seeds produce equal puzzle
// sequences.
func NewGenerator(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Generate returns a new puzzle. Empty cells are 0.
func (g *Generator) Generate() inkgrid.Grid {
	g.solution = g.fill()

	puzzle := g.solution
	for _, idx := range g.rng.Perm(inkgrid.CellCount) {
		v := puzzle[idx]
		puzzle[idx] = 0
		if CountSolutions(puzzle, 2) != 1 {
			puzzle[idx] = v
		}
	}
	return puzzle
}

// Solution returns the solution of the last generated puzzle.
func (g *Generator) Solution() inkgrid.Grid {
	return g.solution
}

// fill returns a random complete grid.
func (g *Generator) fill() inkgrid.Grid {
	var order [9]uint8
	for i, v := range g.rng.Perm(9) {
		order[i] = uint8(v + 1)
	}

	s, _ := newState(inkgrid.Grid{})
	// Seed the first row with a random permutation, leaving the rest to
	// the search, which always succeeds on a grid with one valid row.
	for col, v := range order {
		s.set(col, v)
	}
	g.rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	var out inkgrid.Grid
	s.search(&order, func(sol inkgrid.Grid) bool {
		out = sol
		return false
	})
	return out
}

var _ inkgrid.Engine = (*Generator)(nil)
