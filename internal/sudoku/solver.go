// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package sudoku generates classic 9×9 puzzles with a unique solution.
package sudoku

import (
	"math/bits"

	"github.com/gogpu/inkgrid"
)

const allDigits = 0x3fe // bits 1..9

// state tracks the digits used by every row, column and box.
type state struct {
	grid  inkgrid.Grid
	rows  [9]uint16
	cols  [9]uint16
	boxes [9]uint16
}

func box(row, col int) int {
	return row/3*3 + col/3
}

// newState loads g. It reports false when g is not a valid partial grid.
func newState(g inkgrid.Grid) (*state, bool) {
	s := &state{}
	for idx, v := range g {
		if v == 0 {
			continue
		}
		if v > 9 {
			return nil, false
		}
		row, col := idx/9, idx%9
		bit := uint16(1) << v
		if (s.rows[row]|s.cols[col]|s.boxes[box(row, col)])&bit != 0 {
			return nil, false
		}
		s.set(idx, v)
	}
	return s, true
}

func (s *state) set(idx int, v uint8) {
	row, col := idx/9, idx%9
	bit := uint16(1) << v
	s.grid[idx] = v
	s.rows[row] |= bit
	s.cols[col] |= bit
	s.boxes[box(row, col)] |= bit
}

func (s *state) unset(idx int) {
	row, col := idx/9, idx%9
	bit := ^(uint16(1) << s.grid[idx])
	s.grid[idx] = 0
	s.rows[row] &= bit
	s.cols[col] &= bit
	s.boxes[box(row, col)] &= bit
}

func (s *state) candidates(idx int) uint16 {
	row, col := idx/9, idx%9
	return allDigits &^ (s.rows[row] | s.cols[col] | s.boxes[box(row, col)])
}

// pick returns the empty cell with the fewest candidates, or -1 when the
// grid is full.
func (s *state) pick() (idx int, cand uint16) {
	idx, best := -1, 10
	for i, v := range s.grid {
		if v != 0 {
			continue
		}
		c := s.candidates(i)
		if n := bits.OnesCount16(c); n < best {
			idx, cand, best = i, c, n
			if n <= 1 {
				break
			}
		}
	}
	return idx, cand
}

// search enumerates completions, calling visit for each. It stops when
// visit returns false. order, when set, permutes the digit trial order.
func (s *state) search(order *[9]uint8, visit func(inkgrid.Grid) bool) bool {
	idx, cand := s.pick()
	if idx < 0 {
		return visit(s.grid)
	}
	for i := 0; i < 9; i++ {
		v := uint8(i + 1)
		if order != nil {
			v = order[i]
		}
		if cand&(1<<v) == 0 {
			continue
		}
		s.set(idx, v)
		more := s.search(order, visit)
		s.unset(idx)
		if !more {
			return false
		}
	}
	return true
}

// CountSolutions returns the number of solutions of g, stopping at limit.
// Invalid grids have no solutions.
func CountSolutions(g inkgrid.Grid, limit int) int {
	s, ok := newState(g)
	if !ok || limit <= 0 {
		return 0
	}
	n := 0
	s.search(nil, func(inkgrid.Grid) bool {
		n++
		return n < limit
	})
	return n
}

// Solve returns the first solution of g in digit order.
func Solve(g inkgrid.Grid) (inkgrid.Grid, bool) {
	s, ok := newState(g)
	if !ok {
		return inkgrid.Grid{}, false
	}
	var out inkgrid.Grid
	found := false
	s.search(nil, func(sol inkgrid.Grid) bool {
		out, found = sol, true
		return false
	})
	return out, found
}

// Complete reports whether g is a fully filled valid grid.
func Complete(g inkgrid.Grid) bool {
	if _, ok := newState(g); !ok {
		return false
	}
	return g.Givens() == inkgrid.CellCount
}
