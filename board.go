package inkgrid

import (
	"fmt"
	"sync"
)

// Grid is a row-major sudoku grid. 0 marks an empty cell, 1..9 a given.
type Grid [CellCount]uint8

// Givens returns the number of non-empty cells.
func (g Grid) Givens() int {
	n := 0
	for _, v := range g {
		if v != 0 {
			n++
		}
	}
	return n
}

// Validate reports ErrInvalidGrid if any cell holds a value above 9.
func (g Grid) Validate() error {
	for i, v := range g {
		if v > 9 {
			return fmt.Errorf("%w: cell %d holds %d", ErrInvalidGrid, i, v)
		}
	}
	return nil
}

// Board is the lock-guarded handle to the current puzzle grid. The
// rasterizer takes a read lock for every mask check; the puzzle lifecycle
// takes the write lock once per regenerate.
//
// Board is safe for concurrent use.
type Board struct {
	mu     sync.RWMutex
	grid   Grid
	loaded bool
}

// NewBoard returns an empty board with no puzzle loaded.
func NewBoard() *Board {
	return &Board{}
}

// Set replaces the whole grid.
func (b *Board) Set(g Grid) error {
	if err := g.Validate(); err != nil {
		return err
	}
	b.mu.Lock()
	b.grid = g
	b.loaded = true
	b.mu.Unlock()
	return nil
}

// Grid returns a copy of the current grid. ok is false if no puzzle has
// been loaded yet.
func (b *Board) Grid() (g Grid, ok bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.grid, b.loaded
}

// Loaded reports whether a puzzle has been stored.
func (b *Board) Loaded() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.loaded
}

// Protected reports whether cell idx holds a given digit.
//
// Drawing is only enabled once a puzzle exists, so calling Protected on an
// unloaded board is a programming error and panics.
func (b *Board) Protected(idx int) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.loaded {
		panic("inkgrid: mask check before a puzzle was loaded")
	}
	return b.grid[idx] != 0
}
