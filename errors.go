package inkgrid

import "errors"

// Sentinel errors for the inkgrid package.
var (
	// ErrNoPuzzle is returned when an operation needs a loaded puzzle but
	// the board has never been filled.
	ErrNoPuzzle = errors.New("inkgrid: no puzzle loaded")

	// ErrInvalidGrid is returned when a puzzle engine produces a grid with
	// a digit outside 0..9.
	ErrInvalidGrid = errors.New("inkgrid: invalid puzzle grid")
)
