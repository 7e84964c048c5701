package inkgrid

import (
	"image"
	"math"
)

const (
	// GridCells is the number of cells along each side of the grid.
	GridCells = 9

	// CellCount is the total number of cells in the grid.
	CellCount = GridCells * GridCells
)

// Layout describes where the grid sits on the panel. All values are in
// panel pixels. The zero value is not usable; start from DefaultLayout.
type Layout struct {
	// Width and Height are the panel dimensions.
	Width, Height int

	// Cell is the side length of one grid cell.
	Cell int

	// LineWidth is the thickness of a thin grid line. Box lines (every
	// third line) are twice as thick.
	LineWidth int
}

// DefaultLayout returns the layout of a 1404x1872 portrait panel with
// 130 pixel cells.
func DefaultLayout() Layout {
	return Layout{
		Width:     1404,
		Height:    1872,
		Cell:      130,
		LineWidth: 2,
	}
}

// Size returns the side length of the whole grid.
func (l Layout) Size() int {
	return GridCells * l.Cell
}

// Offset returns the top-left corner of the grid. The grid is centered
// horizontally and uses the same distance from the top edge.
func (l Layout) Offset() image.Point {
	o := (l.Width - l.Size()) / 2
	return image.Pt(o, o)
}

// Canvas returns the drawable grid area, excluding the outer border line.
func (l Layout) Canvas() image.Rectangle {
	o := l.Offset()
	return image.Rectangle{Min: o, Max: o.Add(image.Pt(l.Size(), l.Size()))}
}

// Region returns the grid area including the outer border line. Whole-grid
// repaints refresh exactly this rectangle.
func (l Layout) Region() image.Rectangle {
	return l.Canvas().Inset(-l.LineWidth)
}

// Contains reports whether a stylus position falls inside the canvas.
func (l Layout) Contains(p Point) bool {
	return image.Pt(int(math.Floor(p.X)), int(math.Floor(p.Y))).In(l.Canvas())
}

// Local translates a panel pixel to grid-local coordinates.
func (l Layout) Local(p image.Point) image.Point {
	return p.Sub(l.Offset())
}

// CellAt returns the row-major cell index owning panel pixel p.
// ok is false when p lies outside the grid.
func (l Layout) CellAt(p image.Point) (idx int, ok bool) {
	local := l.Local(p)
	size := l.Size()
	if local.X < 0 || local.Y < 0 || local.X >= size || local.Y >= size {
		return 0, false
	}
	return (local.Y/l.Cell)*GridCells + local.X/l.Cell, true
}

// CellOrigin returns the top-left panel pixel of cell idx.
func (l Layout) CellOrigin(idx int) image.Point {
	col, row := idx%GridCells, idx/GridCells
	return l.Offset().Add(image.Pt(col*l.Cell, row*l.Cell))
}

// CellBounds returns the full pixel rectangle of cell idx, margins included.
func (l Layout) CellBounds(idx int) image.Rectangle {
	o := l.CellOrigin(idx)
	return image.Rectangle{Min: o, Max: o.Add(image.Pt(l.Cell, l.Cell))}
}

// CellInterior returns the writable part of cell idx: its bounds with the
// border margin removed from every edge.
func (l Layout) CellInterior(idx int) image.Rectangle {
	return l.CellBounds(idx).Inset(l.LineWidth)
}

// DigitOrigin returns the text baseline origin for the digit of cell idx.
func (l Layout) DigitOrigin(idx int) Point {
	col, row := idx%GridCells, idx/GridCells
	o := l.Offset()
	return Pt(
		float64(o.X+l.Cell/3+col*l.Cell),
		float64(o.Y+l.Cell*3/4+row*l.Cell),
	)
}

// DigitSize returns the font size used for given digits.
func (l Layout) DigitSize() float64 {
	return 0.8 * float64(l.Cell)
}

// InMargin reports whether panel pixel p lies in the border margin of its
// cell. The margin is LineWidth pixels wide on each edge, which covers
// half of a thick box line drawn centered on the cell boundary.
func (l Layout) InMargin(p image.Point) bool {
	local := l.Local(p)
	fx := mod(local.X, l.Cell)
	fy := mod(local.Y, l.Cell)
	lo, hi := l.LineWidth, l.Cell-l.LineWidth
	return fx < lo || fx >= hi || fy < lo || fy >= hi
}

// LineThickness returns the thickness of grid line i (0..9).
func (l Layout) LineThickness(i int) int {
	if i%3 == 0 {
		return 2 * l.LineWidth
	}
	return l.LineWidth
}

// mod returns the non-negative remainder of a / b.
func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
