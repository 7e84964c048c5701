package inkgrid

import (
	"image"
	"math"
)

// DefaultSteps is the number of flattening steps per segment.
const DefaultSteps = 10

// minRadius keeps a very light touch from vanishing: every flattened
// point covers at least its own pixel.
const minRadius = 0.5

// Rasterizer stamps variable-width segments onto the panel, masking every
// pixel against the grid so ink never lands on given digits or borders.
type Rasterizer struct {
	layout Layout
	board  *Board
	steps  int
}

// NewRasterizer creates a rasterizer that masks against board.
// steps below 1 selects DefaultSteps.
func NewRasterizer(layout Layout, board *Board, steps int) *Rasterizer {
	if steps < 1 {
		steps = DefaultSteps
	}
	return &Rasterizer{layout: layout, board: board, steps: steps}
}

// Rasterize walks curve and calls write once for every pixel the stroke
// may ink. It returns the bounding rectangle of every grid pixel it
// considered, written or masked, and the number of pixels written.
//
// A curve entirely outside the grid considers nothing, writes nothing and
// returns an empty rectangle.
func (r *Rasterizer) Rasterize(curve WidthQuad, write func(p image.Point)) (considered image.Rectangle, written int) {
	bounds := curve.Bounds().Inset(minRadius).Pixels().Intersect(r.layout.Canvas())
	if bounds.Empty() {
		return image.Rectangle{}, 0
	}

	// Consecutive flattened segments overlap; visit each pixel once.
	seen := make([]bool, bounds.Dx()*bounds.Dy())

	pts, radii := curve.Flatten(r.steps)
	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		ra, rb := radii[i], radii[i+1]

		reach := math.Max(math.Max(ra, rb), minRadius)
		span := NewRect(a, b).Inset(reach).Pixels().Intersect(bounds)

		for y := span.Min.Y; y < span.Max.Y; y++ {
			for x := span.Min.X; x < span.Max.X; x++ {
				k := (y-bounds.Min.Y)*bounds.Dx() + (x - bounds.Min.X)
				if seen[k] {
					continue
				}

				q := Pt(float64(x), float64(y))
				t := projectOnSegment(q, a, b)
				radius := math.Max(ra+(rb-ra)*t, minRadius)
				if q.Distance(a.Lerp(b, t)) > radius {
					continue
				}
				seen[k] = true

				p := image.Pt(x, y)
				considered = considered.Union(image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))})
				if r.masked(p) {
					continue
				}
				write(p)
				written++
			}
		}
	}
	return considered, written
}

// masked reports whether p must not be inked.
func (r *Rasterizer) masked(p image.Point) bool {
	idx, ok := r.layout.CellAt(p)
	if !ok {
		return true
	}
	if r.board.Protected(idx) {
		return true
	}
	return r.layout.InMargin(p)
}
