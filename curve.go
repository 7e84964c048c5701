package inkgrid

import (
	"image"
	"math"
	"sort"
)

// Curve types for stroke geometry.
// Based on kurbo patterns, adapted for Go idioms.

// Rect represents an axis-aligned rectangle in floating point space.
// Min is the top-left corner (minimum coordinates).
// Max is the bottom-right corner (maximum coordinates).
type Rect struct {
	Min, Max Point
}

// NewRect creates a rectangle from two points.
// The points are normalized so Min <= Max.
func NewRect(p1, p2 Point) Rect {
	return Rect{
		Min: Point{X: math.Min(p1.X, p2.X), Y: math.Min(p1.Y, p2.Y)},
		Max: Point{X: math.Max(p1.X, p2.X), Y: math.Max(p1.Y, p2.Y)},
	}
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, other.Min.X), Y: math.Min(r.Min.Y, other.Min.Y)},
		Max: Point{X: math.Max(r.Max.X, other.Max.X), Y: math.Max(r.Max.Y, other.Max.Y)},
	}
}

// Inset grows the rectangle by d on every side (shrinks for negative d).
func (r Rect) Inset(d float64) Rect {
	return Rect{
		Min: Point{X: r.Min.X - d, Y: r.Min.Y - d},
		Max: Point{X: r.Max.X + d, Y: r.Max.Y + d},
	}
}

// Pixels returns the pixel rectangle covering every integer coordinate
// inside r. The result is half-open like all image.Rectangle values.
func (r Rect) Pixels() image.Rectangle {
	return image.Rect(
		int(math.Ceil(r.Min.X)), int(math.Ceil(r.Min.Y)),
		int(math.Floor(r.Max.X))+1, int(math.Floor(r.Max.Y))+1,
	)
}

// -------------------------------------------------------------------
// QuadBez - Quadratic Bezier Curve
// -------------------------------------------------------------------

// QuadBez represents a quadratic Bezier curve with control points P0, P1, P2.
// P0 is the start point, P1 is the control point, P2 is the end point.
type QuadBez struct {
	P0, P1, P2 Point
}

// NewQuadBez creates a new quadratic Bezier curve.
func NewQuadBez(p0, p1, p2 Point) QuadBez {
	return QuadBez{P0: p0, P1: p1, P2: p2}
}

// Eval evaluates the curve at parameter t (0 to 1).
func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	// (1-t)^2 * P0 + 2(1-t)t * P1 + t^2 * P2
	return Point{
		X: mt*mt*q.P0.X + 2*mt*t*q.P1.X + t*t*q.P2.X,
		Y: mt*mt*q.P0.Y + 2*mt*t*q.P1.Y + t*t*q.P2.Y,
	}
}

// Subdivide splits the curve at t=0.5 into two halves using de Casteljau.
func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	mid := q.Eval(0.5)
	return QuadBez{
			P0: q.P0,
			P1: q.P0.Lerp(q.P1, 0.5),
			P2: mid,
		}, QuadBez{
			P0: mid,
			P1: q.P1.Lerp(q.P2, 0.5),
			P2: q.P2,
		}
}

// Extrema returns parameter values where the derivative is zero.
func (q QuadBez) Extrema() []float64 {
	var result []float64

	// B'(t) = 2[(P1-P0) + t(P2-2P1+P0)]
	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	dd := d1.Sub(d0)

	if dd.X != 0 {
		if t := -d0.X / dd.X; t > 0 && t < 1 {
			result = append(result, t)
		}
	}
	if dd.Y != 0 {
		if t := -d0.Y / dd.Y; t > 0 && t < 1 {
			result = append(result, t)
		}
	}

	sort.Float64s(result)
	return result
}

// BoundingBox returns the tight axis-aligned bounding box of the curve.
func (q QuadBez) BoundingBox() Rect {
	bbox := NewRect(q.P0, q.P2)
	for _, t := range q.Extrema() {
		p := q.Eval(t)
		bbox = bbox.Union(NewRect(p, p))
	}
	return bbox
}

// -------------------------------------------------------------------
// WidthQuad - Variable-width quadratic segment
// -------------------------------------------------------------------

// WidthQuad is a quadratic Bezier curve carrying a stroke width (diameter)
// at each of its three control points. The width along the curve is
// evaluated with the same Bernstein weights as the position, so it tapers
// smoothly from W0 through W1 to W2.
type WidthQuad struct {
	QuadBez
	W0, W1, W2 float64
}

// Width evaluates the stroke diameter at parameter t (0 to 1).
func (w WidthQuad) Width(t float64) float64 {
	mt := 1.0 - t
	return mt*mt*w.W0 + 2*mt*t*w.W1 + t*t*w.W2
}

// Flatten samples the curve at steps+1 evenly spaced parameters and returns
// the positions together with the stroke radius at each of them.
// steps below 1 is treated as 1.
func (w WidthQuad) Flatten(steps int) ([]Point, []float64) {
	if steps < 1 {
		steps = 1
	}
	pts := make([]Point, steps+1)
	radii := make([]float64, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		pts[i] = w.Eval(t)
		radii[i] = w.Width(t) / 2
	}
	return pts, radii
}

// Bounds returns the area the stroke can touch: the curve's bounding box
// grown by the widest radius.
func (w WidthQuad) Bounds() Rect {
	maxW := math.Max(w.W0, math.Max(w.W1, w.W2))
	return w.BoundingBox().Inset(maxW / 2)
}
