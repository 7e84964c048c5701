// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster fills polygons and thick lines onto bilevel framebuffers.
//
// Coverage is computed with golang.org/x/image/vector and thresholded: a
// pixel is painted when at least half of it lies inside the shape. E-ink
// waveforms used for strokes only drive pure black and white, so no
// intermediate gray is ever written.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// Threshold is the minimum coverage (0..0xff) of a painted pixel.
const Threshold = 0x80

// Filler rasterizes shapes. It reuses its coverage buffers between calls
// and is not safe for concurrent use.
type Filler struct {
	z    *vector.Rasterizer
	mask *image.Alpha
}

// NewFiller creates a filler.
func NewFiller() *Filler {
	return &Filler{z: vector.NewRasterizer(0, 0)}
}

// Point is a sub-pixel vertex.
type Point struct {
	X, Y float64
}

// Polygon fills the closed polygon pts onto dst with c and returns the
// rectangle of pixels it touched. Polygons with fewer than three vertices
// paint nothing.
func (f *Filler) Polygon(dst draw.Image, pts []Point, c color.Color) image.Rectangle {
	if len(pts) < 3 {
		return image.Rectangle{}
	}

	r := bounds(pts).Intersect(dst.Bounds())
	if r.Empty() {
		return image.Rectangle{}
	}

	f.z.Reset(r.Dx(), r.Dy())
	f.z.MoveTo(float32(pts[0].X-float64(r.Min.X)), float32(pts[0].Y-float64(r.Min.Y)))
	for _, p := range pts[1:] {
		f.z.LineTo(float32(p.X-float64(r.Min.X)), float32(p.Y-float64(r.Min.Y)))
	}
	f.z.ClosePath()

	mask := f.coverage(r)
	var painted image.Rectangle
	for y := 0; y < r.Dy(); y++ {
		for x := 0; x < r.Dx(); x++ {
			if mask.AlphaAt(x, y).A < Threshold {
				continue
			}
			p := image.Pt(r.Min.X+x, r.Min.Y+y)
			dst.Set(p.X, p.Y, c)
			painted = painted.Union(image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))})
		}
	}
	return painted
}

// Line strokes the segment from a to b with the given width and butt
// ends. The band spans width pixels across the segment, starting width/2
// pixels before it toward -x (or -y for horizontal lines). A zero-length
// segment paints a width-sized square.
func (f *Filler) Line(dst draw.Image, a, b image.Point, width int, c color.Color) image.Rectangle {
	if width < 1 {
		width = 1
	}
	lo, hi := -float64(width/2), float64(width-width/2)
	ax, ay := float64(a.X), float64(a.Y)
	bx, by := float64(b.X), float64(b.Y)

	dx, dy := bx-ax, by-ay
	length := math.Hypot(dx, dy)
	if length == 0 {
		return f.Polygon(dst, []Point{
			{ax + lo, ay + lo},
			{ax + hi, ay + lo},
			{ax + hi, ay + hi},
			{ax + lo, ay + hi},
		}, c)
	}

	// Unit normal, oriented toward +x, or +y for horizontal segments.
	ux, uy := -dy/length, dx/length
	if ux < 0 || (ux == 0 && uy < 0) {
		ux, uy = -ux, -uy
	}
	return f.Polygon(dst, []Point{
		{ax + ux*lo, ay + uy*lo},
		{bx + ux*lo, by + uy*lo},
		{bx + ux*hi, by + uy*hi},
		{ax + ux*hi, ay + uy*hi},
	}, c)
}

// coverage draws the accumulated path into a mask of r's size.
func (f *Filler) coverage(r image.Rectangle) *image.Alpha {
	size := image.Rect(0, 0, r.Dx(), r.Dy())
	if f.mask == nil || !f.mask.Rect.Eq(size) {
		f.mask = image.NewAlpha(size)
	} else {
		clear(f.mask.Pix)
	}
	f.z.Draw(f.mask, size, image.Opaque, image.Point{})
	return f.mask
}

// bounds returns the pixel rectangle enclosing pts.
func bounds(pts []Point) image.Rectangle {
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	)
}

// IntPoints converts integer vertices.
func IntPoints(pts []image.Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = Point{float64(p.X), float64(p.Y)}
	}
	return out
}
