// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"image/color"
	"testing"
)

func newGray(w, h int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	return img
}

func black(img *image.Gray) map[image.Point]bool {
	out := map[image.Point]bool{}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.GrayAt(x, y).Y == 0 {
				out[image.Pt(x, y)] = true
			}
		}
	}
	return out
}

func TestFiller_PolygonRectangle(t *testing.T) {
	img := newGray(20, 20)
	f := NewFiller()

	got := f.Polygon(img, IntPoints([]image.Point{{2, 3}, {8, 3}, {8, 7}, {2, 7}}), color.Black)

	want := image.Rect(2, 3, 8, 7)
	if got != want {
		t.Errorf("painted = %v, want %v", got, want)
	}
	ink := black(img)
	if len(ink) != want.Dx()*want.Dy() {
		t.Errorf("painted %d pixels, want %d", len(ink), want.Dx()*want.Dy())
	}
	for p := range ink {
		if !p.In(want) {
			t.Errorf("pixel %v outside %v", p, want)
		}
	}
}

func TestFiller_PolygonClipped(t *testing.T) {
	img := newGray(10, 10)
	f := NewFiller()

	got := f.Polygon(img, IntPoints([]image.Point{{-5, -5}, {5, -5}, {5, 5}, {-5, 5}}), color.Black)
	if want := image.Rect(0, 0, 5, 5); got != want {
		t.Errorf("painted = %v, want %v", got, want)
	}

	got = f.Polygon(img, IntPoints([]image.Point{{20, 20}, {30, 20}, {30, 30}}), color.Black)
	if !got.Empty() {
		t.Errorf("off-image polygon painted %v", got)
	}
}

func TestFiller_PolygonDegenerate(t *testing.T) {
	img := newGray(10, 10)
	if got := NewFiller().Polygon(img, []Point{{1, 1}, {5, 5}}, color.Black); !got.Empty() {
		t.Errorf("two-vertex polygon painted %v", got)
	}
}

func TestFiller_LineWidths(t *testing.T) {
	tests := []struct {
		name  string
		a, b  image.Point
		width int
		want  image.Rectangle
	}{
		{"vertical width 1", image.Pt(5, 2), image.Pt(5, 12), 1, image.Rect(5, 2, 6, 12)},
		{"vertical width 2", image.Pt(5, 2), image.Pt(5, 12), 2, image.Rect(4, 2, 6, 12)},
		{"horizontal width 4", image.Pt(2, 8), image.Pt(14, 8), 4, image.Rect(2, 6, 14, 10)},
		{"zero width clamps", image.Pt(3, 3), image.Pt(3, 9), 0, image.Rect(3, 3, 4, 9)},
		{"point", image.Pt(7, 7), image.Pt(7, 7), 2, image.Rect(6, 6, 8, 8)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := newGray(20, 20)
			got := NewFiller().Line(img, tt.a, tt.b, tt.width, color.Black)
			if got != tt.want {
				t.Errorf("painted = %v, want %v", got, tt.want)
			}
			if n := len(black(img)); n != tt.want.Dx()*tt.want.Dy() {
				t.Errorf("painted %d pixels, want %d", n, tt.want.Dx()*tt.want.Dy())
			}
		})
	}
}

func TestFiller_ReusesMask(t *testing.T) {
	img := newGray(20, 20)
	f := NewFiller()
	f.Line(img, image.Pt(0, 0), image.Pt(0, 10), 2, color.Black)

	img2 := newGray(20, 20)
	got := f.Line(img2, image.Pt(10, 0), image.Pt(10, 10), 2, color.Black)
	if want := image.Rect(9, 0, 11, 10); got != want {
		t.Errorf("second line painted %v, want %v", got, want)
	}
}
