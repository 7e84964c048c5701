// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/inkgrid"
)

func countInk(img *image.Gray) int {
	n := 0
	for _, v := range img.Pix {
		if v == 0 {
			n++
		}
	}
	return n
}

func TestNewImageSurface(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		want          image.Rectangle
	}{
		{"panel", 1404, 1872, image.Rect(0, 0, 1404, 1872)},
		{"zero clamps", 0, -3, image.Rect(0, 0, 1, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewImageSurface(tt.width, tt.height)
			if s.Bounds() != tt.want {
				t.Errorf("Bounds = %v, want %v", s.Bounds(), tt.want)
			}
			if n := countInk(s.Snapshot()); n != 0 {
				t.Errorf("new surface has %d ink pixels", n)
			}
		})
	}
}

func TestImageSurface_WritePixel(t *testing.T) {
	s := NewImageSurface(10, 10)
	s.WritePixel(image.Pt(3, 4), inkgrid.Black)
	s.WritePixel(image.Pt(-1, 4), inkgrid.Black)
	s.WritePixel(image.Pt(10, 10), inkgrid.Black)

	if s.At(image.Pt(3, 4)) != inkgrid.Black {
		t.Error("pixel not inked")
	}
	if s.At(image.Pt(50, 50)) != inkgrid.White {
		t.Error("out of range reads as ink")
	}
	if n := countInk(s.Snapshot()); n != 1 {
		t.Errorf("%d ink pixels, want 1", n)
	}

	s.WritePixel(image.Pt(3, 4), inkgrid.White)
	if s.At(image.Pt(3, 4)) != inkgrid.White {
		t.Error("white ink did not erase")
	}
}

func TestImageSurface_Shapes(t *testing.T) {
	s := NewImageSurface(100, 100)
	s.FillPolygon([]image.Point{{10, 10}, {20, 10}, {20, 20}, {10, 20}}, inkgrid.Black)
	if n := countInk(s.Snapshot()); n != 100 {
		t.Errorf("square painted %d pixels, want 100", n)
	}

	s.FillPolygon([]image.Point{{0, 0}, {100, 0}, {100, 100}, {0, 100}}, inkgrid.White)
	if n := countInk(s.Snapshot()); n != 0 {
		t.Errorf("white fill left %d pixels", n)
	}

	s.DrawLine(image.Pt(50, 0), image.Pt(50, 100), 4, inkgrid.Black)
	if n := countInk(s.Snapshot()); n != 400 {
		t.Errorf("line painted %d pixels, want 400", n)
	}
}

func TestImageSurface_Text(t *testing.T) {
	s := NewImageSurface(400, 200)
	w, h := s.MeasureText("Close", 35)
	if w <= 0 || h <= 0 {
		t.Fatalf("MeasureText = %v x %v", w, h)
	}

	r := s.DrawText(inkgrid.Pt(20, 100), "Close", 35, inkgrid.Black)
	if r.Empty() {
		t.Fatal("DrawText painted nothing")
	}
	if float64(r.Dx()) > w+10 {
		t.Errorf("drawn width %d far exceeds measured %v", r.Dx(), w)
	}
	if countInk(s.Snapshot()) == 0 {
		t.Error("no ink after DrawText")
	}
}

func TestImageSurface_Refresh(t *testing.T) {
	s := NewImageSurface(10, 10)
	want := []inkgrid.Refresh{
		inkgrid.StrokeRefresh(image.Rect(1, 1, 3, 3)),
		inkgrid.FullRefresh(image.Rect(0, 0, 10, 10)),
	}
	for _, r := range want {
		if err := s.Refresh(r); err != nil {
			t.Fatalf("Refresh: %v", err)
		}
	}
	if diff := cmp.Diff(want, s.Refreshes()); diff != "" {
		t.Errorf("refreshes mismatch (-want +got):\n%s", diff)
	}

	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if err := s.Refresh(want[0]); !errors.Is(err, ErrClosed) {
		t.Errorf("Refresh after Close err = %v, want ErrClosed", err)
	}
}

func TestImageSurface_PNG(t *testing.T) {
	s := NewImageSurface(8, 6)
	s.WritePixel(image.Pt(2, 2), inkgrid.Black)

	var buf bytes.Buffer
	if err := s.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds() != s.Bounds() {
		t.Errorf("decoded bounds %v", img.Bounds())
	}
	if inkgrid.InkOf(img.At(2, 2)) != inkgrid.Black {
		t.Error("ink lost in PNG")
	}

	path := filepath.Join(t.TempDir(), "grid.png")
	if err := s.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	if err := s.SavePNG(filepath.Join(t.TempDir(), "missing", "grid.png")); err == nil {
		t.Error("SavePNG into a missing directory succeeded")
	}
}
