// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"sync"

	"github.com/gogpu/inkgrid"
	"github.com/gogpu/inkgrid/internal/raster"
	"github.com/gogpu/inkgrid/text"
)

// ImageSurface is a CPU framebuffer panel backed by an *image.Gray.
//
// Example:
//
//	s := surface.NewImageSurface(1404, 1872)
//	defer s.Close()
//
//	s.WritePixel(image.Pt(10, 10), inkgrid.Black)
//	s.Refresh(inkgrid.StrokeRefresh(image.Rect(10, 10, 11, 11)))
//
//	img := s.Snapshot()
//
// ImageSurface is safe for concurrent use.
type ImageSurface struct {
	mu sync.Mutex

	img    *image.Gray
	filler *raster.Filler
	face   *text.Face

	refreshes []inkgrid.Refresh
	closed    bool
}

// NewImageSurface creates a white panel with the given dimensions.
func NewImageSurface(width, height int) *ImageSurface {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}

	img := image.NewGray(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	return NewImageSurfaceFromImage(img)
}

// NewImageSurfaceFromImage creates a panel drawing into img directly.
func NewImageSurfaceFromImage(img *image.Gray) *ImageSurface {
	return &ImageSurface{
		img:    img,
		filler: raster.NewFiller(),
		face:   text.Default(),
	}
}

// SetFace replaces the face used for text.
func (s *ImageSurface) SetFace(f *text.Face) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.face = f
}

// Bounds returns the panel rectangle.
func (s *ImageSurface) Bounds() image.Rectangle {
	return s.img.Bounds()
}

// WritePixel sets one pixel. Points outside the panel are ignored.
func (s *ImageSurface) WritePixel(p image.Point, c inkgrid.Ink) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !p.In(s.img.Rect) {
		return
	}
	s.img.SetGray(p.X, p.Y, c.Gray())
}

// At returns the ink at p. Points outside the panel read as white.
func (s *ImageSurface) At(p image.Point) inkgrid.Ink {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !p.In(s.img.Rect) {
		return inkgrid.White
	}
	return inkgrid.InkOf(s.img.GrayAt(p.X, p.Y))
}

// Refresh records r. The framebuffer is always current, so there is
// nothing to wait for.
func (s *ImageSurface) Refresh(r inkgrid.Refresh) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.refreshes = append(s.refreshes, r)
	return nil
}

// Refreshes returns the refreshes requested so far.
func (s *ImageSurface) Refreshes() []inkgrid.Refresh {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]inkgrid.Refresh(nil), s.refreshes...)
}

// DrawLine strokes a line of the given width.
func (s *ImageSurface) DrawLine(a, b image.Point, width int, c inkgrid.Ink) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filler.Line(s.img, a, b, width, c)
}

// FillPolygon fills a closed polygon.
func (s *ImageSurface) FillPolygon(pts []image.Point, c inkgrid.Ink) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filler.Polygon(s.img, raster.IntPoints(pts), c)
}

// DrawText draws str with its baseline origin at at.
func (s *ImageSurface) DrawText(at inkgrid.Point, str string, size float64, c inkgrid.Ink) image.Rectangle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.face.Draw(s.img, str, size, at.X, at.Y, c)
}

// MeasureText returns the advance width and line height of str.
func (s *ImageSurface) MeasureText(str string, size float64) (w, h float64) {
	s.mu.Lock()
	face := s.face
	s.mu.Unlock()
	return face.Measure(str, size)
}

// Snapshot returns a copy of the framebuffer.
func (s *ImageSurface) Snapshot() *image.Gray {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := image.NewGray(s.img.Rect)
	copy(out.Pix, s.img.Pix)
	return out
}

// EncodePNG writes the framebuffer to w as PNG.
func (s *ImageSurface) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, s.Snapshot()); err != nil {
		return fmt.Errorf("surface: failed to encode png: %w", err)
	}
	return nil
}

// SavePNG writes the framebuffer to the named file.
func (s *ImageSurface) SavePNG(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("surface: failed to create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()
	return s.EncodePNG(f)
}

// Close marks the surface closed. Further refreshes fail with ErrClosed.
func (s *ImageSurface) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// view runs fn with the framebuffer locked.
func (s *ImageSurface) view(fn func(img *image.Gray)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.img)
}

var _ inkgrid.Display = (*ImageSurface)(nil)
