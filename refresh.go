package inkgrid

import (
	"fmt"
	"image"
)

// Waveform selects how the e-ink controller drives the pixels of a refresh.
type Waveform uint8

const (
	// WaveformDU is the fast direct-update waveform: two levels, no
	// dithering, suited to incremental ink.
	WaveformDU Waveform = iota
	// WaveformGC16Fast is the full-fidelity sixteen-level waveform used for
	// whole-grid repaints.
	WaveformGC16Fast
)

// String returns the waveform name.
func (w Waveform) String() string {
	switch w {
	case WaveformDU:
		return "du"
	case WaveformGC16Fast:
		return "gc16-fast"
	default:
		return fmt.Sprintf("waveform(%d)", uint8(w))
	}
}

// Refresh is one partial panel update request.
type Refresh struct {
	// Region is the panel rectangle to update.
	Region image.Rectangle

	// Wait makes the call block until the panel has physically updated.
	// Without it the update is fire-and-forget.
	Wait bool

	Waveform Waveform

	// Dither enables grayscale dithering.
	Dither bool

	// Monochrome quantizes the update to two levels.
	Monochrome bool
}

// StrokeRefresh returns the fast asynchronous refresh used after each
// rasterized segment.
func StrokeRefresh(r image.Rectangle) Refresh {
	return Refresh{Region: r, Waveform: WaveformDU, Monochrome: true}
}

// FullRefresh returns the slow synchronous refresh used for whole-grid
// repaints.
func FullRefresh(r image.Rectangle) Refresh {
	return Refresh{Region: r, Wait: true, Waveform: WaveformGC16Fast, Dither: true}
}

// Display is the panel driver the pipeline draws through.
type Display interface {
	// Bounds returns the panel rectangle.
	Bounds() image.Rectangle

	// WritePixel sets one pixel in the framebuffer without refreshing.
	WritePixel(p image.Point, c Ink)

	// Refresh pushes a region of the framebuffer to the panel.
	Refresh(r Refresh) error

	// DrawLine draws a straight line of the given thickness centered on
	// the segment from a to b.
	DrawLine(a, b image.Point, width int, c Ink)

	// FillPolygon fills the closed polygon pts.
	FillPolygon(pts []image.Point, c Ink)

	// DrawText draws s with its baseline origin at at and returns the
	// bounding rectangle of the drawn glyphs.
	DrawText(at Point, s string, size float64, c Ink) image.Rectangle

	// MeasureText returns the advance width and line height of s.
	MeasureText(s string, size float64) (w, h float64)
}

// Scheduler issues panel refreshes for the pipeline.
type Scheduler struct {
	display Display
}

// NewScheduler creates a scheduler refreshing d.
func NewScheduler(d Display) *Scheduler {
	return &Scheduler{display: d}
}

// Stroke requests a fast, non-blocking update of exactly r. Empty
// rectangles are skipped.
func (s *Scheduler) Stroke(r image.Rectangle) {
	if r.Empty() {
		return
	}
	s.issue(StrokeRefresh(r))
}

// Full performs a full-fidelity update of r and blocks until the panel
// confirms it.
func (s *Scheduler) Full(r image.Rectangle) {
	if r.Empty() {
		return
	}
	s.issue(FullRefresh(r))
}

func (s *Scheduler) issue(r Refresh) {
	if err := s.display.Refresh(r); err != nil {
		Logger().Warn("inkgrid: panel refresh failed",
			"region", r.Region.String(), "waveform", r.Waveform.String(), "err", err)
	}
}
