package text

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/inkgrid/internal/raster"
)

// ErrEmptyFont is returned by Parse for empty font data.
var ErrEmptyFont = errors.New("text: empty font data")

// Face is a parsed font usable at any pixel size.
// Face is safe for concurrent use.
type Face struct {
	font   *opentype.Font
	shaper *shaper

	mu    sync.Mutex
	sized map[float64]font.Face
}

// Parse parses TrueType or OpenType font data.
func Parse(data []byte) (*Face, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFont
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	sh, err := newShaper(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to load font for shaping: %w", err)
	}
	return &Face{font: f, shaper: sh, sized: make(map[float64]font.Face)}, nil
}

var defaultFace = sync.OnceValue(func() *Face {
	f, err := Parse(goregular.TTF)
	if err != nil {
		panic(err)
	}
	return f
})

// Default returns the shared Go Regular face.
func Default() *Face {
	return defaultFace()
}

// at returns the x/image face for size pixels. f.mu must be held.
func (f *Face) at(size float64) (font.Face, error) {
	if ff, ok := f.sized[size]; ok {
		return ff, nil
	}
	ff, err := opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("text: failed to size face: %w", err)
	}
	f.sized[size] = ff
	return ff, nil
}

// Metrics returns the ascent and descent at size pixels.
func (f *Face) Metrics(size float64) (ascent, descent float64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ff, err := f.at(size)
	if err != nil {
		return 0, 0
	}
	m := ff.Metrics()
	return fixedToFloat(m.Ascent), fixedToFloat(m.Descent)
}

// Measure returns the advance width of s and the line height at size
// pixels.
func (f *Face) Measure(s string, size float64) (w, h float64) {
	ascent, descent := f.Metrics(size)
	if s == "" {
		return 0, ascent + descent
	}
	return f.shaper.advance(s, size, BaseDirection(s)), ascent + descent
}

// Draw draws s with its baseline origin at (x, y) and returns the
// rectangle covered by its glyph boxes, clipped to dst. Pixels at least
// half covered by a glyph are set to c.
func (f *Face) Draw(dst draw.Image, s string, size, x, y float64, c color.Color) image.Rectangle {
	if s == "" {
		return image.Rectangle{}
	}
	s = Visual(s)

	f.mu.Lock()
	defer f.mu.Unlock()

	ff, err := f.at(size)
	if err != nil {
		return image.Rectangle{}
	}

	ix, iy := math.Floor(x), math.Floor(y)
	dot := fixed.Point26_6{X: floatToFixed(x - ix), Y: floatToFixed(y - iy)}
	gb, _ := font.BoundString(ff, s)
	local := image.Rect(
		(gb.Min.X + dot.X).Floor(), (gb.Min.Y + dot.Y).Floor(),
		(gb.Max.X + dot.X).Ceil(), (gb.Max.Y + dot.Y).Ceil(),
	)
	origin := image.Pt(int(ix), int(iy))
	r := local.Add(origin).Intersect(dst.Bounds())
	if r.Empty() {
		return image.Rectangle{}
	}

	mask := image.NewAlpha(local)
	d := font.Drawer{Dst: mask, Src: image.Opaque, Face: ff, Dot: dot}
	d.DrawString(s)

	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			if mask.AlphaAt(px-origin.X, py-origin.Y).A >= raster.Threshold {
				dst.Set(px, py, c)
			}
		}
	}
	return r
}

// floatToFixed converts a float64 to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
