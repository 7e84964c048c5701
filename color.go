package inkgrid

import "image/color"

// Ink is one of the two colors a monochrome panel can hold.
type Ink uint8

const (
	// Black is the marking color.
	Black Ink = iota
	// White is the paper color.
	White
)

// Invert returns the other color. The eraser end of the stylus paints the
// inverse of the pen ink; there is no per-pixel background to restore.
func (i Ink) Invert() Ink {
	if i == White {
		return Black
	}
	return White
}

// Gray converts the ink to its 8-bit gray level.
func (i Ink) Gray() color.Gray {
	if i == White {
		return color.Gray{Y: 0xff}
	}
	return color.Gray{Y: 0}
}

// RGBA implements color.Color.
func (i Ink) RGBA() (r, g, b, a uint32) {
	return i.Gray().RGBA()
}

// String returns the ink name.
func (i Ink) String() string {
	if i == White {
		return "white"
	}
	return "black"
}

// InkOf returns the ink closest to c: White for luminance of at least half,
// Black otherwise.
func InkOf(c color.Color) Ink {
	if color.GrayModel.Convert(c).(color.Gray).Y >= 0x80 {
		return White
	}
	return Black
}
