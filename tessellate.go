package inkgrid

// Nib multipliers and pressure scale of the reference stylus.
const (
	// DefaultPenWidth is the width multiplier of the writing tip.
	DefaultPenWidth = 3
	// DefaultEraserWidth is the width multiplier of the eraser end, roughly
	// the size of the rubber.
	DefaultEraserWidth = 50
	// DefaultPressureMax is the full-scale pressure the digitizer reports.
	DefaultPressureMax = 2048
)

// Stroke is one tessellated segment ready to rasterize.
type Stroke struct {
	Curve WidthQuad
	Ink   Ink
}

// Tessellator turns a window of three samples into a smooth
// variable-width quadratic segment.
type Tessellator struct {
	PenWidth    float64
	EraserWidth float64
	PressureMax int
	PenInk      Ink
}

// DefaultTessellator returns a tessellator with the reference nib sizes.
func DefaultTessellator() Tessellator {
	return Tessellator{
		PenWidth:    DefaultPenWidth,
		EraserWidth: DefaultEraserWidth,
		PressureMax: DefaultPressureMax,
		PenInk:      Black,
	}
}

// Multiplier returns the nib width multiplier for the instrument state.
func (t Tessellator) Multiplier(st InstrumentState) float64 {
	if st.Eraser {
		return t.EraserWidth
	}
	return t.PenWidth
}

// Ink returns the color the instrument paints with. The eraser paints the
// inverse of the pen ink.
func (t Tessellator) Ink(st InstrumentState) Ink {
	if st.Eraser {
		return t.PenInk.Invert()
	}
	return t.PenInk
}

// Radius returns the stroke radius contributed by one sample.
func (t Tessellator) Radius(s Sample, st InstrumentState) float64 {
	return (t.Multiplier(st) * float64(s.Pressure) / float64(t.PressureMax)) / 2
}

// Tessellate builds the segment for window w, given oldest first.
//
// The segment's anchors are the midpoints between consecutive samples and
// its control point is the middle sample, so consecutive segments join
// smoothly without keeping the whole stroke. The segment runs from the
// newest midpoint to the oldest one.
func (t Tessellator) Tessellate(w [historyCap]Sample, st InstrumentState) Stroke {
	r0 := t.Radius(w[0], st)
	r1 := t.Radius(w[1], st)
	r2 := t.Radius(w[2], st)

	return Stroke{
		Curve: WidthQuad{
			QuadBez: NewQuadBez(
				w[2].Pos.Midpoint(w[1].Pos),
				w[1].Pos,
				w[1].Pos.Midpoint(w[0].Pos),
			),
			W0: r2 + r1,
			W1: 2 * r1,
			W2: r1 + r0,
		},
		Ink: t.Ink(st),
	}
}
