package inkgrid

import (
	"testing"
)

func drawStroke(s *Session, from, to Point, n, pressure int) []Outcome {
	var out []Outcome
	for i := 0; i < n; i++ {
		p := from.Lerp(to, float64(i)/float64(n-1))
		out = append(out, s.HandleEvent(Draw{Pos: p, Pressure: pressure}))
	}
	return out
}

func TestSession_StrokeOverEmptyCell(t *testing.T) {
	d := newFakeDisplay()
	s := NewSession(loadedBoard(t, nil), d)

	out := drawStroke(s, Pt(150, 160), Pt(220, 200), 8, 1500)

	if out[0].Kind != OutcomeBuffered || out[1].Kind != OutcomeBuffered {
		t.Fatalf("first two samples: %v, %v", out[0].Kind, out[1].Kind)
	}
	drawn := 0
	for _, o := range out[2:] {
		if o.Kind != OutcomeDrawn {
			t.Fatalf("Kind = %v, want drawn", o.Kind)
		}
		drawn++
	}

	refreshes := d.refreshLog()
	if len(refreshes) != drawn {
		t.Fatalf("%d refreshes for %d segments", len(refreshes), drawn)
	}
	for i, r := range refreshes {
		if r.Wait || r.Waveform != WaveformDU {
			t.Errorf("refresh %d is not fast async: %+v", i, r)
		}
		if r.Region != out[i+2].Region {
			t.Errorf("refresh %d region %v, want segment region %v", i, r.Region, out[i+2].Region)
		}
	}
	if d.written() == 0 {
		t.Error("no pixels written")
	}
	for p, c := range d.pixels {
		if c != Black {
			t.Fatalf("pixel %v has ink %v, want black", p, c)
		}
	}
}

func TestSession_StrokeOverGivenCell(t *testing.T) {
	d := newFakeDisplay()
	s := NewSession(loadedBoard(t, map[int]uint8{0: 4}), d)

	out := drawStroke(s, Pt(150, 160), Pt(220, 200), 8, 2048)

	if d.written() != 0 {
		t.Errorf("wrote %d pixels over a given digit", d.written())
	}
	for _, o := range out[2:] {
		if o.Kind != OutcomeDrawn || o.Written != 0 {
			t.Errorf("outcome = %+v, want drawn with zero writes", o)
		}
	}
}

func TestSession_EraserPaintsInverse(t *testing.T) {
	d := newFakeDisplay()
	s := NewSession(loadedBoard(t, nil), d)

	s.HandleEvent(InstrumentChange{Nib: NibEraser, State: true})
	drawStroke(s, Pt(600, 600), Pt(640, 620), 4, 1024)

	if d.written() == 0 {
		t.Fatal("eraser wrote nothing")
	}
	for p, c := range d.pixels {
		if c != White {
			t.Fatalf("pixel %v has ink %v, want white", p, c)
		}
	}
}

func TestSession_TapThrough(t *testing.T) {
	d := newFakeDisplay()
	s := NewSession(loadedBoard(t, nil), d)

	s.HandleEvent(Hover{Pos: Pt(40, 60), Distance: 30})
	o := s.HandleEvent(Draw{Pos: Pt(40, 60), Pressure: 900})

	if o.Kind != OutcomeTap || o.At != Pt(40, 60) {
		t.Fatalf("outcome = %+v, want tap at (40, 60)", o)
	}
	if d.written() != 0 || len(d.refreshLog()) != 0 {
		t.Errorf("tap touched the panel: %d pixels, %d refreshes", d.written(), len(d.refreshLog()))
	}
}

func TestSession_IgnoresOtherEvents(t *testing.T) {
	s := NewSession(loadedBoard(t, nil), newFakeDisplay())
	if o := s.HandleEvent(Other{Kind: "button"}); o.Kind != OutcomeIgnored {
		t.Errorf("Kind = %v, want ignored", o.Kind)
	}
	if o := s.HandleEvent(Draw{Pos: Pt(5, 5)}); o.Kind != OutcomeAbandoned {
		t.Errorf("Kind = %v, want abandoned", o.Kind)
	}
}

func TestSession_Options(t *testing.T) {
	l := DefaultLayout()
	l.Cell = 100
	s := NewSession(NewBoard(), newFakeDisplay(),
		WithLayout(l),
		WithPenWidth(5),
		WithEraserWidth(40),
		WithPressureMax(4096),
		WithPressureMax(-1),
		WithHoverThreshold(4),
		WithSteps(20),
		WithPenInk(White),
	)

	if s.Layout().Cell != 100 {
		t.Errorf("layout cell = %d", s.Layout().Cell)
	}
	want := Tessellator{PenWidth: 5, EraserWidth: 40, PressureMax: 4096, PenInk: White}
	if s.tess != want {
		t.Errorf("tessellator = %+v, want %+v", s.tess, want)
	}
	if s.tracker.hoverThreshold != 4 {
		t.Errorf("hover threshold = %d", s.tracker.hoverThreshold)
	}
	if s.raster.steps != 20 {
		t.Errorf("steps = %d", s.raster.steps)
	}

	// A hover of 3 is below the custom threshold and keeps the stroke.
	s.HandleEvent(Hover{Distance: 3})
	if s.State().HoverExit {
		t.Error("hover below threshold armed tap-through")
	}
}

func TestOutcomeKind_String(t *testing.T) {
	names := map[OutcomeKind]string{
		OutcomeIgnored:   "ignored",
		OutcomeBuffered:  "buffered",
		OutcomeDrawn:     "drawn",
		OutcomeTap:       "tap",
		OutcomeAbandoned: "abandoned",
		OutcomeKind(42):  "outcome(42)",
	}
	for k, want := range names {
		if k.String() != want {
			t.Errorf("%d.String() = %q, want %q", k, k.String(), want)
		}
	}
}
