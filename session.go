package inkgrid

import (
	"fmt"
	"image"
)

// OutcomeKind classifies what one event did to the panel.
type OutcomeKind uint8

const (
	// OutcomeIgnored means the event only changed state.
	OutcomeIgnored OutcomeKind = iota
	// OutcomeBuffered means a sample was recorded without drawing.
	OutcomeBuffered
	// OutcomeDrawn means a segment was rasterized and refreshed.
	OutcomeDrawn
	// OutcomeTap means the event should be handled as a tap at Outcome.At.
	OutcomeTap
	// OutcomeAbandoned means an off-canvas draw ended the stroke.
	OutcomeAbandoned
)

// String returns the outcome name.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeBuffered:
		return "buffered"
	case OutcomeDrawn:
		return "drawn"
	case OutcomeTap:
		return "tap"
	case OutcomeAbandoned:
		return "abandoned"
	default:
		return fmt.Sprintf("outcome(%d)", uint8(k))
	}
}

// Outcome is the result of Session.HandleEvent.
type Outcome struct {
	Kind OutcomeKind

	// At is the tap position for OutcomeTap.
	At Point

	// Region is the refreshed rectangle for OutcomeDrawn. It may be empty
	// when the segment was completely masked off the grid.
	Region image.Rectangle

	// Written is the number of pixels inked for OutcomeDrawn.
	Written int
}

// Session is one drawing session: the tracker state, the tessellator and
// the masked rasterizer feeding the refresh scheduler. It replaces any
// global stroke state; callers own it and pass every event through it.
//
// Session is not safe for concurrent use. The board it masks against may
// be replaced concurrently.
type Session struct {
	layout  Layout
	tracker *Tracker
	tess    Tessellator
	raster  *Rasterizer
	sched   *Scheduler
	display Display
}

// NewSession creates a session drawing onto display and masking against
// board.
func NewSession(board *Board, display Display, opts ...Option) *Session {
	o := buildOptions(opts)
	return &Session{
		layout:  o.layout,
		tracker: NewTracker(o.layout, o.hoverThreshold),
		tess:    o.tess,
		raster:  NewRasterizer(o.layout, board, o.steps),
		sched:   NewScheduler(display),
		display: display,
	}
}

// Layout returns the session geometry.
func (s *Session) Layout() Layout {
	return s.layout
}

// State returns the current instrument state.
func (s *Session) State() InstrumentState {
	return s.tracker.State()
}

// HistoryLen returns the number of samples buffered for the current stroke.
func (s *Session) HistoryLen() int {
	return s.tracker.HistoryLen()
}

// Scheduler returns the refresh scheduler shared with the puzzle lifecycle.
func (s *Session) Scheduler() *Scheduler {
	return s.sched
}

// HandleEvent runs one digitizer event through the pipeline. Strokes are
// rasterized and refreshed to completion before it returns.
func (s *Session) HandleEvent(ev Event) Outcome {
	res := s.tracker.Handle(ev)

	switch res.Action {
	case ActionBuffered:
		return Outcome{Kind: OutcomeBuffered}
	case ActionTap:
		return Outcome{Kind: OutcomeTap, At: res.At}
	case ActionAbandoned:
		return Outcome{Kind: OutcomeAbandoned}
	case ActionSegment:
		return s.drawSegment(res)
	default:
		return Outcome{Kind: OutcomeIgnored}
	}
}

func (s *Session) drawSegment(res Result) Outcome {
	stroke := s.tess.Tessellate(res.Window, res.State)

	region, written := s.raster.Rasterize(stroke.Curve, func(p image.Point) {
		s.display.WritePixel(p, stroke.Ink)
	})
	s.sched.Stroke(region)

	Logger().Debug("inkgrid: segment",
		"stroke", res.StrokeID,
		"ink", stroke.Ink.String(),
		"region", region.String(),
		"written", written)

	return Outcome{Kind: OutcomeDrawn, Region: region, Written: written}
}
