package inkgrid

import (
	"fmt"

	"github.com/google/uuid"
)

// Event is a digitizer event. The concrete types are Draw,
// InstrumentChange, Hover and Other.
type Event interface {
	isEvent()
}

// Draw reports the stylus position and pressure while it touches the panel.
type Draw struct {
	Pos      Point
	Pressure int
}

// Nib identifies which tool bit of the digitizer an InstrumentChange is about.
type Nib uint8

const (
	// NibPen is the writing tip coming into or leaving proximity.
	NibPen Nib = iota
	// NibEraser is the eraser end coming into or leaving proximity.
	NibEraser
	// NibTouch is the tip making or breaking contact with the surface.
	NibTouch
	// NibUnknown is any other tool bit; it is ignored.
	NibUnknown
)

// String returns the nib name.
func (n Nib) String() string {
	switch n {
	case NibPen:
		return "pen"
	case NibEraser:
		return "eraser"
	case NibTouch:
		return "touch"
	default:
		return fmt.Sprintf("nib(%d)", uint8(n))
	}
}

// InstrumentChange reports a tool bit changing state.
type InstrumentChange struct {
	Nib   Nib
	State bool
}

// Hover reports the stylus position and height above the surface while it
// is in range but not touching.
type Hover struct {
	Pos      Point
	Distance int
}

// Other is any digitizer event the pipeline does not act on.
type Other struct {
	Kind string
}

func (Draw) isEvent()             {}
func (InstrumentChange) isEvent() {}
func (Hover) isEvent()            {}
func (Other) isEvent()            {}

// InstrumentState is what the tracker knows about the stylus.
type InstrumentState struct {
	// InRange is true while either end of the stylus is in proximity.
	InRange bool
	// Eraser is true when the eraser end is the active one.
	Eraser bool
	// HoverExit is set once the stylus has clearly lifted off the surface.
	// It arms the tap-through path for the next off-canvas Draw.
	HoverExit bool
}

// Action tells the caller what a tracked event amounted to.
type Action uint8

const (
	// ActionNone means the event only changed state, or was ignored.
	ActionNone Action = iota
	// ActionBuffered means a sample was recorded but no segment is ready.
	ActionBuffered
	// ActionSegment means Result.Window holds three samples to tessellate.
	ActionSegment
	// ActionTap means the stroke began off the canvas after a lift and
	// should be treated as a tap at Result.At.
	ActionTap
	// ActionAbandoned means an off-canvas Draw ended the stroke.
	ActionAbandoned
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionBuffered:
		return "buffered"
	case ActionSegment:
		return "segment"
	case ActionTap:
		return "tap"
	case ActionAbandoned:
		return "abandoned"
	default:
		return fmt.Sprintf("action(%d)", uint8(a))
	}
}

// Result is returned by Tracker.Handle.
type Result struct {
	Action Action

	// Window holds the samples oldest first when Action is ActionSegment.
	Window [historyCap]Sample

	// State is the instrument state after the event.
	State InstrumentState

	// At is the tap position when Action is ActionTap.
	At Point

	// StrokeID identifies the stroke the sample belongs to.
	StrokeID string
}

// DefaultHoverThreshold is the hover distance above which the stylus counts
// as lifted. Real contact occasionally reports a distance of one.
const DefaultHoverThreshold = 1

// Tracker turns digitizer events into instrument state and sample windows.
//
// Tracker is not safe for concurrent use; events must be handled one at a
// time in arrival order.
type Tracker struct {
	layout         Layout
	hoverThreshold int

	history  History
	state    InstrumentState
	strokeID string
}

// NewTracker creates a tracker for the given layout.
func NewTracker(layout Layout, hoverThreshold int) *Tracker {
	return &Tracker{layout: layout, hoverThreshold: hoverThreshold}
}

// State returns the current instrument state.
func (t *Tracker) State() InstrumentState {
	return t.state
}

// HistoryLen returns the number of samples buffered for the current stroke.
func (t *Tracker) HistoryLen() int {
	return t.history.Len()
}

// Handle consumes one event and updates state before returning.
func (t *Tracker) Handle(ev Event) Result {
	switch ev := ev.(type) {
	case Draw:
		return t.draw(ev)
	case InstrumentChange:
		t.instrument(ev)
	case Hover:
		if ev.Distance > t.hoverThreshold {
			t.endStroke()
			t.state.HoverExit = true
		}
	}
	return Result{Action: ActionNone, State: t.state}
}

func (t *Tracker) draw(ev Draw) Result {
	if !t.layout.Contains(ev.Pos) {
		t.endStroke()
		if t.state.HoverExit {
			t.state.HoverExit = false
			return Result{Action: ActionTap, State: t.state, At: ev.Pos}
		}
		return Result{Action: ActionAbandoned, State: t.state}
	}

	if t.history.Len() == 0 {
		t.strokeID = uuid.NewString()
	}
	t.history.Push(Sample{Pos: ev.Pos, Pressure: ev.Pressure})

	w, ok := t.history.Window()
	if !ok {
		return Result{Action: ActionBuffered, State: t.state, StrokeID: t.strokeID}
	}
	return Result{Action: ActionSegment, Window: w, State: t.state, StrokeID: t.strokeID}
}

func (t *Tracker) instrument(ev InstrumentChange) {
	switch ev.Nib {
	case NibPen:
		t.state.InRange = ev.State
		t.state.Eraser = false
	case NibEraser:
		t.state.InRange = ev.State
		t.state.Eraser = true
	case NibTouch:
		if !ev.State {
			t.endStroke()
		}
	}
}

func (t *Tracker) endStroke() {
	t.history.Clear()
	t.strokeID = ""
}
