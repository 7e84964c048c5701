package inkgrid

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
)

// EventSource delivers digitizer events in arrival order. Next blocks until
// an event is available and returns io.EOF once the source is exhausted.
type EventSource interface {
	Next(ctx context.Context) (Event, error)
}

// Positions of the reference UI buttons.
var (
	closeButtonAt    = image.Pt(30, 50)
	clearButtonAt    = image.Pt(1142, 50)
	generateButtonAt = image.Pt(1252, 50)
)

// App is the outer event loop: it feeds events to the drawing session,
// resolves taps against the widgets and drives the puzzle lifecycle.
//
// App is not safe for concurrent use; Run is the single consumer.
type App struct {
	board     *Board
	display   Display
	session   *Session
	lifecycle *Lifecycle
	widgets   *Widgets
	stopped   bool
}

// NewApp wires a session, a lifecycle and the Close, Clear and Generate
// buttons around board and display.
func NewApp(board *Board, display Display, engine Engine, opts ...Option) *App {
	s := NewSession(board, display, opts...)
	a := &App{
		board:     board,
		display:   display,
		session:   s,
		lifecycle: NewLifecycle(s.Layout(), board, display, s.Scheduler(), engine),
		widgets:   &Widgets{},
	}

	a.widgets.Add(Button(display, "exit", "Close", closeButtonAt, func() error {
		a.Stop()
		return nil
	}))
	a.widgets.Add(Button(display, "retry", "Clear", clearButtonAt, a.lifecycle.Clear))
	a.widgets.Add(Button(display, "regenerate", "Generate", generateButtonAt, a.lifecycle.Generate))
	return a
}

// Session returns the drawing session.
func (a *App) Session() *Session { return a.session }

// Lifecycle returns the puzzle lifecycle.
func (a *App) Lifecycle() *Lifecycle { return a.lifecycle }

// Widgets returns the widget registry.
func (a *App) Widgets() *Widgets { return a.widgets }

// Stop makes Run return after the current event.
func (a *App) Stop() { a.stopped = true }

// Stopped reports whether Stop was called.
func (a *App) Stopped() bool { return a.stopped }

// Start draws the buttons and generates the first puzzle. Drawing must not
// begin before Start has returned successfully.
func (a *App) Start() error {
	var painted image.Rectangle
	for _, wd := range a.widgets.All() {
		painted = painted.Union(DrawButton(a.display, wd))
	}
	a.session.Scheduler().Full(painted)

	if err := a.lifecycle.Generate(); err != nil {
		return fmt.Errorf("inkgrid: first puzzle: %w", err)
	}
	return nil
}

// Dispatch handles one event. Taps invoke the callback of the widget under
// the tap exactly once; a callback error is returned to the caller.
func (a *App) Dispatch(ev Event) (Outcome, error) {
	o := a.session.HandleEvent(ev)
	if o.Kind != OutcomeTap {
		return o, nil
	}

	wd, ok := a.widgets.Find(o.At.Image())
	if !ok || wd.OnTap == nil {
		return o, nil
	}
	Logger().Debug("inkgrid: tap", "widget", wd.Name, "at", o.At.Image().String())
	if err := wd.OnTap(); err != nil {
		return o, fmt.Errorf("inkgrid: widget %s: %w", wd.Name, err)
	}
	return o, nil
}

// Run processes events from src until it is exhausted, ctx is done, or the
// Close button is tapped. Widget errors are logged and do not stop the loop.
func (a *App) Run(ctx context.Context, src EventSource) error {
	for !a.stopped {
		if err := ctx.Err(); err != nil {
			return err
		}

		ev, err := src.Next(ctx)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("inkgrid: reading events: %w", err)
		}

		if _, err := a.Dispatch(ev); err != nil {
			Logger().Error("inkgrid: dispatch failed", "err", err)
		}
	}
	return nil
}
