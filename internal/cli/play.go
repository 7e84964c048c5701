// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/inkgrid"
	"github.com/gogpu/inkgrid/internal/replay"
	"github.com/gogpu/inkgrid/surface"
)

type PlayCmd struct {
	// Pressure is the pressure reported for every mouse sample.
	Pressure int `short:"p" default:"1400" help:"Pressure reported for every mouse sample."`
	// Record is an optional JSON-lines file the session is saved to.
	Record string `short:"r" type:"path" help:"JSON-lines file to record the session to."`
}

func (c PlayCmd) Run(g Globals) (err error) {
	// the terminal owns stderr, so only log to a file
	closeLog, err := g.SetupLogging(nil)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closeLog(); err == nil {
			err = closeErr
		}
	}()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.Clear()

	l := inkgrid.DefaultLayout()
	panel := surface.NewTerminalSurface(screen, l.Width, l.Height)
	defer panel.Close()

	mouse := newMouseSource(screen, panel, c.Pressure, g.HoverThreshold+1)
	defer mouse.Close()

	var src inkgrid.EventSource = mouse
	if c.Record != "" {
		f, err := os.Create(c.Record)
		if err != nil {
			return fmt.Errorf("failed to create recording: %w", err)
		}
		defer f.Close()
		src = replay.NewRecorder(mouse, f)
	}

	app := inkgrid.NewApp(inkgrid.NewBoard(), panel, g.Generator(), g.Options()...)
	return run(app, src)
}

// cellMapper maps terminal cells to panel positions.
type cellMapper interface {
	PanelPoint(col, row int) inkgrid.Point
}

// mouseSource turns terminal mouse events into digitizer events. The left
// button draws with the pen, the right button with the eraser, and motion
// without a button hovers high enough to count as lifted. Escape, Ctrl-C
// and q end the stream.
type mouseSource struct {
	cells    cellMapper
	pressure int
	distance int

	events chan tcell.Event
	quit   chan struct{}

	queue []inkgrid.Event
	down  bool
	nib   inkgrid.Nib
}

func newMouseSource(screen tcell.Screen, cells cellMapper, pressure, distance int) *mouseSource {
	m := &mouseSource{
		cells:    cells,
		pressure: pressure,
		distance: distance,
		events:   make(chan tcell.Event),
		quit:     make(chan struct{}),
	}
	go screen.ChannelEvents(m.events, m.quit)
	return m
}

// Close stops forwarding screen events.
func (m *mouseSource) Close() {
	select {
	case <-m.quit:
	default:
		close(m.quit)
	}
}

func (m *mouseSource) Next(ctx context.Context) (inkgrid.Event, error) {
	for len(m.queue) == 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case ev, ok := <-m.events:
			if !ok || m.translate(ev) {
				return nil, io.EOF
			}
		}
	}
	ev := m.queue[0]
	m.queue = m.queue[1:]
	return ev, nil
}

// translate queues the digitizer events for ev. It reports true when ev
// ends the session.
func (m *mouseSource) translate(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return true
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return true
		}
	case *tcell.EventMouse:
		col, row := ev.Position()
		p := m.cells.PanelPoint(col, row)
		switch b := ev.Buttons(); {
		case b&tcell.Button1 != 0:
			m.press(inkgrid.NibPen, p)
		case b&tcell.Button2 != 0:
			m.press(inkgrid.NibEraser, p)
		default:
			m.release(p)
		}
	}
	return false
}

func (m *mouseSource) press(nib inkgrid.Nib, p inkgrid.Point) {
	if !m.down || m.nib != nib {
		if m.down {
			m.queue = append(m.queue, inkgrid.InstrumentChange{Nib: inkgrid.NibTouch, State: false})
		}
		m.queue = append(m.queue,
			inkgrid.InstrumentChange{Nib: nib, State: true},
			inkgrid.InstrumentChange{Nib: inkgrid.NibTouch, State: true},
		)
		m.down, m.nib = true, nib
	}
	m.queue = append(m.queue, inkgrid.Draw{Pos: p, Pressure: m.pressure})
}

func (m *mouseSource) release(p inkgrid.Point) {
	if m.down {
		m.queue = append(m.queue, inkgrid.InstrumentChange{Nib: inkgrid.NibTouch, State: false})
		m.down = false
	}
	m.queue = append(m.queue, inkgrid.Hover{Pos: p, Distance: m.distance})
}
