// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/inkgrid"
)

// halfBlock shows the upper half of a cell in the foreground color and the
// lower half in the background color.
const halfBlock = '▀'

// TerminalSurface mirrors a framebuffer onto a terminal. Each cell shows
// two blocks of scale×scale panel pixels; a block is black when any of its
// pixels is.
//
// Asynchronous refreshes are queued and coalesced into one rectangle by a
// background goroutine. A synchronous refresh returns once everything
// queued before it, and its own region, is on screen.
type TerminalSurface struct {
	*ImageSurface

	screen tcell.Screen
	scale  int

	mu      sync.Mutex
	pending image.Rectangle
	waiters []chan struct{}

	wake      chan struct{}
	quit      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewTerminalSurface creates a width×height panel shown on screen, which
// must already be initialized. The caller keeps ownership of screen.
func NewTerminalSurface(screen tcell.Screen, width, height int) *TerminalSurface {
	cols, rows := screen.Size()
	t := &TerminalSurface{
		ImageSurface: NewImageSurface(width, height),
		screen:       screen,
		scale:        fitScale(width, height, cols, rows),
		wake:         make(chan struct{}, 1),
		quit:         make(chan struct{}),
	}
	t.wg.Add(1)
	go t.loop()
	return t
}

// fitScale returns the smallest block size at which the panel fits a
// cols×rows terminal.
func fitScale(width, height, cols, rows int) int {
	scale := 1
	if cols > 0 {
		scale = max(scale, ceilDiv(width, cols))
	}
	if rows > 0 {
		scale = max(scale, ceilDiv(height, 2*rows))
	}
	return scale
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// Scale returns the edge length in panel pixels of one half-cell block.
func (t *TerminalSurface) Scale() int {
	return t.scale
}

// PanelPoint returns the panel position at the center of terminal cell
// (col, row).
func (t *TerminalSurface) PanelPoint(col, row int) inkgrid.Point {
	return inkgrid.Pt(
		float64(col*t.scale)+float64(t.scale)/2,
		float64(row*2*t.scale)+float64(t.scale),
	)
}

// Refresh queues r for display and, when r.Wait is set, blocks until it
// has been drawn.
func (t *TerminalSurface) Refresh(r inkgrid.Refresh) error {
	if err := t.ImageSurface.Refresh(r); err != nil {
		return err
	}

	var done chan struct{}
	t.mu.Lock()
	t.pending = t.pending.Union(r.Region)
	if r.Wait {
		done = make(chan struct{})
		t.waiters = append(t.waiters, done)
	}
	t.mu.Unlock()

	select {
	case t.wake <- struct{}{}:
	default:
	}

	if done == nil {
		return nil
	}
	select {
	case <-done:
		return nil
	case <-t.quit:
		return ErrClosed
	}
}

func (t *TerminalSurface) loop() {
	defer t.wg.Done()
	for {
		select {
		case <-t.quit:
			return
		case <-t.wake:
		}

		t.mu.Lock()
		r := t.pending
		waiters := t.waiters
		t.pending = image.Rectangle{}
		t.waiters = nil
		t.mu.Unlock()

		t.paint(r)
		for _, w := range waiters {
			close(w)
		}
	}
}

// paint redraws the cells covering panel rectangle r.
func (t *TerminalSurface) paint(r image.Rectangle) {
	r = r.Intersect(t.Bounds())
	if r.Empty() {
		return
	}

	s := t.scale
	c0, c1 := r.Min.X/s, ceilDiv(r.Max.X, s)
	r0, r1 := r.Min.Y/(2*s), ceilDiv(r.Max.Y, 2*s)

	t.view(func(img *image.Gray) {
		for row := r0; row < r1; row++ {
			for col := c0; col < c1; col++ {
				top := block(img, image.Rect(col*s, row*2*s, (col+1)*s, row*2*s+s))
				bottom := block(img, image.Rect(col*s, row*2*s+s, (col+1)*s, (row+1)*2*s))
				style := tcell.StyleDefault.Foreground(termColor(top)).Background(termColor(bottom))
				t.screen.SetContent(col, row, halfBlock, nil, style)
			}
		}
	})
	t.screen.Show()
	inkgrid.Logger().Debug("surface: terminal flush", "region", r.String(), "cells", (c1-c0)*(r1-r0))
}

// block returns Black when any pixel of r is dark.
func block(img *image.Gray, r image.Rectangle) inkgrid.Ink {
	r = r.Intersect(img.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if inkgrid.InkOf(img.GrayAt(x, y)) == inkgrid.Black {
				return inkgrid.Black
			}
		}
	}
	return inkgrid.White
}

func termColor(c inkgrid.Ink) tcell.Color {
	if c == inkgrid.Black {
		return tcell.ColorBlack
	}
	return tcell.ColorWhite
}

// Close stops the refresh goroutine. Pending asynchronous refreshes are
// dropped and blocked synchronous ones return ErrClosed.
func (t *TerminalSurface) Close() error {
	t.closeOnce.Do(func() {
		close(t.quit)
		t.wg.Wait()
	})
	return t.ImageSurface.Close()
}

var _ inkgrid.Display = (*TerminalSurface)(nil)
