// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package evdev decodes Linux input_event records from a Wacom digitizer
// into inkgrid events.
//
// A record is a timeval followed by type, code and value, little endian.
// The timeval is two machine words, so records are 16 bytes on 32-bit
// kernels and 24 bytes on 64-bit ones.
package evdev

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/bits"

	"github.com/gogpu/inkgrid"
)

// Event types.
const (
	EvSyn = 0x00
	EvKey = 0x01
	EvAbs = 0x03
)

// Codes.
const (
	SynReport = 0x00

	BtnToolPen    = 0x140
	BtnToolRubber = 0x141
	BtnTouch      = 0x14a

	AbsX        = 0x00
	AbsY        = 0x01
	AbsPressure = 0x18
	AbsDistance = 0x19
)

// ErrShortEvent is returned when the stream ends inside a record.
var ErrShortEvent = errors.New("evdev: short input event")

// Config describes the digitizer and the panel it maps onto.
type Config struct {
	// Width and Height are the panel size in pixels.
	Width, Height int

	// MaxX and MaxY are the raw axis maxima. The digitizer is mounted
	// rotated: raw Y runs along the panel x axis and raw X against y.
	MaxX, MaxY int

	// WordSize is the kernel word size in bytes, 4 or 8.
	WordSize int
}

// DefaultConfig returns the reMarkable 1 digitizer on the host word size.
func DefaultConfig() Config {
	return Config{
		Width:    1404,
		Height:   1872,
		MaxX:     20967,
		MaxY:     15725,
		WordSize: bits.UintSize / 8,
	}
}

// RawEvent is one decoded input_event without its timestamp.
type RawEvent struct {
	Type  uint16
	Code  uint16
	Value int32
}

// Reader turns a raw event stream into inkgrid events.
//
// Reader is not safe for concurrent use.
type Reader struct {
	r   io.Reader
	cfg Config
	buf []byte

	x, y, pressure, distance int32
	touching                 bool
	dirty                    bool
}

// NewReader creates a reader over r.
func NewReader(r io.Reader, cfg Config) *Reader {
	if cfg.WordSize != 4 {
		cfg.WordSize = 8
	}
	return &Reader{r: r, cfg: cfg, buf: make([]byte, 2*cfg.WordSize+8)}
}

// ReadRaw reads one record. It returns io.EOF at a clean end of stream and
// ErrShortEvent when the stream ends mid-record.
func (r *Reader) ReadRaw() (RawEvent, error) {
	if _, err := io.ReadFull(r.r, r.buf); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return RawEvent{}, ErrShortEvent
		}
		return RawEvent{}, err
	}
	tail := r.buf[2*r.cfg.WordSize:]
	return RawEvent{
		Type:  binary.LittleEndian.Uint16(tail[0:2]),
		Code:  binary.LittleEndian.Uint16(tail[2:4]),
		Value: int32(binary.LittleEndian.Uint32(tail[4:8])),
	}, nil
}

// Next returns the next event. ctx is checked between records; a read
// blocked on the device is not interrupted.
func (r *Reader) Next(ctx context.Context) (inkgrid.Event, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		raw, err := r.ReadRaw()
		if err != nil {
			return nil, err
		}
		if ev, ok := r.translate(raw); ok {
			return ev, nil
		}
	}
}

func (r *Reader) translate(raw RawEvent) (inkgrid.Event, bool) {
	switch raw.Type {
	case EvSyn:
		if raw.Code != SynReport || !r.dirty {
			return nil, false
		}
		r.dirty = false
		if r.touching {
			return inkgrid.Draw{Pos: r.position(), Pressure: int(r.pressure)}, true
		}
		return inkgrid.Hover{Pos: r.position(), Distance: int(r.distance)}, true

	case EvKey:
		on := raw.Value != 0
		switch raw.Code {
		case BtnToolPen:
			return inkgrid.InstrumentChange{Nib: inkgrid.NibPen, State: on}, true
		case BtnToolRubber:
			return inkgrid.InstrumentChange{Nib: inkgrid.NibEraser, State: on}, true
		case BtnTouch:
			r.touching = on
			return inkgrid.InstrumentChange{Nib: inkgrid.NibTouch, State: on}, true
		}

	case EvAbs:
		switch raw.Code {
		case AbsX:
			r.x = raw.Value
		case AbsY:
			r.y = raw.Value
		case AbsPressure:
			r.pressure = raw.Value
		case AbsDistance:
			r.distance = raw.Value
		default:
			return nil, false
		}
		r.dirty = true
		return nil, false
	}
	kind := fmt.Sprintf("evdev %#x/%#x", raw.Type, raw.Code)
	inkgrid.Logger().Debug("evdev: unhandled event", "kind", kind, "value", raw.Value)
	return inkgrid.Other{Kind: kind}, true
}

// position maps the raw axes onto the panel.
func (r *Reader) position() inkgrid.Point {
	c := r.cfg
	return inkgrid.Pt(
		float64(r.y)*float64(c.Width)/float64(c.MaxY),
		float64(int32(c.MaxX)-r.x)*float64(c.Height)/float64(c.MaxX),
	)
}
