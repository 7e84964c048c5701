// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package replay reads and writes digitizer sessions as JSON lines, one
// event per line:
//
//	{"type":"instrument","nib":"pen","state":true}
//	{"type":"hover","x":300,"y":410,"distance":12}
//	{"type":"draw","x":300,"y":410,"pressure":1400}
//
// Lines of any other type decode as inkgrid.Other.
package replay

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/gogpu/inkgrid"
)

// Record types.
const (
	TypeDraw       = "draw"
	TypeInstrument = "instrument"
	TypeHover      = "hover"
)

type record struct {
	Type     string  `json:"type"`
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
	Pressure int     `json:"pressure,omitempty"`
	Distance int     `json:"distance,omitempty"`
	Nib      string  `json:"nib,omitempty"`
	State    bool    `json:"state,omitempty"`
}

var nibs = map[string]inkgrid.Nib{
	inkgrid.NibPen.String():    inkgrid.NibPen,
	inkgrid.NibEraser.String(): inkgrid.NibEraser,
	inkgrid.NibTouch.String():  inkgrid.NibTouch,
}

func parseNib(s string) inkgrid.Nib {
	if n, ok := nibs[s]; ok {
		return n
	}
	return inkgrid.NibUnknown
}

// Decoder reads events from a JSON-lines stream. Blank lines are skipped.
type Decoder struct {
	sc   *bufio.Scanner
	line int
}

// NewDecoder creates a decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{sc: bufio.NewScanner(r)}
}

// Next returns the next event, or io.EOF at the end of the stream.
func (d *Decoder) Next(ctx context.Context) (inkgrid.Event, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !d.sc.Scan() {
			if err := d.sc.Err(); err != nil {
				return nil, fmt.Errorf("replay: failed to read line %d: %w", d.line+1, err)
			}
			return nil, io.EOF
		}
		d.line++

		b := bytes.TrimSpace(d.sc.Bytes())
		if len(b) == 0 {
			continue
		}
		var rec record
		if err := json.Unmarshal(b, &rec); err != nil {
			return nil, fmt.Errorf("replay: line %d: %w", d.line, err)
		}
		return rec.event(), nil
	}
}

func (r record) event() inkgrid.Event {
	switch r.Type {
	case TypeDraw:
		return inkgrid.Draw{Pos: inkgrid.Pt(r.X, r.Y), Pressure: r.Pressure}
	case TypeHover:
		return inkgrid.Hover{Pos: inkgrid.Pt(r.X, r.Y), Distance: r.Distance}
	case TypeInstrument:
		return inkgrid.InstrumentChange{Nib: parseNib(r.Nib), State: r.State}
	default:
		return inkgrid.Other{Kind: r.Type}
	}
}

// Encoder writes events as JSON lines.
type Encoder struct {
	enc *json.Encoder
}

// NewEncoder creates an encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{enc: json.NewEncoder(w)}
}

// Encode writes one event.
func (e *Encoder) Encode(ev inkgrid.Event) error {
	var rec record
	switch ev := ev.(type) {
	case inkgrid.Draw:
		rec = record{Type: TypeDraw, X: ev.Pos.X, Y: ev.Pos.Y, Pressure: ev.Pressure}
	case inkgrid.Hover:
		rec = record{Type: TypeHover, X: ev.Pos.X, Y: ev.Pos.Y, Distance: ev.Distance}
	case inkgrid.InstrumentChange:
		rec = record{Type: TypeInstrument, Nib: ev.Nib.String(), State: ev.State}
	case inkgrid.Other:
		rec = record{Type: ev.Kind}
	default:
		return fmt.Errorf("replay: unsupported event %T", ev)
	}
	if err := e.enc.Encode(rec); err != nil {
		return fmt.Errorf("replay: failed to write event: %w", err)
	}
	return nil
}

// Recorder passes events through from a source while encoding each one.
type Recorder struct {
	src inkgrid.EventSource
	enc *Encoder
}

// NewRecorder records the events of src to w.
func NewRecorder(src inkgrid.EventSource, w io.Writer) *Recorder {
	return &Recorder{src: src, enc: NewEncoder(w)}
}

// Next returns the next event of the wrapped source after recording it.
func (r *Recorder) Next(ctx context.Context) (inkgrid.Event, error) {
	ev, err := r.src.Next(ctx)
	if err != nil {
		return nil, err
	}
	if err := r.enc.Encode(ev); err != nil {
		return nil, err
	}
	return ev, nil
}
