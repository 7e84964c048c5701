// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/inkgrid"
)

func TestReplayCmd_Run(t *testing.T) {
	dir := t.TempDir()
	session := filepath.Join(dir, "session.jsonl")
	lines := strings.Join([]string{
		`{"type":"instrument","nib":"pen","state":true}`,
		`{"type":"instrument","nib":"touch","state":true}`,
		`{"type":"draw","x":140,"y":150,"pressure":2048}`,
		`{"type":"draw","x":150,"y":160,"pressure":2048}`,
		`{"type":"draw","x":160,"y":170,"pressure":2048}`,
		`{"type":"draw","x":170,"y":180,"pressure":2048}`,
	}, "\n")
	if err := os.WriteFile(session, []byte(lines), 0o600); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "grid.png")

	defer inkgrid.SetLogger(nil)
	if err := (ReplayCmd{Input: session, Out: out}).Run(testGlobals()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	l := inkgrid.DefaultLayout()
	if img.Bounds().Dx() != l.Width || img.Bounds().Dy() != l.Height {
		t.Errorf("png bounds %v", img.Bounds())
	}
	// The grid's outer corner line is always drawn.
	if inkgrid.InkOf(img.At(l.Offset().X, l.Offset().Y)) != inkgrid.Black {
		t.Error("grid skeleton missing from output")
	}
}

func TestReplayCmd_MissingInput(t *testing.T) {
	err := (ReplayCmd{Input: filepath.Join(t.TempDir(), "nope.jsonl")}).Run(testGlobals())
	if err == nil {
		t.Error("missing session accepted")
	}
}
