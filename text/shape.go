package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// shaper measures runs with HarfBuzz. The parsed font is read-only and
// shared; faces and shapers are not, so each call gets its own.
type shaper struct {
	font *font.Font
	pool sync.Pool
}

func newShaper(data []byte) (*shaper, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return &shaper{
		font: face.Font,
		pool: sync.Pool{New: func() any { return &shaping.HarfbuzzShaper{} }},
	}, nil
}

// advance returns the shaped advance of s at size pixels.
func (s *shaper) advance(text string, size float64, dir Direction) float64 {
	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir.gotext(),
		Face:      font.NewFace(s.font),
		Size:      floatToFixed(size),
		Script:    scriptOf(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	s.pool.Put(hb)

	adv := fixedToFloat(out.Advance)
	if adv < 0 {
		adv = -adv
	}
	return adv
}

// scriptOf returns the script of the first non-space rune.
func scriptOf(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func (d Direction) gotext() di.Direction {
	if d == RightToLeft {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}
