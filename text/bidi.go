package text

import "golang.org/x/text/unicode/bidi"

// Direction is the base direction of a label.
type Direction uint8

const (
	LeftToRight Direction = iota
	RightToLeft
)

// String returns "ltr" or "rtl".
func (d Direction) String() string {
	if d == RightToLeft {
		return "rtl"
	}
	return "ltr"
}

type run struct {
	start, end int // rune indices, end inclusive
	rtl        bool
}

// runs returns the bidi runs of s in visual order.
func runs(s string) []run {
	p := bidi.Paragraph{}
	if _, err := p.SetString(s, bidi.DefaultDirection(bidi.Neutral)); err != nil {
		return nil
	}
	ordering, err := p.Order()
	if err != nil {
		return nil
	}

	out := make([]run, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		r := ordering.Run(i)
		start, end := r.Pos()
		out = append(out, run{start: start, end: end, rtl: r.Direction() == bidi.RightToLeft})
	}
	return out
}

// BaseDirection returns RightToLeft when the first run of s is
// right-to-left.
func BaseDirection(s string) Direction {
	rs := runs(s)
	if len(rs) == 0 {
		return LeftToRight
	}
	for _, r := range rs {
		if r.start == 0 {
			if r.rtl {
				return RightToLeft
			}
			return LeftToRight
		}
	}
	return LeftToRight
}

// Visual returns s with its runs in display order and right-to-left runs
// reversed, ready for a left-to-right glyph drawer.
func Visual(s string) string {
	rs := runs(s)
	if len(rs) == 0 {
		return s
	}

	src := []rune(s)
	dst := make([]rune, 0, len(src))
	for _, r := range rs {
		end := min(r.end, len(src)-1)
		if r.rtl {
			for i := end; i >= r.start; i-- {
				dst = append(dst, src[i])
			}
			continue
		}
		dst = append(dst, src[r.start:end+1]...)
	}
	if len(dst) != len(src) {
		return s
	}
	return string(dst)
}
