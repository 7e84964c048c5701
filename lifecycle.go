package inkgrid

import (
	"fmt"
	"image"
	"strconv"
)

// Engine produces new puzzles.
type Engine interface {
	// Generate returns a new puzzle. Empty cells are 0.
	Generate() Grid
}

// loadingText is shown while the engine works.
const loadingText = "LOADING..."

// Lifecycle generates, stores and repaints puzzles. Every repaint covers
// the whole grid region and is refreshed synchronously, so a new stroke
// never renders over a panel that is still updating.
type Lifecycle struct {
	layout  Layout
	board   *Board
	display Display
	sched   *Scheduler
	engine  Engine
}

// NewLifecycle creates a lifecycle storing puzzles from engine in board.
func NewLifecycle(layout Layout, board *Board, display Display, sched *Scheduler, engine Engine) *Lifecycle {
	return &Lifecycle{
		layout:  layout,
		board:   board,
		display: display,
		sched:   sched,
		engine:  engine,
	}
}

// Generate asks the engine for a new puzzle, stores it and repaints the
// grid. On error the previous puzzle stays loaded.
func (l *Lifecycle) Generate() error {
	l.wipe()
	l.display.DrawText(Pt(400, 400), loadingText, 100, Black)
	l.sched.Full(l.layout.Region())

	g := l.engine.Generate()
	if err := l.board.Set(g); err != nil {
		return fmt.Errorf("inkgrid: storing generated puzzle: %w", err)
	}
	Logger().Info("inkgrid: puzzle generated", "givens", g.Givens())

	l.repaint(g)
	return nil
}

// Clear repaints the current puzzle, wiping all ink.
func (l *Lifecycle) Clear() error {
	g, ok := l.board.Grid()
	if !ok {
		return ErrNoPuzzle
	}
	Logger().Info("inkgrid: puzzle cleared")

	l.repaint(g)
	return nil
}

func (l *Lifecycle) repaint(g Grid) {
	l.wipe()
	l.drawSkeleton()
	l.drawDigits(g)
	l.sched.Full(l.layout.Region())
}

// wipe fills the whole grid region with paper color.
func (l *Lifecycle) wipe() {
	r := l.layout.Region()
	l.display.FillPolygon([]image.Point{
		r.Min,
		image.Pt(r.Min.X, r.Max.Y),
		r.Max,
		image.Pt(r.Max.X, r.Min.Y),
	}, White)
}

// drawSkeleton draws the ten vertical and ten horizontal grid lines. Each
// line overshoots by LineWidth so the thick corners close.
func (l *Lifecycle) drawSkeleton() {
	o := l.layout.Offset()
	size := l.layout.Size()
	ext := l.layout.LineWidth

	for i := 0; i <= GridCells; i++ {
		at := i * l.layout.Cell
		w := l.layout.LineThickness(i)
		l.display.DrawLine(
			o.Add(image.Pt(at, -ext)),
			o.Add(image.Pt(at, size+ext)),
			w, Black)
		l.display.DrawLine(
			o.Add(image.Pt(-ext, at)),
			o.Add(image.Pt(size+ext, at)),
			w, Black)
	}
}

func (l *Lifecycle) drawDigits(g Grid) {
	for idx, v := range g {
		if v == 0 {
			continue
		}
		l.display.DrawText(l.layout.DigitOrigin(idx), strconv.Itoa(int(v)), l.layout.DigitSize(), Black)
	}
}
