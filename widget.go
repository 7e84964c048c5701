package inkgrid

import "image"

// Widget is a named clickable rectangle.
type Widget struct {
	Name   string
	Label  string
	Bounds image.Rectangle
	OnTap  func() error
}

// Widgets is an ordered registry of widgets. When widgets overlap, the
// one added first wins the hit test.
type Widgets struct {
	items []Widget
}

// Add registers a widget.
func (w *Widgets) Add(wd Widget) {
	w.items = append(w.items, wd)
}

// Find returns the widget containing p.
func (w *Widgets) Find(p image.Point) (Widget, bool) {
	for _, wd := range w.items {
		if p.In(wd.Bounds) {
			return wd, true
		}
	}
	return Widget{}, false
}

// All returns the registered widgets in order.
func (w *Widgets) All() []Widget {
	return append([]Widget(nil), w.items...)
}

// Button geometry of the reference UI.
const (
	ButtonTextSize = 35
	ButtonBorder   = 5
)

// Button builds a text button whose top-left corner is at, sized to fit
// label on d.
func Button(d Display, name, label string, at image.Point, onTap func() error) Widget {
	w, h := d.MeasureText(label, ButtonTextSize)
	size := image.Pt(int(w)+2*ButtonBorder, int(h)+2*ButtonBorder)
	return Widget{
		Name:   name,
		Label:  label,
		Bounds: image.Rectangle{Min: at, Max: at.Add(size)},
		OnTap:  onTap,
	}
}

// DrawButton draws the label of wd inside a thin outline and returns the
// rectangle it painted.
func DrawButton(d Display, wd Widget) image.Rectangle {
	b := wd.Bounds
	_, h := d.MeasureText(wd.Label, ButtonTextSize)
	baseline := Pt(float64(b.Min.X+ButtonBorder), float64(b.Min.Y+ButtonBorder)+0.8*h)
	d.DrawText(baseline, wd.Label, ButtonTextSize, Black)

	in := b.Inset(ButtonBorder / 2)
	corners := []image.Point{in.Min, image.Pt(in.Max.X, in.Min.Y), in.Max, image.Pt(in.Min.X, in.Max.Y)}
	for i := range corners {
		d.DrawLine(corners[i], corners[(i+1)%len(corners)], 1, Black)
	}
	return b
}
