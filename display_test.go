package inkgrid

import (
	"image"
	"sync"
)

// fakeDisplay records every call made through the Display interface.
type fakeDisplay struct {
	mu sync.Mutex

	bounds    image.Rectangle
	pixels    map[image.Point]Ink
	refreshes []Refresh
	lines     int
	polygons  [][]image.Point
	texts     []string
	err       error
}

func newFakeDisplay() *fakeDisplay {
	l := DefaultLayout()
	return &fakeDisplay{
		bounds: image.Rect(0, 0, l.Width, l.Height),
		pixels: make(map[image.Point]Ink),
	}
}

func (d *fakeDisplay) Bounds() image.Rectangle { return d.bounds }

func (d *fakeDisplay) WritePixel(p image.Point, c Ink) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pixels[p] = c
}

func (d *fakeDisplay) Refresh(r Refresh) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.refreshes = append(d.refreshes, r)
	return d.err
}

func (d *fakeDisplay) DrawLine(a, b image.Point, width int, c Ink) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.lines++
}

func (d *fakeDisplay) FillPolygon(pts []image.Point, c Ink) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.polygons = append(d.polygons, pts)
	if c == White {
		// A white fill wipes the recorded ink inside its bounds.
		r := image.Rectangle{Min: pts[0], Max: pts[0]}
		for _, p := range pts {
			r = r.Union(image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))})
		}
		for p := range d.pixels {
			if p.In(r) {
				delete(d.pixels, p)
			}
		}
	}
}

func (d *fakeDisplay) DrawText(at Point, s string, size float64, c Ink) image.Rectangle {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.texts = append(d.texts, s)
	w, h := d.measure(s, size)
	o := at.Image()
	return image.Rect(o.X, o.Y-int(h), o.X+int(w), o.Y)
}

func (d *fakeDisplay) MeasureText(s string, size float64) (w, h float64) {
	return d.measure(s, size)
}

func (d *fakeDisplay) measure(s string, size float64) (w, h float64) {
	return float64(len(s)) * size / 2, size
}

func (d *fakeDisplay) written() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pixels)
}

func (d *fakeDisplay) refreshLog() []Refresh {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]Refresh(nil), d.refreshes...)
}

var _ Display = (*fakeDisplay)(nil)
