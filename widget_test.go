package inkgrid

import (
	"image"
	"testing"
)

func TestWidgets_Find(t *testing.T) {
	var w Widgets
	w.Add(Widget{Name: "a", Bounds: image.Rect(0, 0, 10, 10)})
	w.Add(Widget{Name: "b", Bounds: image.Rect(5, 5, 20, 20)})

	tests := []struct {
		name string
		p    image.Point
		want string
		ok   bool
	}{
		{"only a", image.Pt(1, 1), "a", true},
		{"overlap prefers first", image.Pt(7, 7), "a", true},
		{"only b", image.Pt(15, 15), "b", true},
		{"max edge excluded", image.Pt(20, 20), "", false},
		{"miss", image.Pt(100, 1), "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := w.Find(tt.p)
			if ok != tt.ok || got.Name != tt.want {
				t.Errorf("Find(%v) = %q, %v; want %q, %v", tt.p, got.Name, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestWidgets_AllIsCopy(t *testing.T) {
	var w Widgets
	w.Add(Widget{Name: "a"})
	all := w.All()
	all[0].Name = "changed"
	if w.All()[0].Name != "a" {
		t.Error("All exposes internal storage")
	}
}

func TestButton_Size(t *testing.T) {
	d := newFakeDisplay()
	b := Button(d, "retry", "Clear", image.Pt(1142, 50), nil)

	// The fake display measures 5 runes at size 35 as 87.5 x 35.
	want := image.Rect(1142, 50, 1142+87+2*ButtonBorder, 50+35+2*ButtonBorder)
	if b.Bounds != want {
		t.Errorf("Bounds = %v, want %v", b.Bounds, want)
	}
	if b.Name != "retry" || b.Label != "Clear" {
		t.Errorf("widget = %+v", b)
	}
}

func TestDrawButton(t *testing.T) {
	d := newFakeDisplay()
	b := Button(d, "exit", "Close", image.Pt(30, 50), nil)

	if got := DrawButton(d, b); got != b.Bounds {
		t.Errorf("DrawButton = %v, want %v", got, b.Bounds)
	}
	if len(d.texts) != 1 || d.texts[0] != "Close" {
		t.Errorf("texts = %v", d.texts)
	}
	if d.lines != 4 {
		t.Errorf("outline used %d lines, want 4", d.lines)
	}
}
