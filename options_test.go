package inkgrid

import "testing"

func TestBuildOptions_Defaults(t *testing.T) {
	o := buildOptions(nil)

	if o.layout != DefaultLayout() {
		t.Errorf("layout = %+v", o.layout)
	}
	if o.tess != DefaultTessellator() {
		t.Errorf("tessellator = %+v", o.tess)
	}
	if o.hoverThreshold != DefaultHoverThreshold {
		t.Errorf("hover threshold = %d", o.hoverThreshold)
	}
	if o.steps != DefaultSteps {
		t.Errorf("steps = %d", o.steps)
	}
}

func TestBuildOptions_LastWins(t *testing.T) {
	o := buildOptions([]Option{WithPenWidth(2), WithPenWidth(7)})
	if o.tess.PenWidth != 7 {
		t.Errorf("PenWidth = %v, want 7", o.tess.PenWidth)
	}
}

func TestWithPressureMax(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"positive", 4096, 4096},
		{"zero ignored", 0, DefaultPressureMax},
		{"negative ignored", -5, DefaultPressureMax},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := buildOptions([]Option{WithPressureMax(tt.in)})
			if o.tess.PressureMax != tt.want {
				t.Errorf("PressureMax = %d, want %d", o.tess.PressureMax, tt.want)
			}
		})
	}
}
