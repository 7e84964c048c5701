package inkgrid

// Option configures a Session (and the App built around it) during
// creation.
//
// Example:
//
//	// Reference device defaults
//	s := inkgrid.NewSession(board, panel)
//
//	// Broader pen, stricter lift detection
//	s := inkgrid.NewSession(board, panel,
//	    inkgrid.WithPenWidth(5),
//	    inkgrid.WithHoverThreshold(3),
//	)
type Option func(*options)

// options holds optional configuration for Session creation.
type options struct {
	layout         Layout
	tess           Tessellator
	hoverThreshold int
	steps          int
}

// defaultOptions returns the reference device configuration.
func defaultOptions() options {
	return options{
		layout:         DefaultLayout(),
		tess:           DefaultTessellator(),
		hoverThreshold: DefaultHoverThreshold,
		steps:          DefaultSteps,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLayout sets the panel and grid geometry.
func WithLayout(l Layout) Option {
	return func(o *options) {
		o.layout = l
	}
}

// WithPenWidth sets the width multiplier of the writing tip.
func WithPenWidth(w float64) Option {
	return func(o *options) {
		o.tess.PenWidth = w
	}
}

// WithEraserWidth sets the width multiplier of the eraser end.
func WithEraserWidth(w float64) Option {
	return func(o *options) {
		o.tess.EraserWidth = w
	}
}

// WithPressureMax sets the full-scale digitizer pressure.
// Non-positive values are ignored.
func WithPressureMax(p int) Option {
	return func(o *options) {
		if p > 0 {
			o.tess.PressureMax = p
		}
	}
}

// WithHoverThreshold sets the hover distance above which the stylus
// counts as lifted.
func WithHoverThreshold(d int) Option {
	return func(o *options) {
		o.hoverThreshold = d
	}
}

// WithSteps sets the number of flattening steps per segment.
func WithSteps(n int) Option {
	return func(o *options) {
		o.steps = n
	}
}

// WithPenInk sets the color of the writing tip. The eraser paints its
// inverse.
func WithPenInk(c Ink) Option {
	return func(o *options) {
		o.tess.PenInk = c
	}
}
