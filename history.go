package inkgrid

// Sample is one digitizer report taken while the stylus touches the canvas.
type Sample struct {
	Pos      Point
	Pressure int
}

// historyCap is the number of samples one tessellation step consumes.
const historyCap = 3

// History is a fixed-capacity FIFO of the most recent samples of the
// current stroke, backed by an array ring. It never grows beyond three
// entries and never allocates.
//
// The zero value is an empty history ready to use.
type History struct {
	buf   [historyCap]Sample
	start int
	n     int
}

// Len returns the number of buffered samples.
func (h *History) Len() int {
	return h.n
}

// Push appends s as the newest sample. When the history is already full
// the oldest sample is dropped.
func (h *History) Push(s Sample) {
	if h.n == historyCap {
		h.start = (h.start + 1) % historyCap
		h.n--
	}
	h.buf[(h.start+h.n)%historyCap] = s
	h.n++
}

// At returns the i-th sample, 0 being the oldest.
func (h *History) At(i int) Sample {
	if i < 0 || i >= h.n {
		panic("inkgrid: history index out of range")
	}
	return h.buf[(h.start+i)%historyCap]
}

// Window returns the three buffered samples, oldest first, and retires the
// oldest one so the remaining two carry over into the next segment.
// ok is false, and nothing is retired, unless the history is full.
func (h *History) Window() (w [historyCap]Sample, ok bool) {
	if h.n < historyCap {
		return w, false
	}
	for i := range w {
		w[i] = h.At(i)
	}
	h.start = (h.start + 1) % historyCap
	h.n--
	return w, true
}

// Clear empties the history in one step.
func (h *History) Clear() {
	h.start, h.n = 0, 0
}
