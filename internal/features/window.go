package features

import "gonum.org/v1/gonum/stat"

// DefaultWindowSize is the number of recent readings kept for smoothing.
const DefaultWindowSize = 5

// Window keeps the most recent feature readings and averages them.
// The oldest reading is evicted once the window is full.
// Window is not safe for concurrent use; it belongs to the caller that
// accumulates ticks.
type Window struct {
	size     int
	readings []Set
}

// NewWindow creates a smoothing window holding up to size readings.
// Sizes below 1 fall back to DefaultWindowSize.
func NewWindow(size int) *Window {
	if size < 1 {
		size = DefaultWindowSize
	}
	return &Window{
		size:     size,
		readings: make([]Set, 0, size),
	}
}

// Push adds a reading, evicting the oldest when full.
func (w *Window) Push(fs Set) {
	if fs == nil {
		return
	}
	if len(w.readings) >= w.size {
		w.readings = w.readings[1:]
	}
	w.readings = append(w.readings, fs.Clone())
}

// Smoothed returns the per-feature mean over the readings that contain the
// feature. An empty window yields an empty Set.
func (w *Window) Smoothed() Set {
	values := make(map[Feature][]float64)
	for _, r := range w.readings {
		for f, v := range r {
			values[f] = append(values[f], v)
		}
	}

	out := make(Set, len(values))
	for f, vs := range values {
		out[f] = stat.Mean(vs, nil)
	}
	return out
}

// Len returns the number of readings held.
func (w *Window) Len() int {
	return len(w.readings)
}

// Size returns the window capacity.
func (w *Window) Size() int {
	return w.size
}

// Reset drops all readings.
func (w *Window) Reset() {
	w.readings = w.readings[:0]
}
