package tui

const (
	// seriesCapacity is the sliding window length shared by all charts.
	seriesCapacity = 100
	// yPadding keeps the largest sample off the top edge of a chart.
	yPadding = 1.1
)

type sample struct {
	x float64
	y float64
}

// TimeSeriesWindow keeps the most recent samples of one charted series.
// X values are logical tick indices, not wall-clock time. Chart owners
// must push a seed sample at construction so Last and YMax never see an
// empty buffer.
type TimeSeriesWindow struct {
	samples  []sample
	counter  float64
	capacity int
}

// NewTimeSeriesWindow creates an empty window holding at most capacity
// samples.
func NewTimeSeriesWindow(capacity int) *TimeSeriesWindow {
	return &TimeSeriesWindow{capacity: capacity}
}

// Push appends (tick, v) and evicts the oldest sample once the window is
// over capacity.
func (w *TimeSeriesWindow) Push(v float64) {
	w.samples = append(w.samples, sample{x: w.counter, y: v})
	w.counter++
	for len(w.samples) > w.capacity {
		w.samples = w.samples[1:]
	}
}

func (w *TimeSeriesWindow) Len() int { return len(w.samples) }

// Last returns the most recent value, or 0 before any push.
func (w *TimeSeriesWindow) Last() float64 {
	if len(w.samples) == 0 {
		return 0
	}
	return w.samples[len(w.samples)-1].y
}

// YMax returns the largest value in the window, or 0 before any push.
func (w *TimeSeriesWindow) YMax() float64 {
	max := 0.0
	for _, s := range w.samples {
		if s.y > max {
			max = s.y
		}
	}
	return max
}

// YMin returns the smallest value in the window, or 0 before any push.
func (w *TimeSeriesWindow) YMin() float64 {
	if len(w.samples) == 0 {
		return 0
	}
	min := w.samples[0].y
	for _, s := range w.samples[1:] {
		if s.y < min {
			min = s.y
		}
	}
	return min
}

// XBounds returns the visible sliding window on the x axis, not the full
// history: [max(0, counter-capacity), counter].
func (w *TimeSeriesWindow) XBounds() (lo, hi float64) {
	lo = w.counter - float64(w.capacity)
	if lo < 0 {
		lo = 0
	}
	return lo, w.counter
}

// Values returns the window's y values, oldest first.
func (w *TimeSeriesWindow) Values() []float64 {
	ys := make([]float64, len(w.samples))
	for i, s := range w.samples {
		ys[i] = s.y
	}
	return ys
}

// yBounds computes shared axis bounds for several series drawn on one
// chart: the smallest minimum and the padded largest maximum.
func yBounds(pad float64, series ...*TimeSeriesWindow) (lo, hi float64) {
	for i, s := range series {
		min, max := s.YMin(), s.YMax()
		if i == 0 || min < lo {
			lo = min
		}
		if max > hi {
			hi = max
		}
	}
	return lo, hi * pad
}
