package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeSeriesWindowEvictsOldest(t *testing.T) {
	w := NewTimeSeriesWindow(3)

	for _, v := range []float64{1, 2, 3, 4, 5} {
		w.Push(v)
	}

	assert.Equal(t, 3, w.Len())
	assert.Equal(t, []float64{3, 4, 5}, w.Values())
	assert.Equal(t, 5.0, w.Last())
}

func TestTimeSeriesWindowXBoundsSlide(t *testing.T) {
	w := NewTimeSeriesWindow(seriesCapacity)

	lo, hi := w.XBounds()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 0.0, hi)

	for i := 0; i < 150; i++ {
		w.Push(float64(i))
	}

	lo, hi = w.XBounds()
	assert.Equal(t, 50.0, lo)
	assert.Equal(t, 150.0, hi)
	assert.Equal(t, seriesCapacity, w.Len())
	assert.Equal(t, 50.0, w.samples[0].x)
	assert.Equal(t, 149.0, w.samples[len(w.samples)-1].x)
}

func TestTimeSeriesWindowEmpty(t *testing.T) {
	w := NewTimeSeriesWindow(10)

	assert.Equal(t, 0.0, w.Last())
	assert.Equal(t, 0.0, w.YMax())
	assert.Equal(t, 0.0, w.YMin())
	assert.Empty(t, w.Values())
}

func TestTimeSeriesWindowYRange(t *testing.T) {
	w := NewTimeSeriesWindow(10)
	for _, v := range []float64{4, 2, 9, 7} {
		w.Push(v)
	}

	assert.Equal(t, 9.0, w.YMax())
	assert.Equal(t, 2.0, w.YMin())
}

func TestYBoundsSharedAcrossSeries(t *testing.T) {
	a := NewTimeSeriesWindow(10)
	b := NewTimeSeriesWindow(10)
	a.Push(3)
	a.Push(10)
	b.Push(1)
	b.Push(6)

	lo, hi := yBounds(1.1, a, b)
	assert.Equal(t, 1.0, lo)
	assert.InDelta(t, 11.0, hi, 0.0001)
}
