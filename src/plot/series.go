package plot

import (
	"math"

	"github.com/fabianboesiger/debug-plotter/src/render"
)

// seriesBuffer holds the samples of one named series in insertion
// order. With a positive capacity it is a ring that evicts the oldest
// sample when full; with capacity zero it grows without bound.
type seriesBuffer struct {
	cap   int
	data  []render.Point
	head  int // next write index, ring mode only
	count int
}

func newSeriesBuffer(capacity int) *seriesBuffer {
	b := &seriesBuffer{cap: capacity}
	if capacity > 0 {
		b.data = make([]render.Point, capacity)
	}
	return b
}

func (b *seriesBuffer) push(p render.Point) {
	if b.cap <= 0 {
		b.data = append(b.data, p)
		b.count = len(b.data)
		return
	}
	b.data[b.head] = p
	b.head = (b.head + 1) % b.cap
	if b.count < b.cap {
		b.count++
	}
}

func (b *seriesBuffer) len() int {
	return b.count
}

// points returns the buffered samples oldest first.
func (b *seriesBuffer) points() []render.Point {
	out := make([]render.Point, 0, b.count)
	if b.cap <= 0 {
		return append(out, b.data...)
	}
	start := (b.head - b.count + b.cap) % b.cap
	for i := 0; i < b.count; i++ {
		out = append(out, b.data[(start+i)%b.cap])
	}
	return out
}

// extent is the bounding box of a set of samples. The zero-sample
// sentinel is +Inf mins and -Inf maxes with ok=false; callers must
// check ok before using the bounds.
type extent struct {
	minX, maxX float64
	minY, maxY float64
	ok         bool
}

func emptyExtent() extent {
	return extent{
		minX: math.Inf(1), maxX: math.Inf(-1),
		minY: math.Inf(1), maxY: math.Inf(-1),
	}
}

func (e *extent) add(p render.Point) {
	if !finite(p.X) || !finite(p.Y) {
		return
	}
	e.minX = math.Min(e.minX, p.X)
	e.maxX = math.Max(e.maxX, p.X)
	e.minY = math.Min(e.minY, p.Y)
	e.maxY = math.Max(e.maxY, p.Y)
	e.ok = true
}

func (e *extent) merge(o extent) {
	if !o.ok {
		return
	}
	e.minX = math.Min(e.minX, o.minX)
	e.maxX = math.Max(e.maxX, o.maxX)
	e.minY = math.Min(e.minY, o.minY)
	e.maxY = math.Max(e.maxY, o.maxY)
	e.ok = true
}

// extent folds over the buffered samples. Non-finite samples stay in
// the buffer but are excluded here so one NaN cannot poison the axis
// ranges.
func (b *seriesBuffer) extent() extent {
	e := emptyExtent()
	// Ring writes fill data[:count] before wrapping, so the first
	// count entries are exactly the live ones in both modes.
	for i := 0; i < b.count; i++ {
		e.add(b.data[i])
	}
	return e
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
