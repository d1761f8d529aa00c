package plot

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/fabianboesiger/debug-plotter/src/render"
)

// record is the accumulated state of one call site: resolved options,
// one buffer per series name and the iteration counter. Records are
// owned by the registry; everything mutable is guarded by mu.
type record struct {
	mu   sync.Mutex
	loc  Location
	opts Options

	names   []string
	buffers []*seriesBuffer
	counter uint64

	live      bool
	surface   Surface
	frameGap  time.Duration
	lastFrame time.Time

	badArity bool
	log      zerolog.Logger
}

func newRecord(loc Location, opts Options, names []string, log zerolog.Logger) *record {
	r := &record{
		loc:   loc,
		opts:  opts,
		names: names,
		log:   log,
	}
	r.buffers = make([]*seriesBuffer, len(names))
	for i := range r.buffers {
		r.buffers[i] = newSeriesBuffer(opts.Window)
	}
	return r
}

// insert appends one sample per series, positionally, then advances
// the iteration counter by exactly one. Samples without an explicit x
// use the counter value before the increment, so the first call lands
// at x=0. Extra samples beyond the series declared at the first call
// are dropped with a one-time warning.
func (r *record) insert(samples []sample) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(samples)
	if n > len(r.buffers) {
		if !r.badArity {
			r.badArity = true
			r.log.Warn().
				Str("plot", r.opts.Caption).
				Int("declared", len(r.names)).
				Int("got", n).
				Msg("extra values ignored, series are fixed at the first call")
		}
		n = len(r.buffers)
	}
	x0 := float64(r.counter)
	for i := 0; i < n; i++ {
		s := samples[i]
		x := s.x
		if !s.hasX {
			x = x0
		}
		r.buffers[i].push(render.Point{X: x, Y: s.y})
	}
	r.counter++
}

// iteration returns how many insert calls the record has seen.
func (r *record) iteration() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counter
}

// snapshot returns the chart description, output path and live flag
// in one consistent view.
func (r *record) snapshot() (render.Chart, string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.composeLocked(), r.opts.Path, r.live
}

// maybeRenderLive pushes a fresh frame to the record's surface if the
// record is live, the window is still open and the frame-rate throttle
// allows it. The first frame always passes the throttle. Rasterization
// happens outside the record lock.
func (r *record) maybeRenderLive(rend render.Renderer, now time.Time) {
	r.mu.Lock()
	if !r.live || r.surface == nil {
		r.mu.Unlock()
		return
	}
	if r.surface.Closed() {
		r.mu.Unlock()
		return
	}
	if !r.lastFrame.IsZero() && now.Sub(r.lastFrame) < r.frameGap {
		r.mu.Unlock()
		return
	}
	r.lastFrame = now
	ch := r.composeLocked()
	surface := r.surface
	r.mu.Unlock()

	surface.Present(rend.Image(ch))
}
