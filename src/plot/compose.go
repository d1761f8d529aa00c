package plot

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/fabianboesiger/debug-plotter/src/render"
)

// axisRangesLocked returns the effective axis bounds: the explicit
// option ranges when set, otherwise the min/max fold over every
// buffered sample of the record. With no finite sample the derived
// bounds collapse to [0,0]. Caller holds r.mu.
func (r *record) axisRangesLocked() (x, y Range) {
	e := emptyExtent()
	for _, b := range r.buffers {
		e.merge(b.extent())
	}
	if !e.ok {
		e = extent{}
	}
	x = Range{Min: e.minX, Max: e.maxX}
	y = Range{Min: e.minY, Max: e.maxY}
	if r.opts.XRange != nil {
		x = *r.opts.XRange
	}
	if r.opts.YRange != nil {
		y = *r.opts.YRange
	}
	return x, y
}

// colorFor assigns series index i of total an evenly spaced hue at
// full saturation and half lightness. Pure: the same inputs always
// produce the same color, and the total hues are pairwise distinct.
func colorFor(index, total int) color.RGBA {
	if total <= 0 {
		total = 1
	}
	hue := float64(index%total) / float64(total) * 360
	cr, cg, cb := colorful.Hsl(hue, 1.0, 0.5).Clamped().RGB255()
	return color.RGBA{R: cr, G: cg, B: cb, A: 255}
}

// composeLocked builds the renderer-ready chart for the record's
// current state. Derived ranges that collapse to a single value are
// widened by one unit so the chart backend always has a drawable
// span; explicit ranges pass through untouched. Caller holds r.mu.
func (r *record) composeLocked() render.Chart {
	series := make([]render.Series, len(r.buffers))
	for i, b := range r.buffers {
		series[i] = render.Series{
			Name:   r.names[i],
			Color:  colorFor(i, len(r.buffers)),
			Points: b.points(),
		}
	}

	x, y := r.axisRangesLocked()
	if r.opts.XRange == nil && x.Max <= x.Min {
		x.Max = x.Min + 1
	}
	if r.opts.YRange == nil && y.Max <= y.Min {
		y.Max = y.Min + 1
	}

	// The call site is stamped into the image unless the caption
	// already names it.
	note := defaultCaption(r.loc)
	if note == r.opts.Caption {
		note = ""
	}

	return render.Chart{
		Caption: r.opts.Caption,
		Width:   r.opts.Width,
		Height:  r.opts.Height,
		X:       render.Axis{Name: r.opts.XLabel, Min: x.Min, Max: x.Max},
		Y:       render.Axis{Name: r.opts.YLabel, Min: y.Min, Max: y.Max},
		Series:  series,
		Note:    note,
	}
}
