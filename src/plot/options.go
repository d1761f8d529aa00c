package plot

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fabianboesiger/debug-plotter/src/config"
)

// Range is a closed numeric interval used for explicit axis bounds.
type Range struct {
	Min float64
	Max float64
}

// Options configure one call site's chart. They are captured on the
// first call at a site; later calls at the same site reuse the stored
// snapshot and ignore any differing option arguments. The zero value
// means "derive everything".
type Options struct {
	// Caption titles the chart and names the output file or live
	// window. Defaults to the call site, e.g. "pkg/main.go:42".
	Caption string
	// Width and Height in pixels. Zero falls back to the configured
	// defaults (640x480 out of the box).
	Width  int
	Height int
	// XLabel and YLabel describe the axes. Empty leaves them bare.
	XLabel string
	YLabel string
	// Path overrides the output file. Defaults to
	// <dir>/<sanitized caption>.png under the configured plot dir.
	Path string
	// XRange and YRange pin the axis bounds. Nil derives them from
	// the buffered samples.
	XRange *Range
	YRange *Range
	// Window caps how many samples each series retains; the oldest
	// sample is evicted first. Zero keeps everything.
	Window int
	// Live redraws a window as samples arrive instead of writing a
	// file at teardown. Needs an installed surface provider.
	Live bool
}

// check panics on malformed options. Options are written by the
// programmer at the call site, so a bad value is a defect.
func (o Options) check() {
	if o.Window < 0 {
		panic(fmt.Sprintf("plot: negative window %d", o.Window))
	}
	if o.Width < 0 || o.Height < 0 {
		panic(fmt.Sprintf("plot: negative size %dx%d", o.Width, o.Height))
	}
	if o.XRange != nil && !(o.XRange.Min <= o.XRange.Max) {
		panic(fmt.Sprintf("plot: invalid x range [%v, %v]", o.XRange.Min, o.XRange.Max))
	}
	if o.YRange != nil && !(o.YRange.Min <= o.YRange.Max) {
		panic(fmt.Sprintf("plot: invalid y range [%v, %v]", o.YRange.Min, o.YRange.Max))
	}
}

// resolveOptions fills the unset fields of o from the process config
// and the call site. Caption and Path are pinned here because they
// name the live window and the save target for the record's lifetime.
func resolveOptions(loc Location, o Options, cfg config.Config) Options {
	o.check()
	if o.Caption == "" {
		o.Caption = defaultCaption(loc)
	}
	if o.Path == "" {
		o.Path = filepath.Join(cfg.Dir, sanitizeCaption(o.Caption)+".png")
	}
	if o.Width <= 0 {
		o.Width = cfg.Width
	}
	if o.Height <= 0 {
		o.Height = cfg.Height
	}
	return o
}

var captionSanitizer = strings.NewReplacer("/", "-", "\\", "-", " ", "_")

// sanitizeCaption makes a caption safe to embed in a file name by
// replacing path separators and spaces.
func sanitizeCaption(caption string) string {
	return captionSanitizer.Replace(caption)
}
