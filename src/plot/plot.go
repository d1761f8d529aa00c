// Package plot records scalar values at call sites and turns each
// call site's history into a line chart.
//
// Drop a single statement into the code under inspection:
//
//	plot.Plot(plot.Value("score", score))
//
// Every call at that source location appends to the same chart, one
// series per name, with the iteration counter as the default x value.
// At the end of the program,
//
//	defer plot.Flush()
//
// writes one PNG per call site (plots/<caption>.png by default).
// Options are captured the first time a call site is seen and ignored
// afterwards:
//
//	plot.Plot(
//		plot.XY("sin", x, math.Sin(x)),
//		plot.XY("cos", x, math.Cos(x)),
//		plot.Caption("Trigonometry"),
//		plot.Window(100),
//	)
//
// With plot.Live() and an installed surface provider (see the live
// package) a call site redraws a window as samples arrive instead of
// writing a file.
//
// Behavior is tunable per process through a debugplotter.yaml file or
// PLOT_* environment variables; see the config package.
package plot

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/fabianboesiger/debug-plotter/src/config"
	"github.com/fabianboesiger/debug-plotter/src/render"
)

var (
	defaultOnce sync.Once
	defaultReg  *registry
)

// defaultRegistry initializes the process-wide registry on first use.
func defaultRegistry() *registry {
	defaultOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			cfg = config.Default()
		}
		defaultReg = newRegistry(cfg)
		if err != nil {
			defaultReg.log.Warn().Err(err).Msg("plot configuration invalid, using defaults")
		}
	})
	return defaultReg
}

// Plot records the given samples under the caller's source location.
// The first call at a location fixes the series names and options;
// later calls only contribute samples. Calls after Flush are no-ops.
func Plot(args ...Arg) {
	defaultRegistry().plot(Here(1), args)
}

// PlotAt is Plot with an explicit location, for wrappers that record
// on behalf of their own callers (combine with Here).
func PlotAt(loc Location, args ...Arg) {
	defaultRegistry().plot(loc, args)
}

// Flush renders every buffered, non-live record to its output file
// and shuts plotting down for the process. Call it once at the end of
// the program, typically via defer in main. Repeated calls return nil.
func Flush() error {
	return defaultRegistry().flush()
}

// SetLogger replaces the diagnostic logger. Records created before
// the call keep the logger they were created with.
func SetLogger(l zerolog.Logger) {
	defaultRegistry().setLogger(l)
}

// SetRenderer replaces the chart backend. Mainly useful in tests.
func SetRenderer(r render.Renderer) {
	defaultRegistry().setRenderer(r)
}

// SetSurfaceProvider installs the window backend used by live-mode
// call sites. Install it before the first Plot call with plot.Live;
// live requests without a provider fall back to file output.
func SetSurfaceProvider(p SurfaceProvider) {
	defaultRegistry().setSurfaceProvider(p)
}
