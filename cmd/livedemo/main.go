// Command livedemo streams sin and cos into a live chart window.
// It wires the fyne surface provider into the plot package, then
// records from a plain goroutine while fyne owns the main goroutine.
package main

import (
	"flag"
	"math"
	"time"

	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/widget"

	"github.com/fabianboesiger/debug-plotter/src/live"
	"github.com/fabianboesiger/debug-plotter/src/plot"
)

func main() {
	window := flag.Int("window", 100, "samples kept per series")
	delay := flag.Duration("delay", 10*time.Millisecond, "pause between samples")
	flag.Parse()

	a := app.New()
	live.Install(a)

	ctrl := a.NewWindow("livedemo")
	ctrl.SetContent(widget.NewLabel("Recording... close this window to quit."))
	ctrl.SetMaster()

	go func() {
		for i := 0; ; i++ {
			x := float64(i) / 100 * 2 * math.Pi
			plot.Plot(
				plot.XY("sin(x)", x, math.Sin(x)),
				plot.XY("cos(x)", x, math.Cos(x)),
				plot.Caption("Live Trigonometry"),
				plot.Size(1080, 720),
				plot.Window(*window),
				plot.XLabel("x"),
				plot.Live(),
			)
			time.Sleep(*delay)
		}
	}()

	ctrl.ShowAndRun()
	_ = plot.Flush()
}
