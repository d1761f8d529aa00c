// Package live shows plots in fyne windows while the instrumented
// program runs.
//
// Wire it up once in main, then any call site using plot.Live() gets
// its own window:
//
//	a := app.New()
//	live.Install(a)
//	go instrumentedWork()
//	a.Run()
//
// The instrumented code must run off the fyne main goroutine; window
// creation and frame updates are marshaled onto the main loop
// internally.
package live

import (
	"image"
	"sync/atomic"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"github.com/fabianboesiger/debug-plotter/src/plot"
)

// Provider opens one fyne window per live call site.
type Provider struct {
	app fyne.App
}

// NewProvider returns a Provider backed by the given fyne app.
func NewProvider(a fyne.App) *Provider {
	return &Provider{app: a}
}

// Install registers a provider for the app with the plot package and
// returns it. Call before the first live Plot invocation.
func Install(a fyne.App) *Provider {
	p := NewProvider(a)
	plot.SetSurfaceProvider(p)
	return p
}

// NewSurface opens a window titled caption, sized to the chart.
// Safe to call from any goroutine except the fyne main loop.
func (p *Provider) NewSurface(caption string, width, height int) (plot.Surface, error) {
	s := &window{}
	fyne.DoAndWait(func() {
		w := p.app.NewWindow(caption)
		img := canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, width, height)))
		img.FillMode = canvas.ImageFillContain
		img.SetMinSize(fyne.NewSize(float32(width), float32(height)))
		w.SetContent(img)
		w.SetOnClosed(func() { s.closed.Store(true) })
		w.Show()
		s.win = w
		s.img = img
	})
	return s, nil
}

// window is one live chart window.
type window struct {
	win    fyne.Window
	img    *canvas.Image
	closed atomic.Bool
}

// Present swaps the displayed frame. Rasterization already happened
// on the caller's goroutine, so the marshaled update stays cheap.
func (s *window) Present(frame image.Image) {
	if s.closed.Load() {
		return
	}
	fyne.Do(func() {
		s.img.Image = frame
		s.img.Refresh()
	})
}

// Closed reports whether the viewer dismissed the window.
func (s *window) Closed() bool {
	return s.closed.Load()
}
