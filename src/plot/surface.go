package plot

import "image"

// Surface displays successive frames of one live chart. Implemented
// by the live package on top of fyne; tests supply fakes.
type Surface interface {
	// Present replaces the displayed frame. Called from the
	// instrumented goroutine, never concurrently for one surface.
	Present(img image.Image)
	// Closed reports whether the viewer dismissed the window.
	// Updates after that are dropped silently.
	Closed() bool
}

// SurfaceProvider opens surfaces for records that request live mode.
// Install one once at program start via SetSurfaceProvider; without a
// provider, live records fall back to buffered file output.
type SurfaceProvider interface {
	NewSurface(caption string, width, height int) (Surface, error)
}
