// Package render turns chart descriptions into PNG images and files.
//
// The package is deliberately dumb: it receives a fully resolved Chart
// (caption, axes, colored series) and rasterizes it with go-chart. All
// decisions about what a chart contains are made by the caller.
package render

import (
	"image"
	"image/color"
)

// Point is a single sample in chart space.
type Point struct {
	X float64
	Y float64
}

// Series is one named polyline on a chart.
type Series struct {
	Name   string
	Color  color.RGBA
	Points []Point
}

// Axis describes one chart axis. When Max <= Min the range is treated
// as unset and the backend derives it from the data.
type Axis struct {
	Name string
	Min  float64
	Max  float64
}

// Chart is a complete, renderer-independent chart description.
type Chart struct {
	Caption string
	Width   int
	Height  int
	X       Axis
	Y       Axis
	Series  []Series
	// Note is stamped into the bottom-left corner of the output,
	// typically the call site the chart was recorded at.
	Note string
}

// Renderer rasterizes charts. Image never fails: backends fall back to
// a labeled blank canvas when the chart cannot be drawn.
type Renderer interface {
	Image(c Chart) image.Image
	WriteFile(c Chart, path string) error
}
