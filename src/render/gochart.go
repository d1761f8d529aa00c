package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	defaultWidth  = 640
	defaultHeight = 480
)

// Raster is the default go-chart backed Renderer.
type Raster struct{}

// New returns a ready-to-use Raster.
func New() *Raster {
	return &Raster{}
}

// lineStyle returns a style that renders a connected line in the given color.
func lineStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 2,
		StrokeColor: col,
	}
}

// axisRange converts an Axis to a go-chart range. Returns nil for
// unset or degenerate ranges so go-chart derives its own.
func axisRange(a Axis) *chart.ContinuousRange {
	if math.IsNaN(a.Min) || math.IsNaN(a.Max) || a.Max <= a.Min {
		return nil
	}
	return &chart.ContinuousRange{Min: a.Min, Max: a.Max}
}

// Image rasterizes c. It never fails: when go-chart cannot draw the
// chart (no drawable series, render errors) it falls back to a blank
// canvas carrying the caption, so callers always get a visible update.
func (r *Raster) Image(c Chart) image.Image {
	img := r.rasterize(c)
	if c.Note != "" {
		img = stamp(img, c.Note)
	}
	return img
}

func (r *Raster) rasterize(c Chart) image.Image {
	w, h := c.Width, c.Height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}

	series := make([]chart.Series, 0, len(c.Series))
	for _, s := range c.Series {
		xs := make([]float64, 0, len(s.Points)+1)
		ys := make([]float64, 0, len(s.Points)+1)
		for _, p := range s.Points {
			if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
				continue
			}
			xs = append(xs, p.X)
			ys = append(ys, p.Y)
		}
		if len(xs) == 0 {
			continue
		}
		// Pad to at least two X values for go-chart
		if len(xs) == 1 {
			xs = append(xs, xs[0]+1)
			ys = append(ys, ys[0])
		}
		st := lineStyle(drawing.Color{R: s.Color.R, G: s.Color.G, B: s.Color.B, A: s.Color.A})
		series = append(series, chart.ContinuousSeries{Name: s.Name, XValues: xs, YValues: ys, Style: st})
	}
	if len(series) == 0 {
		return blank(w, h, c.Caption)
	}

	xAxis := chart.XAxis{Name: c.X.Name}
	if rng := axisRange(c.X); rng != nil {
		xAxis.Range = rng
	}
	yAxis := chart.YAxis{Name: c.Y.Name}
	if rng := axisRange(c.Y); rng != nil {
		yAxis.Range = rng
	}

	ch := chart.Chart{
		Title:      c.Caption,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 24}},
		Width:      w,
		Height:     h,
		XAxis:      xAxis,
		YAxis:      yAxis,
		Series:     series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return blank(w, h, c.Caption)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return blank(w, h, c.Caption)
	}
	return img
}

// WriteFile rasterizes c and writes it as a PNG, creating the target
// directory as needed.
func (r *Raster) WriteFile(c Chart, path string) error {
	img := r.Image(c)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode chart %q: %w", c.Caption, err)
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create chart directory: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write chart file: %w", err)
	}
	return nil
}

// blank returns a white canvas labeled with the caption. Used whenever
// a real chart cannot be produced.
func blank(w, h int, caption string) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	if strings.TrimSpace(caption) != "" {
		dr := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(color.RGBA{A: 255}),
			Face: basicfont.Face7x13,
			Dot:  fixed.Point26_6{X: fixed.I(8), Y: fixed.I(20)},
		}
		dr.DrawString(caption)
	}
	return img
}

// stamp draws text in the bottom-left corner over a translucent box so
// it stays readable on any chart background.
func stamp(img image.Image, text string) image.Image {
	if img == nil || strings.TrimSpace(text) == "" {
		return img
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)

	face := basicfont.Face7x13
	dr := &font.Drawer{Dst: rgba, Src: image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 255}), Face: face}
	tw := dr.MeasureString(text).Ceil()
	pad := 4
	x := b.Min.X + 8
	y := b.Max.Y - 6
	bg := image.NewUniform(color.RGBA{A: 190})
	rect := image.Rect(x-pad, y-face.Metrics().Ascent.Ceil()-pad, x+tw+pad, y+pad/2)
	draw.Draw(rgba, rect, bg, image.Point{}, draw.Over)
	dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	dr.DrawString(text)
	return rgba
}
