// Command surfaceprobe checks that a live chart window can come up in
// the current environment. It opens one surface, pushes synthetic
// frames through the renderer for five seconds, then exits. Run it
// first when livedemo shows nothing.
package main

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/fabianboesiger/debug-plotter/src/live"
	"github.com/fabianboesiger/debug-plotter/src/render"
)

func main() {
	fmt.Println("[surfaceprobe] starting minimal surface check")
	a := app.New()
	prov := live.NewProvider(a)

	go func() {
		surf, err := prov.NewSurface("Surface Probe", 480, 320)
		if err != nil {
			fmt.Println("[surfaceprobe] opening surface failed:", err)
			fyne.Do(func() { a.Quit() })
			return
		}
		rend := render.New()
		for i := 0; i < 50 && !surf.Closed(); i++ {
			surf.Present(rend.Image(probeChart(i)))
			time.Sleep(100 * time.Millisecond)
		}
		fmt.Println("[surfaceprobe] closing via fyne.Do")
		fyne.Do(func() { a.Quit() })
	}()

	a.Run()
	fmt.Println("[surfaceprobe] exited cleanly")
}

// probeChart is a scrolling sine so each frame is visibly different.
func probeChart(step int) render.Chart {
	pts := make([]render.Point, 60)
	for i := range pts {
		x := float64(step+i) / 10
		pts[i] = render.Point{X: x, Y: math.Sin(x)}
	}
	return render.Chart{
		Caption: "Surface Probe",
		Width:   480,
		Height:  320,
		Series: []render.Series{
			{Name: "probe", Color: color.RGBA{R: 0xd9, G: 0x26, B: 0x26, A: 0xff}, Points: pts},
		},
	}
}
