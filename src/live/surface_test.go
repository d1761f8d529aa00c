package live

import (
	"image"
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSurfaceShowsFrames(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	p := NewProvider(a)
	s, err := p.NewSurface("Live Test", 120, 90)
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	if s.Closed() {
		t.Fatal("fresh surface reports closed")
	}

	frame := image.NewRGBA(image.Rect(0, 0, 120, 90))
	s.Present(frame)

	w, ok := s.(*window)
	if !ok {
		t.Fatalf("surface type = %T, want *window", s)
	}
	if w.img.Image != frame {
		t.Error("presented frame is not on the canvas")
	}
}

func TestClosedWindowDropsFrames(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	s, err := NewProvider(a).NewSurface("Live Test", 60, 40)
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	w := s.(*window)

	first := image.NewRGBA(image.Rect(0, 0, 60, 40))
	s.Present(first)

	w.win.Close()
	if !s.Closed() {
		t.Fatal("surface not marked closed after window close")
	}

	late := image.NewRGBA(image.Rect(0, 0, 60, 40))
	s.Present(late)
	if w.img.Image == late {
		t.Error("closed surface accepted a new frame")
	}
}
