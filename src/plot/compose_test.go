package plot

import (
	"testing"

	"github.com/fabianboesiger/debug-plotter/src/render"
)

func lockedRanges(rec *record) (Range, Range) {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return rec.axisRangesLocked()
}

func lockedChart(rec *record) render.Chart {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return rec.composeLocked()
}

func TestAxisRangesDerivedAcrossSeries(t *testing.T) {
	rec := makeRecord(t, Options{}, "a", "b")
	rec.insert([]sample{at("a", 1, 5), at("b", -2, 0)})
	rec.insert([]sample{at("a", 4, -1), at("b", 3, 8)})

	x, y := lockedRanges(rec)
	if x.Min != -2 || x.Max != 4 {
		t.Errorf("x range = [%v, %v], want [-2, 4]", x.Min, x.Max)
	}
	if y.Min != -1 || y.Max != 8 {
		t.Errorf("y range = [%v, %v], want [-1, 8]", y.Min, y.Max)
	}
}

func TestAxisRangesExplicitOverrideWins(t *testing.T) {
	rec := makeRecord(t, Options{
		XRange: &Range{Min: 0, Max: 500},
		YRange: &Range{Min: 0, Max: 500},
	}, "y")
	// Samples far outside the override must not widen it.
	rec.insert([]sample{at("y", -100, 9999)})
	rec.insert([]sample{at("y", 1000, -9999)})

	x, y := lockedRanges(rec)
	if x != (Range{Min: 0, Max: 500}) {
		t.Errorf("x range = %+v, want the explicit [0, 500]", x)
	}
	if y != (Range{Min: 0, Max: 500}) {
		t.Errorf("y range = %+v, want the explicit [0, 500]", y)
	}
}

func TestAxisRangesEmptyRecordIsDegenerate(t *testing.T) {
	rec := makeRecord(t, Options{}, "y")
	x, y := lockedRanges(rec)
	if x != (Range{}) || y != (Range{}) {
		t.Errorf("empty record ranges = %+v / %+v, want zero ranges", x, y)
	}
}

func TestColorForIsPure(t *testing.T) {
	for i := 0; i < 6; i++ {
		if colorFor(i, 6) != colorFor(i, 6) {
			t.Errorf("colorFor(%d, 6) not stable across calls", i)
		}
	}
}

func TestColorForDistinctPerRecord(t *testing.T) {
	for _, total := range []int{1, 2, 3, 5, 8, 12} {
		seen := make(map[[3]uint8]int, total)
		for i := 0; i < total; i++ {
			c := colorFor(i, total)
			key := [3]uint8{c.R, c.G, c.B}
			if prev, dup := seen[key]; dup {
				t.Errorf("colorFor(%d, %d) collides with index %d: %v", i, total, prev, c)
			}
			seen[key] = i
		}
	}
}

func TestComposeChart(t *testing.T) {
	rec := makeRecord(t, Options{Caption: "Waves", XLabel: "t", YLabel: "amp"}, "sin", "cos")
	rec.insert([]sample{at("sin", 0, 0), at("cos", 0, 1)})
	rec.insert([]sample{at("sin", 1, 0.8), at("cos", 1, 0.5)})

	ch := lockedChart(rec)
	if ch.Caption != "Waves" {
		t.Errorf("Caption = %q, want %q", ch.Caption, "Waves")
	}
	if ch.X.Name != "t" || ch.Y.Name != "amp" {
		t.Errorf("axis names = %q/%q, want t/amp", ch.X.Name, ch.Y.Name)
	}
	if ch.Width != 640 || ch.Height != 480 {
		t.Errorf("size = %dx%d, want default 640x480", ch.Width, ch.Height)
	}
	if len(ch.Series) != 2 {
		t.Fatalf("series count = %d, want 2", len(ch.Series))
	}
	if ch.Series[0].Name != "sin" || ch.Series[1].Name != "cos" {
		t.Errorf("series order = %q, %q, want sin, cos", ch.Series[0].Name, ch.Series[1].Name)
	}
	if ch.Series[0].Color == ch.Series[1].Color {
		t.Error("both series share a color")
	}
	if len(ch.Series[0].Points) != 2 {
		t.Errorf("sin points = %d, want 2", len(ch.Series[0].Points))
	}
	if ch.Note == "" {
		t.Error("Note is empty, want the call site")
	}
}

func TestComposePadsDegenerateDerivedRanges(t *testing.T) {
	rec := makeRecord(t, Options{}, "flat")
	rec.insert([]sample{at("flat", 2, 5)})

	ch := lockedChart(rec)
	if ch.X.Min != 2 || ch.X.Max != 3 {
		t.Errorf("degenerate x widened to [%v, %v], want [2, 3]", ch.X.Min, ch.X.Max)
	}
	if ch.Y.Min != 5 || ch.Y.Max != 6 {
		t.Errorf("degenerate y widened to [%v, %v], want [5, 6]", ch.Y.Min, ch.Y.Max)
	}
}

func TestComposeKeepsExplicitRangesVerbatim(t *testing.T) {
	rec := makeRecord(t, Options{XRange: &Range{Min: 3, Max: 3}}, "y")
	rec.insert([]sample{at("y", 1, 1)})

	ch := lockedChart(rec)
	if ch.X.Min != 3 || ch.X.Max != 3 {
		t.Errorf("explicit degenerate x = [%v, %v], want untouched [3, 3]", ch.X.Min, ch.X.Max)
	}
}

func TestComposeEmptyRecord(t *testing.T) {
	rec := makeRecord(t, Options{}, "y")
	ch := lockedChart(rec)
	if len(ch.Series) != 1 {
		t.Fatalf("series count = %d, want 1", len(ch.Series))
	}
	if len(ch.Series[0].Points) != 0 {
		t.Errorf("empty record produced %d points", len(ch.Series[0].Points))
	}
	// Zero ranges are widened so the chart backend has a span.
	if !(ch.X.Max > ch.X.Min) || !(ch.Y.Max > ch.Y.Min) {
		t.Errorf("empty record ranges x[%v,%v] y[%v,%v] are not drawable",
			ch.X.Min, ch.X.Max, ch.Y.Min, ch.Y.Max)
	}
}

func TestComposeNoteOmittedWhenCaptionIsCallSite(t *testing.T) {
	rec := makeRecord(t, Options{}, "y")
	ch := lockedChart(rec)
	if ch.Caption != defaultCaption(testLoc) {
		t.Fatalf("default caption = %q, want %q", ch.Caption, defaultCaption(testLoc))
	}
	if ch.Note != "" {
		t.Errorf("Note = %q, want empty when the caption already names the call site", ch.Note)
	}
}
