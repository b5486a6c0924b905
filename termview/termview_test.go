package termview

import (
	"errors"
	"image"
	"testing"

	"github.com/gizak/termui/v3"
	"nyiyui.ca/hato/kaiki"
	"nyiyui.ca/hato/kaiki/fit"
)

var testSamples = kaiki.FromPoints([]kaiki.Point{
	{X: 0, Y: 1},
	{X: 5, Y: 4},
	{X: 10, Y: 9},
})

func TestProjectCorners(t *testing.T) {
	inner := image.Rect(1, 1, 41, 11)
	f := NewFrame(inner, testSamples, nil)
	type setup struct {
		name string
		x, y float64
		want image.Point
	}
	for _, s := range []setup{
		{"bottom-left", 0, 1, image.Pt(2, 43)},
		{"top-right", 10, 9, image.Pt(81, 4)},
		{"middle", 5, 5, image.Pt(42, 23)},
	} {
		t.Run(s.name, func(t *testing.T) {
			got := f.Project(s.x, s.y)
			if got != s.want {
				t.Fatalf("want %s, got %s", s.want, got)
			}
			if !got.In(f.Dots) {
				t.Fatalf("%s outside %s", got, f.Dots)
			}
		})
	}
}

func TestFrameIncludesFitted(t *testing.T) {
	f := NewFrame(image.Rect(0, 0, 10, 10), testSamples, []float64{-3, 12})
	if f.MinY != -3 || f.MaxY != 12 {
		t.Fatalf("y range: got [%g, %g]", f.MinY, f.MaxY)
	}
}

func TestProjectFlat(t *testing.T) {
	flat := kaiki.FromPoints([]kaiki.Point{{X: 2, Y: 7}, {X: 2, Y: 7}})
	f := NewFrame(image.Rect(0, 0, 10, 5), flat, nil)
	got := f.Project(2, 7)
	if got != image.Pt(9, 10) {
		t.Fatalf("want middle of frame, got %s", got)
	}
}

func TestNewCanvasDraws(t *testing.T) {
	rect := image.Rect(0, 0, 40, 12)
	c := newCanvas("fit", testSamples, fit.NewPolynomial(0.5, 0.8), rect)
	buf := termui.NewBuffer(rect)
	c.Draw(buf)
	var braille int
	for _, cell := range buf.CellMap {
		if cell.Rune >= 0x2801 && cell.Rune <= 0x28ff {
			braille++
		}
	}
	if braille == 0 {
		t.Fatal("nothing drawn")
	}
}

func TestShowInitError(t *testing.T) {
	errNoTerm := errors.New("no terminal")
	initTerminal = func() error { return errNoTerm }
	defer func() { initTerminal = termui.Init }()
	err := Show("fit", testSamples, fit.NewPolynomial(0, 1))
	if !errors.Is(err, errNoTerm) {
		t.Fatalf("want wrapped init error, got %v", err)
	}
}
