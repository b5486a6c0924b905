// Package termview draws samples and their fitted line in the terminal.
package termview

import (
	"fmt"
	"image"
	"math"

	"github.com/gizak/termui/v3"
	"go.uber.org/zap"
	"nyiyui.ca/hato/kaiki"
	"nyiyui.ca/hato/kaiki/fit"
)

const (
	samplesColor = termui.ColorCyan
	fitColor     = termui.ColorYellow
)

// initTerminal is replaced in tests, where there may be no terminal.
var initTerminal = termui.Init

// Show draws the chart for s and p over the whole terminal and blocks until q or C-c is pressed.
func Show(title string, s kaiki.Samples, p fit.Polynomial) error {
	err := initTerminal()
	if err != nil {
		return fmt.Errorf("termui init: %w", err)
	}
	defer termui.Close()
	draw := func() {
		w, h := termui.TerminalDimensions()
		termui.Render(newCanvas(title, s, p, image.Rect(0, 0, w, h)))
	}
	draw()
	for e := range termui.PollEvents() {
		switch e.ID {
		case "q", "<C-c>":
			return nil
		case "<Resize>":
			termui.Clear()
			draw()
		default:
			zap.S().Debugf("termview: ignored event %s", e.ID)
		}
	}
	return nil
}

func newCanvas(title string, s kaiki.Samples, p fit.Polynomial, rect image.Rectangle) *termui.Canvas {
	c := termui.NewCanvas()
	c.Title = title
	c.SetRect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Max.Y)
	xs := s.X()
	ys := s.Y()
	fitted := p.EvalInts(xs)
	f := NewFrame(c.Inner, s, fitted)
	for i := range xs {
		c.SetPoint(f.Project(float64(xs[i]), ys[i]), samplesColor)
	}
	for i := 1; i < len(xs); i++ {
		c.SetLine(
			f.Project(float64(xs[i-1]), fitted[i-1]),
			f.Project(float64(xs[i]), fitted[i]),
			fitColor,
		)
	}
	return c
}

// Frame maps data coordinates onto a braille canvas.
// Each terminal cell holds 2×4 braille dots.
type Frame struct {
	// Dots is the drawable area in braille dot coordinates.
	Dots       image.Rectangle
	MinX, MaxX float64
	MinY, MaxY float64
}

// NewFrame returns a frame covering the samples and the fitted values, drawn inside the cells of inner.
func NewFrame(inner image.Rectangle, s kaiki.Samples, fitted []float64) Frame {
	f := Frame{
		Dots: image.Rect(inner.Min.X*2, inner.Min.Y*4, inner.Max.X*2, inner.Max.Y*4),
	}
	minX, maxX, minY, maxY, ok := s.Bounds()
	if !ok {
		f.MaxX, f.MaxY = 1, 1
		return f
	}
	for _, y := range fitted {
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}
	f.MinX, f.MaxX = float64(minX), float64(maxX)
	f.MinY, f.MaxY = minY, maxY
	return f
}

// Project returns the dot for (x, y). Larger y is drawn higher.
func (f Frame) Project(x, y float64) image.Point {
	return image.Point{
		X: f.Dots.Min.X + scale(x, f.MinX, f.MaxX, f.Dots.Dx()-1),
		Y: f.Dots.Max.Y - 1 - scale(y, f.MinY, f.MaxY, f.Dots.Dy()-1),
	}
}

// scale maps v in [lo, hi] to [0, n]; a zero-width range maps to the middle.
func scale(v, lo, hi float64, n int) int {
	if n <= 0 {
		return 0
	}
	if hi == lo {
		return n / 2
	}
	return int(math.Round((v - lo) / (hi - lo) * float64(n)))
}
