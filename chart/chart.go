// Package chart draws samples and their fitted line as one chart.
package chart

import (
	"fmt"
	"image"
	"io"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"nyiyui.ca/hato/kaiki"
	"nyiyui.ca/hato/kaiki/fit"
)

const (
	DefaultWidth  = 1024
	DefaultHeight = 768
)

var (
	samplesColor = drawing.ColorFromHex("1f77b4")
	fitColor     = drawing.ColorFromHex("ff7f0e")
)

type Options struct {
	// Title defaults to the fitted function.
	Title string
	// Width and Height in pixels; zero means the default.
	Width  int
	Height int
}

// Build returns a chart with the samples as unconnected dots and p evaluated at the samples' x as a line.
func Build(s kaiki.Samples, p fit.Polynomial, opts Options) chart.Chart {
	xs := s.XFloat()
	ys := s.Y()
	fitted := p.EvalInts(s.X())

	if opts.Width == 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height == 0 {
		opts.Height = DefaultHeight
	}
	if opts.Title == "" {
		opts.Title = p.String()
	}

	graph := chart.Chart{
		Title:  opts.Title,
		Width:  opts.Width,
		Height: opts.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:  "x",
			Range: padded(xs),
		},
		YAxis: chart.YAxis{
			Name:  "y",
			Range: padded(append(ys, fitted...)),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name: "samples",
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    4,
					DotColor:    samplesColor,
				},
				XValues: xs,
				YValues: ys,
			},
			chart.ContinuousSeries{
				Name: "fit",
				Style: chart.Style{
					StrokeWidth: 2,
					StrokeColor: fitColor,
				},
				XValues: xs,
				YValues: fitted,
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return graph
}

// padded returns a range covering vs with some margin, so that constant values still get a non-empty range.
func padded(vs []float64) *chart.ContinuousRange {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range vs {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if len(vs) == 0 {
		lo, hi = 0, 1
	}
	margin := (hi - lo) * 0.05
	if margin == 0 {
		margin = math.Max(math.Abs(lo)*0.05, 1)
	}
	return &chart.ContinuousRange{Min: lo - margin, Max: hi + margin}
}

// WritePNG renders the chart for s and p as a PNG to w.
func WritePNG(w io.Writer, s kaiki.Samples, p fit.Polynomial, opts Options) error {
	graph := Build(s, p, opts)
	err := graph.Render(chart.PNG, w)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// Image renders the chart for s and p.
func Image(s kaiki.Samples, p fit.Polynomial, opts Options) (image.Image, error) {
	collector := &chart.ImageWriter{}
	err := WritePNG(collector, s, p, opts)
	if err != nil {
		return nil, err
	}
	img, err := collector.Image()
	if err != nil {
		return nil, fmt.Errorf("collect image: %w", err)
	}
	return img, nil
}
