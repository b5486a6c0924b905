package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"nyiyui.ca/hato/kaiki"
	"nyiyui.ca/hato/kaiki/chart"
	"nyiyui.ca/hato/kaiki/fit"
	"nyiyui.ca/hato/kaiki/load"
	"nyiyui.ca/hato/kaiki/termview"
	"nyiyui.ca/hato/kaiki/view"
)

var inputPath string
var uiMode string
var solverName string
var pngPath string
var width int
var height int
var titleTmpl string
var captionTmpl string

func main() {
	flag.StringVar(&inputPath, "input", "output.txt", "path to samples (one \"<int> <float>\" per line)")
	flag.StringVar(&uiMode, "ui", "window", "how to show the chart: window, term, or none")
	flag.StringVar(&solverName, "solver", "polyfit", "least-squares solver: polyfit or qr")
	flag.StringVar(&pngPath, "png", "", "also write the chart to this PNG file")
	flag.IntVar(&width, "width", chart.DefaultWidth, "chart width in pixels")
	flag.IntVar(&height, "height", chart.DefaultHeight, "chart height in pixels")
	flag.StringVar(&titleTmpl, "title", chart.DefaultTitle, "chart title (text/template with sprig functions)")
	flag.StringVar(&captionTmpl, "caption", chart.DefaultCaption, "window caption (text/template with sprig functions)")
	level := zap.LevelFlag("log-level", zap.InfoLevel, "set log level")
	flag.Parse()
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(*level)
	dev, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(dev.With(zap.Stringer("run", uuid.New())))
	defer zap.S().Sync()

	err = main2()
	if err != nil {
		zap.S().Errorw("failed", "kind", errorKind(err), "err", err)
		zap.S().Sync()
		os.Exit(1)
	}
}

func main2() error {
	if uiMode != "window" && uiMode != "term" && uiMode != "none" {
		return fmt.Errorf("ui must be window, term, or none (got %q)", uiMode)
	}
	solver, err := fit.SolverByName(solverName)
	if err != nil {
		return err
	}

	s, err := load.File(inputPath)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	p, err := fit.Linear(s, fit.Conf{Solver: solver})
	if err != nil {
		return fmt.Errorf("fit: %w", err)
	}
	r2 := fit.RSquared(s, p)
	zap.S().Infow("fitted",
		"input", inputPath,
		"samples", s.Len(),
		"slope", p.Slope(),
		"intercept", p.Intercept(),
		"r2", r2)

	labels := chart.LabelData{
		Fit:    p,
		R2:     r2,
		N:      s.Len(),
		Path:   inputPath,
		Solver: solver.String(),
	}
	title, err := chart.Label(titleTmpl, labels)
	if err != nil {
		return fmt.Errorf("title: %w", err)
	}
	opts := chart.Options{
		Title:  title,
		Width:  width,
		Height: height,
	}
	if pngPath != "" {
		err = writePNG(pngPath, s, p, opts)
		if err != nil {
			return err
		}
		zap.S().Infof("wrote %s", pngPath)
	}

	switch uiMode {
	case "window":
		img, err := chart.Image(s, p, opts)
		if err != nil {
			return fmt.Errorf("chart: %w", err)
		}
		caption, err := chart.Label(captionTmpl, labels)
		if err != nil {
			return fmt.Errorf("caption: %w", err)
		}
		view.Show(view.Conf{
			Title:   "kaiki: " + inputPath,
			Caption: caption,
		}, img)
	case "term":
		err = termview.Show(opts.Title, s, p)
		if err != nil {
			return fmt.Errorf("termview: %w", err)
		}
	}
	return nil
}

func writePNG(path string, s kaiki.Samples, p fit.Polynomial, opts chart.Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	defer f.Close()
	err = chart.WritePNG(f, s, p, opts)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func errorKind(err error) string {
	var fnf *load.FileNotFoundError
	var pe *load.ParseError
	var ide *fit.InsufficientDataError
	switch {
	case errors.As(err, &fnf):
		return "file-not-found"
	case errors.As(err, &pe):
		return "parse"
	case errors.As(err, &ide):
		return "insufficient-data"
	case errors.Is(err, fit.ErrDegenerate):
		return "degenerate"
	default:
		return "other"
	}
}
