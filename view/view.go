// Package view shows a chart image in a window.
package view

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"
)

type Conf struct {
	Title string
	// Caption is shown below the chart. Hidden if empty.
	Caption string
}

// Show opens a window with img and blocks until the window is closed.
// Escape or q also close the window.
func Show(conf Conf, img image.Image) {
	a := app.New()
	w := newWindow(a, conf, img)
	zap.S().Debugw("showing window", "title", conf.Title)
	w.ShowAndRun()
}

func newWindow(a fyne.App, conf Conf, img image.Image) fyne.Window {
	w := a.NewWindow(conf.Title)

	chart := canvas.NewImageFromImage(img)
	chart.FillMode = canvas.ImageFillContain
	b := img.Bounds()
	chart.SetMinSize(fyne.NewSize(float32(b.Dx())/2, float32(b.Dy())/2))

	var content fyne.CanvasObject = chart
	if conf.Caption != "" {
		content = container.NewBorder(nil, widget.NewLabel(conf.Caption), nil, nil, chart)
	}
	w.SetContent(content)
	w.Resize(fyne.NewSize(float32(b.Dx()), float32(b.Dy())))
	w.Canvas().SetOnTypedKey(func(k *fyne.KeyEvent) {
		switch k.Name {
		case fyne.KeyEscape, fyne.KeyQ:
			w.Close()
		}
	})
	return w
}
