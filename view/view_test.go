package view

import (
	"image"
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
)

func placeholder() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 100, 80))
	for x := 0; x < 100; x++ {
		for y := 0; y < 80; y++ {
			img.Set(x, y, color.White)
		}
	}
	return img
}

func TestNewWindow(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()
	w := newWindow(a, Conf{Title: "y = 2·x + 0", Caption: "3 samples"}, placeholder())
	if w.Title() != "y = 2·x + 0" {
		t.Fatalf("title: got %q", w.Title())
	}
	border, ok := w.Content().(*fyne.Container)
	if !ok {
		t.Fatalf("content: want container, got %T", w.Content())
	}
	var foundImage, foundLabel bool
	for _, o := range border.Objects {
		switch o := o.(type) {
		case *canvas.Image:
			foundImage = true
		case *widget.Label:
			foundLabel = o.Text == "3 samples"
		}
	}
	if !foundImage || !foundLabel {
		t.Fatalf("want image and caption, got %#v", border.Objects)
	}
}

func TestNewWindowNoCaption(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()
	w := newWindow(a, Conf{Title: "chart"}, placeholder())
	if _, ok := w.Content().(*canvas.Image); !ok {
		t.Fatalf("content: want image only, got %T", w.Content())
	}
}
