package kaiki

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Point is a single sample.
type Point struct {
	X int
	Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %g)", p.X, p.Y)
}

// Samples are index-aligned x and y sequences, in the order they were read.
// Samples is never mutated after creation; use the accessors, which return copies.
type Samples struct {
	x []int
	y []float64
}

// FromPoints builds Samples from points, keeping their order.
func FromPoints(points []Point) Samples {
	s := Samples{
		x: make([]int, len(points)),
		y: make([]float64, len(points)),
	}
	for i, p := range points {
		s.x[i] = p.X
		s.y[i] = p.Y
	}
	return s
}

// Len returns the number of samples.
func (s Samples) Len() int { return len(s.x) }

// X returns a copy of the x-values.
func (s Samples) X() []int { return slices.Clone(s.x) }

// Y returns a copy of the y-values.
func (s Samples) Y() []float64 { return slices.Clone(s.y) }

// At returns the i-th sample.
func (s Samples) At(i int) Point {
	return Point{X: s.x[i], Y: s.y[i]}
}

// XFloat returns the x-values converted to float64.
func (s Samples) XFloat() []float64 {
	xs := make([]float64, len(s.x))
	for i, x := range s.x {
		xs[i] = float64(x)
	}
	return xs
}

// Bounds returns the smallest and largest x and y values.
// ok is false if there are no samples.
func (s Samples) Bounds() (minX, maxX int, minY, maxY float64, ok bool) {
	if len(s.x) == 0 {
		return
	}
	minX, maxX = s.x[0], s.x[0]
	minY, maxY = s.y[0], s.y[0]
	for i := range s.x {
		if s.x[i] < minX {
			minX = s.x[i]
		}
		if s.x[i] > maxX {
			maxX = s.x[i]
		}
		if s.y[i] < minY {
			minY = s.y[i]
		}
		if s.y[i] > maxY {
			maxY = s.y[i]
		}
	}
	return minX, maxX, minY, maxY, true
}

func (s Samples) String() string {
	return fmt.Sprintf("<samples:%d>", len(s.x))
}
