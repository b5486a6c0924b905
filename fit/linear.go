// Package fit fits degree-1 polynomials to samples by least squares.
package fit

import (
	"fmt"
	"math"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/stat"
	"nyiyui.ca/hato/kaiki"
)

// Degree of the fitted polynomial.
const Degree = 1

type Conf struct {
	// Solver defaults to Polyfit if nil.
	Solver Solver
}

// Linear fits y = a*x + b to s, minimizing the sum of squared residuals.
func Linear(s kaiki.Samples, conf Conf) (Polynomial, error) {
	if s.Len() < MinSamples {
		return Polynomial{}, &InsufficientDataError{Count: s.Len()}
	}
	xs := s.X()
	if slices.IndexFunc(xs, func(x int) bool { return x != xs[0] }) == -1 {
		return Polynomial{}, ErrDegenerate
	}
	solver := conf.Solver
	if solver == nil {
		solver = Polyfit{}
	}
	us, mean, scale := normalize(s.XFloat())
	c, err := solver.Solve(us, s.Y(), Degree)
	if err != nil {
		return Polynomial{}, fmt.Errorf("solve: %w", err)
	}
	// y = c0 + c1*(x-mean)/scale
	slope := c[1] / scale
	p := NewPolynomial(c[0]-slope*mean, slope)
	zap.S().Debugw("fitted", "solver", solver, "samples", s.Len(), "mean", mean, "scale", scale, "coeffs", p.Coeffs())
	return p, nil
}

// normalize maps xs onto [-1, 1] around their mean.
// Solvers only see the normalized values, so large x (e.g. Unix timestamps) stay well-conditioned.
func normalize(xs []float64) (us []float64, mean, scale float64) {
	mean = stat.Mean(xs, nil)
	for _, x := range xs {
		scale = math.Max(scale, math.Abs(x-mean))
	}
	us = make([]float64, len(xs))
	for i, x := range xs {
		us[i] = (x - mean) / scale
	}
	return us, mean, scale
}

// RSquared returns the coefficient of determination of the linear polynomial p over s.
// It is NaN if all y are equal.
func RSquared(s kaiki.Samples, p Polynomial) float64 {
	return stat.RSquared(s.XFloat(), s.Y(), nil, p.Intercept(), p.Slope())
}
