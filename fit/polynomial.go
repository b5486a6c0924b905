package fit

import (
	"fmt"
	"math"

	"golang.org/x/exp/slices"
)

// Polynomial is a fitted polynomial.
// y = Coeffs[0] + Coeffs[1]*x + ...
type Polynomial struct {
	coeffs []float64
}

// NewPolynomial returns the polynomial with coeffs in ascending order.
func NewPolynomial(coeffs ...float64) Polynomial {
	return Polynomial{coeffs: slices.Clone(coeffs)}
}

// Coeffs returns a copy of the coefficients in ascending order.
func (p Polynomial) Coeffs() []float64 { return slices.Clone(p.coeffs) }

// Degree returns the degree, or -1 for the zero-value Polynomial.
func (p Polynomial) Degree() int { return len(p.coeffs) - 1 }

func (p Polynomial) coeff(i int) float64 {
	if i >= len(p.coeffs) {
		return 0
	}
	return p.coeffs[i]
}

// Intercept is the constant term.
func (p Polynomial) Intercept() float64 { return p.coeff(0) }

// Slope is the linear term.
func (p Polynomial) Slope() float64 { return p.coeff(1) }

// Eval evaluates the polynomial at x.
func (p Polynomial) Eval(x float64) float64 {
	// Horner's method
	var y float64
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		y = y*x + p.coeffs[i]
	}
	return y
}

// EvalAll evaluates the polynomial at each of xs.
func (p Polynomial) EvalAll(xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = p.Eval(x)
	}
	return ys
}

// EvalInts evaluates the polynomial at each of xs.
func (p Polynomial) EvalInts(xs []int) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = p.Eval(float64(x))
	}
	return ys
}

// SolveForX solves for x from y. Only linear polynomials are supported.
// ok is false if there is no single solution (e.g. the slope is zero).
func (p Polynomial) SolveForX(y float64) (x float64, ok bool) {
	if p.Degree() != 1 {
		panic(fmt.Sprintf("only linear polynomials supported (%d coeffs given)", len(p.coeffs)))
	}
	if p.Slope() == 0 {
		return 0, false
	}
	x = (y - p.Intercept()) / p.Slope()
	return x, !math.IsInf(x, 0) && !math.IsNaN(x)
}

func (p Polynomial) String() string {
	if p.Degree() != 1 {
		return fmt.Sprintf("poly%v", p.coeffs)
	}
	sign := '+'
	b := p.Intercept()
	if b < 0 {
		sign = '-'
		b = -b
	}
	return fmt.Sprintf("y = %.4g·x %c %.4g", p.Slope(), sign, b)
}
