package fit

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPolynomialEval(t *testing.T) {
	p := NewPolynomial(1, 2) // 2x + 1
	if diff := cmp.Diff([]float64{-1, 1, 3, 9}, p.EvalInts([]int{-1, 0, 1, 4})); diff != "" {
		t.Errorf("EvalInts (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{2, 0}, p.EvalAll([]float64{0.5, -0.5})); diff != "" {
		t.Errorf("EvalAll (-want +got):\n%s", diff)
	}
	q := NewPolynomial(1, 0, 3) // 3x² + 1
	if got := q.Eval(2); got != 13 {
		t.Errorf("quadratic: want 13, got %g", got)
	}
}

func TestPolynomialImmutable(t *testing.T) {
	coeffs := []float64{1, 2}
	p := NewPolynomial(coeffs...)
	coeffs[0] = 100
	p.Coeffs()[1] = 100
	if diff := cmp.Diff([]float64{1, 2}, p.Coeffs()); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestSolveForX(t *testing.T) {
	p := NewPolynomial(-4, 2)
	x, ok := p.SolveForX(6)
	if !ok || x != 5 {
		t.Fatalf("want (5, true), got (%g, %t)", x, ok)
	}
	if _, ok := NewPolynomial(3, 0).SolveForX(3); ok {
		t.Fatal("flat line: want ok=false")
	}
}

func TestPolynomialString(t *testing.T) {
	type setup struct {
		p    Polynomial
		want string
	}
	for _, s := range []setup{
		{NewPolynomial(0.5, 2), "y = 2·x + 0.5"},
		{NewPolynomial(-3, 1.25), "y = 1.25·x - 3"},
	} {
		if got := s.p.String(); got != s.want {
			t.Errorf("want %q, got %q", s.want, got)
		}
	}
}
