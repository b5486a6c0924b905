package fit

import (
	"fmt"

	"github.com/openacid/slimarray/polyfit"
	"gonum.org/v1/gonum/mat"
)

// Solver finds least-squares polynomial coefficients (ascending order) for the points (xs[i], ys[i]).
type Solver interface {
	Solve(xs, ys []float64, degree int) ([]float64, error)
	String() string
}

// Polyfit solves the normal equations using slimarray's polyfit.
type Polyfit struct{}

func (Polyfit) Solve(xs, ys []float64, degree int) ([]float64, error) {
	f := polyfit.NewFit(xs, ys, degree)
	coeffs := f.Solve()
	if len(coeffs) > degree+1 {
		return nil, fmt.Errorf("polyfit: got %d coeffs for degree %d", len(coeffs), degree)
	}
	// polyfit lowers the degree when there are too few points
	for len(coeffs) < degree+1 {
		coeffs = append(coeffs, 0)
	}
	return coeffs, nil
}

func (Polyfit) String() string { return "polyfit" }

// QR solves the least-squares problem on the Vandermonde matrix using gonum.
type QR struct{}

func (QR) Solve(xs, ys []float64, degree int) ([]float64, error) {
	a := mat.NewDense(len(xs), degree+1, nil)
	for i, x := range xs {
		p := 1.0
		for j := 0; j <= degree; j++ {
			a.Set(i, j, p)
			p *= x
		}
	}
	b := mat.NewVecDense(len(ys), ys)
	var coef mat.VecDense
	err := coef.SolveVec(a, b)
	if err != nil {
		return nil, fmt.Errorf("qr: %w", err)
	}
	coeffs := make([]float64, degree+1)
	for j := range coeffs {
		coeffs[j] = coef.AtVec(j)
	}
	return coeffs, nil
}

func (QR) String() string { return "qr" }

// SolverByName returns the solver named name ("polyfit" or "qr").
func SolverByName(name string) (Solver, error) {
	switch name {
	case "polyfit", "":
		return Polyfit{}, nil
	case "qr":
		return QR{}, nil
	default:
		return nil, fmt.Errorf("unknown solver %q", name)
	}
}
