// Package ode integrates first-order vector ODEs y' = f(t, y) on a fixed,
// uniform grid with the explicit midpoint method.
package ode

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Func returns dy/dt at (t, y). It must not retain or modify y, and the
// returned slice must have len(y) elements. A non-nil error aborts the
// integration and is returned to the caller as-is.
type Func func(t float64, y []float64) ([]float64, error)

// Trajectory is a dense, uniformly sampled solution: row i holds the state
// at T[i] = a + i*(b-a)/n.
type Trajectory struct {
	T []float64
	Y [][]float64
}

// Len returns the number of samples (n+1).
func (tr *Trajectory) Len() int { return len(tr.T) }

// Dim returns the state dimension.
func (tr *Trajectory) Dim() int {
	if len(tr.Y) == 0 {
		return 0
	}
	return len(tr.Y[0])
}

// Column returns a copy of component j over all samples.
func (tr *Trajectory) Column(j int) []float64 {
	out := make([]float64, len(tr.Y))
	for i, row := range tr.Y {
		out[i] = row[j]
	}
	return out
}

// Step returns the uniform step size of the grid.
func (tr *Trajectory) Step() float64 {
	if len(tr.T) < 2 {
		return 0
	}
	return (tr.T[len(tr.T)-1] - tr.T[0]) / float64(len(tr.T)-1)
}

// Integrate solves y' = f(t, y), y(a) = y0 on [a, b] using n midpoint steps
// of size h = (b-a)/n:
//
//	y_mid = y_{i-1} + h/2 * f(t, y_{i-1})
//	y_i   = y_{i-1} + h   * f(t + h/2, y_mid)
//
// The result has n+1 rows; row 0 is a copy of y0. Integrate keeps no state
// between calls.
func Integrate(f Func, y0 []float64, a, b float64, n int) (*Trajectory, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrSteps, n)
	}
	if !(a < b) {
		return nil, fmt.Errorf("%w: a=%g b=%g", ErrInterval, a, b)
	}
	d := len(y0)
	if d == 0 {
		return nil, ErrEmptyState
	}

	h := (b - a) / float64(n)

	// one backing array for all rows
	buf := make([]float64, (n+1)*d)
	tr := &Trajectory{
		T: make([]float64, n+1),
		Y: make([][]float64, n+1),
	}
	for i := range tr.Y {
		tr.Y[i] = buf[i*d : (i+1)*d : (i+1)*d]
		tr.T[i] = a + float64(i)*h
	}
	copy(tr.Y[0], y0)

	mid := make([]float64, d)
	t := a
	for i := 1; i <= n; i++ {
		prev := tr.Y[i-1]

		k1, err := f(t, prev)
		if err != nil {
			return nil, err
		}
		if len(k1) != d {
			return nil, fmt.Errorf("%w: got %d want %d at t=%g", ErrDimension, len(k1), d, t)
		}
		floats.AddScaledTo(mid, prev, 0.5*h, k1)
		t += 0.5 * h

		k2, err := f(t, mid)
		if err != nil {
			return nil, err
		}
		if len(k2) != d {
			return nil, fmt.Errorf("%w: got %d want %d at t=%g", ErrDimension, len(k2), d, t)
		}
		floats.AddScaledTo(tr.Y[i], prev, h, k2)
		t += 0.5 * h
	}

	return tr, nil
}
