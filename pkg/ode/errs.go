package ode

import "errors"

var (
	// ErrSteps indicates a non-positive step count.
	ErrSteps = errors.New("ode: step count must be >= 1")

	// ErrInterval indicates integration bounds with a >= b (or a NaN bound).
	ErrInterval = errors.New("ode: interval must satisfy a < b")

	// ErrEmptyState indicates a zero-length initial state vector.
	ErrEmptyState = errors.New("ode: empty initial state")

	// ErrDimension indicates that the derivative function returned a vector
	// whose length differs from the state dimension.
	ErrDimension = errors.New("ode: derivative dimension mismatch")
)
