package seir

import "errors"

var (
	// ErrInvalidConfig indicates a configuration rejected before integration.
	ErrInvalidConfig = errors.New("seir: invalid config")

	// ErrNonFinite indicates that the integrated trajectory contains NaN or ±Inf.
	ErrNonFinite = errors.New("seir: non-finite trajectory value")
)
