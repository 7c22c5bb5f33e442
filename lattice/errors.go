package lattice

import "errors"

var (
	// ErrNonPositiveDim indicates a grid dimension that is zero or negative.
	ErrNonPositiveDim = errors.New("lattice: dimensions must be positive")
)
