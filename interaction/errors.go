package interaction

import "errors"

var (
	// ErrBondMatrixShape is returned when a BondMatrixFn yields a non-square
	// matrix, or a matrix whose dimension differs from the first bond's.
	ErrBondMatrixShape = errors.New("interaction: bond matrix has inconsistent shape")

	// ErrMomentumDimension is returned when len(k) differs from the lattice dimension.
	ErrMomentumDimension = errors.New("interaction: momentum dimension mismatch")
)
