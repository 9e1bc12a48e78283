// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All algorithms return these sentinels (optionally wrapped with an operation
// tag) and tests check them via errors.Is. No algorithm panics on
// user-triggered conditions; option constructors panic on programmer error.

package matrix

import "errors"

var (
	// ErrNilMatrix indicates that a nil or zero-sized matrix argument was used.
	ErrNilMatrix = errors.New("matrix: nil or empty matrix")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf entry where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNotHermitian signals that |a_ij − conj(a_ji)| exceeded the configured
	// tolerance (scaled by the largest entry magnitude).
	ErrNotHermitian = errors.New("matrix: matrix is not Hermitian within eps")

	// ErrEigenFailed indicates that the Jacobi sweeps did not converge within
	// the configured sweep budget.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")
)
