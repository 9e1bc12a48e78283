// SPDX-License-Identifier: MIT

package matrix

import (
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// Hermitize returns (m + mᴴ)/2 as a new CDense. m is not modified.
//
// The result is exactly Hermitian: the upper and lower triangles are computed
// from the same pair of entries and the diagonal is real.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity: O(n²).
func Hermitize(m mat.CMatrix) (*mat.CDense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opHermitize, err)
	}

	n, _ := m.Dims()
	out := mat.NewCDense(n, n, nil)
	var (
		i, j int
		avg  complex128
	)
	for i = 0; i < n; i++ {
		out.Set(i, i, complex(real(m.At(i, i)), 0))
		for j = i + 1; j < n; j++ {
			avg = (m.At(i, j) + cmplx.Conj(m.At(j, i))) / 2
			out.Set(i, j, avg)
			out.Set(j, i, cmplx.Conj(avg))
		}
	}

	return out, nil
}
