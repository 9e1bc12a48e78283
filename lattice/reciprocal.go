// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Reciprocal returns the reciprocal lattice vectors b_i, b_i·a_j = 2π·δ_ij.
//
// Implementation:
//   - Stage 1: require exactly D lattice vectors of dimension D.
//   - Stage 2: B = 2π·(Aᵀ)⁻¹ with A holding a_j as rows.
//
// Errors:
//   - ErrNoSites, ErrDimensionMismatch, ErrSingularVectors.
//
// Complexity: O(D³).
func Reciprocal(l *Lattice) ([]Vec, error) {
	d := l.Dim()
	if d == 0 {
		return nil, ErrNoSites
	}
	if len(l.Vectors) != d {
		return nil, fmt.Errorf("Reciprocal: %d vectors in %d dimensions: %w", len(l.Vectors), d, ErrDimensionMismatch)
	}

	a := mat.NewDense(d, d, nil)
	for i, v := range l.Vectors {
		if len(v) != d {
			return nil, fmt.Errorf("Reciprocal: %w", ErrDimensionMismatch)
		}
		a.SetRow(i, v)
	}

	var inv mat.Dense
	if err := inv.Inverse(a.T()); err != nil {
		return nil, fmt.Errorf("Reciprocal: %v: %w", err, ErrSingularVectors)
	}
	inv.Scale(2*math.Pi, &inv)

	out := make([]Vec, d)
	for i := range out {
		out[i] = mat.Row(nil, i, &inv)
	}

	return out, nil
}
