// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for the checks run before spectral methods.
//  - Return plain sentinels wrapped with the validator tag so call sites can
//    match via errors.Is.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing.
//  - The Hermiticity check runs O(n²) over the upper triangle and diagonal.

package matrix

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSquare returns ErrNilMatrix for nil or 0×0 input and ErrNonSquare
// when rows != cols.
func ValidateSquare(m mat.CMatrix) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if r != c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateFinite returns ErrNaNInf if any real or imaginary part is NaN or ±Inf.
func ValidateFinite(m mat.CMatrix) error {
	r, c := m.Dims()
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if cmplx.IsNaN(m.At(i, j)) || cmplx.IsInf(m.At(i, j)) {
				return validatorErrorf(fmt.Sprintf("ValidateFinite[%d,%d]", i, j), ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateHermitian checks |a_ij − conj(a_ji)| ≤ eps·max(1, max|a|) for all
// i ≤ j (the diagonal must then be real within the same bound).
// Assumes m is square.
func ValidateHermitian(m mat.CMatrix, eps float64) error {
	n, _ := m.Dims()
	bound := eps * math.Max(1, maxAbs(m))
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			if cmplx.Abs(m.At(i, j)-cmplx.Conj(m.At(j, i))) > bound {
				return validatorErrorf(fmt.Sprintf("ValidateHermitian[%d,%d]", i, j), ErrNotHermitian)
			}
		}
	}

	return nil
}

// IsHermitian reports whether ValidateHermitian(m, eps) passes for a square m.
func IsHermitian(m mat.CMatrix, eps float64) bool {
	if ValidateSquare(m) != nil {
		return false
	}

	return ValidateHermitian(m, eps) == nil
}

func maxAbs(m mat.CMatrix) float64 {
	r, c := m.Dims()
	var (
		i, j int
		best float64
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if a := cmplx.Abs(m.At(i, j)); a > best {
				best = a
			}
		}
	}

	return best
}
