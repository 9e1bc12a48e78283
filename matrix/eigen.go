// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Operation tags for error wrapping.
const (
	opEigen     = "EigenHermitian"
	opHermitize = "Hermitize"
)

func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// EigenHermitian decomposes a complex Hermitian matrix m = V·diag(λ)·Vᴴ using
// cyclic complex Jacobi rotations.
//
// Implementation:
//   - Stage 1: validate square, finite and Hermitian within eps.
//   - Stage 2: copy (m + mᴴ)/2 into a working buffer; V := I.
//   - Stage 3: sweep all pairs p<q; each rotation first removes the phase of
//     a_pq, then applies the real Jacobi rotation that zeroes it.
//   - Stage 4: stop when the off-diagonal Frobenius norm drops below
//     tol·‖m‖_F; sort eigenpairs ascending.
//
// Returns:
//   - []float64 : eigenvalues in ascending order.
//   - *mat.CDense: unit eigenvectors as columns, column j pairs with λ_j.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf, ErrNotHermitian, ErrEigenFailed
//     (all wrapped with the "EigenHermitian" tag).
//
// Complexity: O(n³) per sweep; memory O(n²).
func EigenHermitian(m mat.CMatrix, opts ...Option) ([]float64, *mat.CDense, error) {
	o := gatherOptions(opts...)
	vals, vecs, err := jacobi(m, o)
	if err != nil {
		return nil, nil, err
	}

	return vals, vecs, nil
}

// EigenvaluesHermitian is EigenHermitian without eigenvector accumulation.
func EigenvaluesHermitian(m mat.CMatrix, opts ...Option) ([]float64, error) {
	o := gatherOptions(opts...)
	o.vectors = false
	vals, _, err := jacobi(m, o)

	return vals, err
}

func jacobi(m mat.CMatrix, o Options) ([]float64, *mat.CDense, error) {
	// Stage 1: Validate input
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	if err := ValidateFinite(m); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	if err := ValidateHermitian(m, o.eps); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	// Stage 2: Prepare A (work) and V (eigenvectors)
	n, _ := m.Dims()
	h, err := Hermitize(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	a := h.RawCMatrix().Data // row-major, stride n

	var v []complex128
	if o.vectors {
		v = make([]complex128, n*n)
		for i := 0; i < n; i++ {
			v[i*n+i] = 1
		}
	}

	var norm float64
	for _, x := range a {
		norm += real(x)*real(x) + imag(x)*imag(x)
	}
	threshold := o.tol * math.Sqrt(norm)

	// Stage 3: Execute Jacobi sweeps
	var (
		sweep     int
		converged bool
		p, q      int
	)
	for sweep = 0; sweep < o.maxSweeps; sweep++ {
		if offNorm(a, n) <= threshold {
			converged = true
			break
		}
		for p = 0; p < n-1; p++ {
			for q = p + 1; q < n; q++ {
				rotate(a, v, n, p, q)
			}
		}
	}
	if !converged && offNorm(a, n) <= threshold {
		converged = true
	}
	if !converged {
		return nil, nil, matrixErrorf(opEigen, fmt.Errorf("%d sweeps: %w", o.maxSweeps, ErrEigenFailed))
	}

	// Stage 4: Finalize eigenpairs in ascending order
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return real(a[order[i]*n+order[i]]) < real(a[order[j]*n+order[j]])
	})

	vals := make([]float64, n)
	for i, src := range order {
		vals[i] = real(a[src*n+src])
	}
	if !o.vectors {
		return vals, nil, nil
	}

	vecs := mat.NewCDense(n, n, nil)
	for col, src := range order {
		for row := 0; row < n; row++ {
			vecs.Set(row, col, v[row*n+src])
		}
	}

	return vals, vecs, nil
}

// rotate zeroes a[p][q] (and a[q][p]) with the unitary G acting on the
// (p, q) plane:
//
//	G_pp = c,  G_pq = s,  G_qp = −s·e^{−iφ},  G_qq = c·e^{−iφ},  a_pq = |a_pq|·e^{iφ}
//
// A ← Gᴴ·A·G and V ← V·G.
func rotate(a, v []complex128, n, p, q int) {
	apq := a[p*n+q]
	abs := cmplx.Abs(apq)
	if abs == 0 {
		return
	}

	app := real(a[p*n+p])
	aqq := real(a[q*n+q])

	// real Jacobi angle on the phase-removed element
	theta := (aqq - app) / (2 * abs)
	var t float64
	if tt := theta * theta; math.IsInf(tt, 0) {
		t = 0.5 / theta
	} else {
		t = 1.0 / (math.Abs(theta) + math.Sqrt(tt+1))
		if theta < 0 {
			t = -t
		}
	}
	c := 1.0 / math.Sqrt(t*t+1) // cosine
	s := t * c                  // sine

	ph := apq / complex(abs, 0) // e^{iφ}
	cc := complex(c, 0)
	cs := complex(s, 0)
	gqp := -cs * cmplx.Conj(ph)
	gqq := cc * cmplx.Conj(ph)

	// row coefficients of Gᴴ: conj(G_qp) = −s·e^{iφ}, conj(G_qq) = c·e^{iφ}
	sph := cs * ph
	cph := cc * ph

	var (
		i      int
		ip, iq int
		xp, xq complex128
		rowP   = p * n
		rowQ   = q * n
	)

	// columns: A ← A·G
	for i = 0; i < n; i++ {
		ip, iq = i*n+p, i*n+q
		xp, xq = a[ip], a[iq]
		a[ip] = cc*xp + gqp*xq
		a[iq] = cs*xp + gqq*xq
	}
	// rows: A ← Gᴴ·A
	for i = 0; i < n; i++ {
		xp, xq = a[rowP+i], a[rowQ+i]
		a[rowP+i] = cc*xp - sph*xq
		a[rowQ+i] = cs*xp + cph*xq
	}

	// exact zeros and real diagonal after the rotation
	a[rowP+q] = 0
	a[rowQ+p] = 0
	a[rowP+p] = complex(real(a[rowP+p]), 0)
	a[rowQ+q] = complex(real(a[rowQ+q]), 0)

	if v == nil {
		return
	}
	// accumulate: V ← V·G
	for i = 0; i < n; i++ {
		ip, iq = i*n+p, i*n+q
		xp, xq = v[ip], v[iq]
		v[ip] = cc*xp + gqp*xq
		v[iq] = cs*xp + gqq*xq
	}
}

// offNorm returns the Frobenius norm of the strictly off-diagonal part.
func offNorm(a []complex128, n int) float64 {
	var (
		sum  float64
		i, j int
		x    complex128
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i != j {
				x = a[i*n+j]
				sum += real(x)*real(x) + imag(x)*imag(x)
			}
		}
	}

	return math.Sqrt(sum)
}
