// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small deterministic Hermitian fixtures.
//   - Provide the gonum EigenSym oracle on the real 2n×2n embedding.

package matrix_test

import (
	"math/cmplx"
	"math/rand"
	"sort"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// randomHermitian returns an n×n Hermitian matrix with entries in [-1, 1]².
func randomHermitian(n int, seed int64) *mat.CDense {
	rng := rand.New(rand.NewSource(seed))
	m := mat.NewCDense(n, n, nil)
	var i, j int
	for i = 0; i < n; i++ {
		m.Set(i, i, complex(2*rng.Float64()-1, 0))
		for j = i + 1; j < n; j++ {
			z := complex(2*rng.Float64()-1, 2*rng.Float64()-1)
			m.Set(i, j, z)
			m.Set(j, i, cmplx.Conj(z))
		}
	}

	return m
}

// oracleEigenvalues embeds H = A + iB as [[A, −B], [B, A]] and returns every
// second eigenvalue of the real symmetric embedding (each appears twice).
func oracleEigenvalues(t *testing.T, h mat.CMatrix) []float64 {
	t.Helper()
	n, _ := h.Dims()
	emb := mat.NewSymDense(2*n, nil)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			z := h.At(i, j)
			emb.SetSym(i, j, real(z))
			emb.SetSym(n+i, n+j, real(z))
			emb.SetSym(i, n+j, -imag(z))
			emb.SetSym(j, n+i, imag(z))
		}
	}

	var es mat.EigenSym
	if ok := es.Factorize(emb, false); !ok {
		t.Fatalf("oracle EigenSym failed")
	}
	all := es.Values(nil)
	sort.Float64s(all)
	out := make([]float64, n)
	for i = range out {
		out[i] = all[2*i]
	}

	return out
}

// column returns column j of v as a slice.
func column(v *mat.CDense, j int) []complex128 {
	n, _ := v.Dims()
	out := make([]complex128, n)
	for i := range out {
		out[i] = v.At(i, j)
	}

	return out
}
