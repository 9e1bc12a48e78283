// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of the numeric policy.
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors with strict validation (panic on nonsensical values),
//   - gatherOptions helper applying setters over defaults.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the Hermiticity tolerance, relative to max(1, max|a_ij|).
	DefaultEpsilon = 1e-9

	// DefaultTolerance is the Jacobi convergence threshold on the off-diagonal
	// Frobenius norm, relative to the Frobenius norm of the input.
	DefaultTolerance = 1e-14

	// DefaultMaxSweeps caps the number of cyclic Jacobi sweeps. Convergence is
	// quadratic; well-conditioned inputs finish in well under 20 sweeps.
	DefaultMaxSweeps = 100
)

const (
	panicEpsilonInvalid   = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicToleranceInvalid = "matrix: WithTolerance: tol must be finite, positive"
	panicSweepsInvalid    = "matrix: WithMaxSweeps: sweeps must be positive"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps       float64 // Hermiticity tolerance
	tol       float64 // Jacobi convergence
	maxSweeps int
	vectors   bool // accumulate eigenvectors
}

// WithEpsilon sets the Hermiticity tolerance used by ValidateHermitian and the
// eigen facades.
//
// Errors:
//   - Panics when eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithTolerance sets the relative off-diagonal convergence threshold.
//
// Errors:
//   - Panics when tol is not finite and positive.
func WithTolerance(tol float64) Option {
	if isNonFinite(tol) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithMaxSweeps caps the number of Jacobi sweeps.
//
// Errors:
//   - Panics when sweeps < 1.
func WithMaxSweeps(sweeps int) Option {
	if sweeps < 1 {
		panic(panicSweepsInvalid)
	}

	return func(o *Options) { o.maxSweeps = sweeps }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		eps:       DefaultEpsilon,
		tol:       DefaultTolerance,
		maxSweeps: DefaultMaxSweeps,
		vectors:   true,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins
	}

	return o
}

func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
