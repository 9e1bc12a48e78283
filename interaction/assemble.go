// SPDX-License-Identifier: MIT

package interaction

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/kspace/lattice"
	"github.com/katalvlaran/kspace/matrix"
)

const opAssemble = "Assemble"

// Option configures an Assembler.
type Option func(*assembleOptions)

type assembleOptions struct {
	hermitize bool
}

// WithHermitize replaces every assembled H(k) with (H + Hᴴ)/2 when on is true.
func WithHermitize(on bool) Option {
	return func(o *assembleOptions) { o.hermitize = on }
}

// term is the k-independent part of one bond: endpoints, displacement and
// the coupling matrix.
type term struct {
	from, to int // 0-based site indices
	delta    lattice.Vec
	m        *mat.Dense
}

// Assembler holds the k-independent data of a lattice under a bond policy.
// It is immutable after construction and safe for concurrent use.
type Assembler struct {
	dim       int // momentum dimension
	spinDim   int
	sites     int
	terms     []term
	hermitize bool
}

// SpinDimension applies fn to the first bond and returns the side of the
// resulting square matrix.
//
// Errors: lattice.ErrNoBonds, ErrBondMatrixShape.
func SpinDimension(l *lattice.Lattice, fn BondMatrixFn) (int, error) {
	if len(l.Bonds) == 0 {
		return 0, lattice.ErrNoBonds
	}
	m := fn(l.Bonds[0])
	if m == nil {
		return 0, fmt.Errorf("bond 0: nil matrix: %w", ErrBondMatrixShape)
	}
	r, c := m.Dims()
	if r != c {
		return 0, fmt.Errorf("bond 0: %dx%d: %w", r, c, ErrBondMatrixShape)
	}

	return r, nil
}

// NewAssembler validates l, evaluates fn on every bond and precomputes the
// bond displacements.
//
// Implementation:
//   - Stage 1: l.Validate(); spin dimension from the first bond.
//   - Stage 2: per bond, δ = r_to − r_from + Σ wrap·A and M = fn(bond);
//     every M must be d×d.
//
// Errors:
//   - lattice.ErrNoSites, lattice.ErrDimensionMismatch, lattice.ErrSiteIndex,
//     lattice.ErrNoBonds, ErrBondMatrixShape (wrapped with "Assemble").
//
// Complexity: O(B·(D·V + d²)).
func NewAssembler(l *lattice.Lattice, fn BondMatrixFn, opts ...Option) (*Assembler, error) {
	var o assembleOptions
	for _, set := range opts {
		set(&o)
	}

	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", opAssemble, err)
	}
	d, err := SpinDimension(l, fn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opAssemble, err)
	}

	a := &Assembler{
		dim:       l.Dim(),
		spinDim:   d,
		sites:     l.NumSites(),
		terms:     make([]term, len(l.Bonds)),
		hermitize: o.hermitize,
	}
	for i, b := range l.Bonds {
		m := fn(b)
		if m == nil {
			return nil, fmt.Errorf("%s: bond %d: nil matrix: %w", opAssemble, i, ErrBondMatrixShape)
		}
		if r, c := m.Dims(); r != d || c != d {
			return nil, fmt.Errorf("%s: bond %d is %dx%d, want %dx%d: %w", opAssemble, i, r, c, d, d, ErrBondMatrixShape)
		}
		a.terms[i] = term{
			from:  b.From - 1,
			to:    b.To - 1,
			delta: l.Displacement(b),
			m:     mat.DenseCopyOf(m),
		}
	}

	return a, nil
}

// SpinDim returns the spin dimension d.
func (a *Assembler) SpinDim() int { return a.spinDim }

// Size returns d·N, the side of H(k).
func (a *Assembler) Size() int { return a.spinDim * a.sites }

// At assembles H(k).
//
// Each bond with coupling M adds, for every (i, j),
//
//	H[(from,i),(to,j)] += ½·M_ij·e^{−ik·δ}
//	H[(to,j),(from,i)] += ½·M_ij·e^{+ik·δ}
//
// so real M yields an exactly Hermitian matrix and on-site terms land on the
// diagonal block twice.
//
// Errors: ErrMomentumDimension.
//
// Complexity: O(B·d² + (d·N)²).
func (a *Assembler) At(k lattice.Vec) (*mat.CDense, error) {
	if len(k) != a.dim {
		return nil, fmt.Errorf("%s: len(k)=%d, want %d: %w", opAssemble, len(k), a.dim, ErrMomentumDimension)
	}

	n := a.Size()
	h := mat.NewCDense(n, n, nil)
	d := a.spinDim

	var (
		i, j     int
		row, col int
		phase    float64
		fwd, bwd complex128
		half     complex128
	)
	for _, t := range a.terms {
		phase = floats.Dot(k, t.delta)
		fwd = complex(math.Cos(phase), -math.Sin(phase)) // e^{−ik·δ}
		bwd = complex(math.Cos(phase), math.Sin(phase))  // e^{+ik·δ}
		for i = 0; i < d; i++ {
			for j = 0; j < d; j++ {
				half = complex(0.5*t.m.At(i, j), 0)
				if half == 0 {
					continue
				}
				row, col = t.from*d+i, t.to*d+j
				h.Set(row, col, h.At(row, col)+half*fwd)
				h.Set(col, row, h.At(col, row)+half*bwd)
			}
		}
	}

	if a.hermitize {
		hh, err := matrix.Hermitize(h)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opAssemble, err)
		}
		return hh, nil
	}

	return h, nil
}

// Assemble builds H(k) for a single momentum. Prefer NewAssembler + At when
// evaluating many momenta on one lattice.
func Assemble(l *lattice.Lattice, k lattice.Vec, fn BondMatrixFn, opts ...Option) (*mat.CDense, error) {
	a, err := NewAssembler(l, fn, opts...)
	if err != nil {
		return nil, err
	}

	return a.At(k)
}
