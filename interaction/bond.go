// Package interaction turns lattice bonds into momentum-space interaction
// matrices.
//
// Two pieces cooperate:
//
//   - A BondMatrixFn policy maps one bond to a small dense d×d coupling
//     matrix (d = spin dimension). Heisenberg (d=1) and HeisenbergKitaev (d=3)
//     ship as defaults; any function with a fixed output dimension works.
//   - An Assembler sums the bond matrices with Bloch phases into the
//     (d·N)×(d·N) complex matrix H(k).
//
// Unknown bond labels are never errors: they contribute zeros, so callers can
// encode custom couplings numerically and leave tags for the known models.
package interaction

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/kspace/lattice"
)

// BondMatrixFn maps a bond to its d×d coupling matrix. d must be the same for
// every bond of a lattice. Implementations must not retain or mutate b.
type BondMatrixFn func(b lattice.Bond) *mat.Dense

// Recognized labels.
var (
	heisenbergLabels = map[string]struct{}{
		"J": {}, "J1": {}, "H": {}, "Heisenberg": {}, "heisenberg": {},
	}

	// axis labels in the two naming schemes, mapped to the diagonal slot
	kitaevAxis = map[string]int{
		"Jx": 0, "Jy": 1, "Jz": 2,
		"tx": 0, "ty": 1, "tz": 2,
	}
)

// IsHeisenbergLabel reports whether label is one of the isotropic tags.
func IsHeisenbergLabel(label string) bool {
	_, ok := heisenbergLabels[label]
	return ok
}

// Heisenberg is the scalar policy: [[1]] for Heisenberg labels, otherwise
// [[value]] (0 for any other label).
func Heisenberg(b lattice.Bond) *mat.Dense {
	s := b.Strength.Value()
	if b.Strength.IsLabel() && IsHeisenbergLabel(b.Strength.Label()) {
		s = 1
	}

	return mat.NewDense(1, 1, []float64{s})
}

// HeisenbergKitaev is the 3×3 diagonal policy.
//
//   - Heisenberg label        → identity;
//   - axis label (Jx…, tx…)   → only that diagonal entry is 1;
//   - numeric strength v      → v·identity;
//   - any other label         → zero matrix.
func HeisenbergKitaev(b lattice.Bond) *mat.Dense {
	m := mat.NewDense(3, 3, nil)
	if !b.Strength.IsLabel() {
		v := b.Strength.Value()
		m.Set(0, 0, v)
		m.Set(1, 1, v)
		m.Set(2, 2, v)
		return m
	}

	label := b.Strength.Label()
	if IsHeisenbergLabel(label) {
		m.Set(0, 0, 1)
		m.Set(1, 1, 1)
		m.Set(2, 2, 1)
		return m
	}
	if axis, ok := kitaevAxis[label]; ok {
		m.Set(axis, axis, 1)
	}

	return m
}
