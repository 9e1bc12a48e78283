package fermi

import (
	"fmt"
	"math"

	"github.com/katalvlaran/kspace/interaction"
	"github.com/katalvlaran/kspace/lattice"
	"github.com/katalvlaran/kspace/matrix"
)

const opResidual = "fermi.Residual"

// band evaluates E(k) on one lattice; immutable and shareable.
type band struct {
	asm   *interaction.Assembler
	fermi float64
}

func newBand(l *lattice.Lattice, opts Options) (*band, error) {
	if l == nil {
		return nil, lattice.ErrNoSites
	}
	asm, err := interaction.NewAssembler(l, interaction.Heisenberg, interaction.WithHermitize(opts.EnforceHermitian))
	if err != nil {
		return nil, err
	}
	if l.Dim() != 2 {
		return nil, fmt.Errorf("lattice dimension %d, want 2: %w", l.Dim(), lattice.ErrDimensionMismatch)
	}

	return &band{asm: asm, fermi: opts.FermiEnergy}, nil
}

// residual returns min_i (λ_i − E_F)².
func (b *band) residual(k Point) (float64, error) {
	h, err := b.asm.At(k[:])
	if err != nil {
		return 0, err
	}
	vals, err := matrix.EigenvaluesHermitian(h)
	if err != nil {
		return 0, err
	}

	best := math.Inf(1)
	for _, v := range vals {
		if d := (v - b.fermi) * (v - b.fermi); d < best {
			best = d
		}
	}

	return best, nil
}

// Residual returns E(k) = min_i (λ_i(H(k)) − FermiEnergy)² with H(k) built
// from l under the scalar interaction.Heisenberg policy.
//
// Errors: lattice.*, interaction.*, matrix.* (wrapped with "fermi.Residual").
func Residual(l *lattice.Lattice, k Point, opts Options) (float64, error) {
	b, err := newBand(l, opts)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opResidual, err)
	}
	e, err := b.residual(k)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opResidual, err)
	}

	return e, nil
}
