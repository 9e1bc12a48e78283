package fermi_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kspace/fermi"
	"github.com/katalvlaran/kspace/lattice"
)

func TestResidual_Square(t *testing.T) {
	opts := fermi.DefaultOptions()

	e, err := fermi.Residual(square(), fermi.Point{0, 0}, opts)
	require.NoError(t, err)
	assert.InDelta(t, 4, e, 1e-12) // (cos 0 + cos 0)²

	e, err = fermi.Residual(square(), fermi.Point{math.Pi / 2, math.Pi / 2}, opts)
	require.NoError(t, err)
	assert.InDelta(t, 0, e, 1e-24)

	opts.FermiEnergy = 2
	e, err = fermi.Residual(square(), fermi.Point{0, 0}, opts)
	require.NoError(t, err)
	assert.InDelta(t, 0, e, 1e-24)
}

func TestResidual_NearestBand(t *testing.T) {
	// two decoupled sites with on-site energies ±1: the residual tracks the
	// band closer to E_F
	l := &lattice.Lattice{
		Sites:   []lattice.Vec{{0, 0}, {0.5, 0.5}},
		Vectors: []lattice.Vec{{1, 0}, {0, 1}},
		Bonds: []lattice.Bond{
			{From: 1, To: 1, Strength: lattice.Numeric(1)},
			{From: 2, To: 2, Strength: lattice.Numeric(-1)},
		},
	}
	opts := fermi.DefaultOptions()
	opts.FermiEnergy = 0.75
	e, err := fermi.Residual(l, fermi.Point{0.3, -1.2}, opts)
	require.NoError(t, err)
	assert.InDelta(t, 0.0625, e, 1e-12)
}
