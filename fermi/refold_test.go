package fermi_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kspace/fermi"
	"github.com/katalvlaran/kspace/lattice"
)

func TestRefold_Square(t *testing.T) {
	b, err := lattice.Reciprocal(square())
	require.NoError(t, err)

	cases := []struct {
		in, want fermi.Point
	}{
		{fermi.Point{0.5, -0.25}, fermi.Point{0.5, -0.25}},
		{fermi.Point{2*math.Pi + 0.5, 0}, fermi.Point{0.5, 0}},
		{fermi.Point{-2*math.Pi - 0.1, 4*math.Pi + 0.2}, fermi.Point{-0.1, 0.2}},
		{fermi.Point{11 * math.Pi / 2, -3 * math.Pi / 2}, fermi.Point{-math.Pi / 2, math.Pi / 2}},
	}
	for _, tc := range cases {
		got := fermi.Refold(tc.in, b)
		assert.InDelta(t, tc.want[0], got[0], 1e-12, "in %v", tc.in)
		assert.InDelta(t, tc.want[1], got[1], 1e-12, "in %v", tc.in)
	}
}

func TestRefold_HoneycombKeepsResidual(t *testing.T) {
	hc := lattice.HoneycombKitaev()
	b, err := lattice.Reciprocal(hc)
	require.NoError(t, err)

	// Wigner–Seitz cell of the triangular reciprocal lattice: |k| is no
	// larger than |k − G| for every nearest G.
	k := fermi.Point{9.3, -7.1}
	got := fermi.Refold(k, b)
	for n1 := -1; n1 <= 1; n1++ {
		for n2 := -1; n2 <= 1; n2++ {
			g := fermi.Point{
				float64(n1)*b[0][0] + float64(n2)*b[1][0],
				float64(n1)*b[0][1] + float64(n2)*b[1][1],
			}
			d := math.Hypot(got[0]-g[0], got[1]-g[1])
			assert.GreaterOrEqual(t, d+1e-9, math.Hypot(got[0], got[1]))
		}
	}

	// hopping on every honeycomb bond: the spectrum is periodic in G
	hop := lattice.HoneycombKitaev()
	for i := range hop.Bonds {
		hop.Bonds[i].Strength = lattice.Numeric(1)
	}
	opts := fermi.DefaultOptions()
	e1, err := fermi.Residual(hop, k, opts)
	require.NoError(t, err)
	e2, err := fermi.Residual(hop, got, opts)
	require.NoError(t, err)
	assert.InDelta(t, e1, e2, 1e-9)
}

func TestRefold_NeedsTwoVectors(t *testing.T) {
	k := fermi.Point{10, 10}
	assert.Equal(t, k, fermi.Refold(k, nil))
}
