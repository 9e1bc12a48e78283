package lt_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/kspace/interaction"
	"github.com/katalvlaran/kspace/kpath"
	"github.com/katalvlaran/kspace/lattice"
	"github.com/katalvlaran/kspace/lt"
	"github.com/katalvlaran/kspace/matrix"
)

// dimer is a two-site chain embedded in 2D with alternating couplings.
func dimer() *lattice.Lattice {
	return &lattice.Lattice{
		Sites:   []lattice.Vec{{0, 0}, {0.5, 0}},
		Vectors: []lattice.Vec{{1, 0}, {0, 1}},
		Bonds: []lattice.Bond{
			{From: 1, To: 2, Strength: lattice.Numeric(1)},
			{From: 2, To: 1, Strength: lattice.Numeric(0.5), Wrap: []int{1, 0}},
		},
	}
}

func gxm(t *testing.T, res int) *kpath.Path {
	t.Helper()
	p, err := kpath.New(
		[]lattice.Vec{{0, 0}, {math.Pi, 0}, {math.Pi, math.Pi}},
		[]string{"Γ", "X", "M"},
		res,
	)
	require.NoError(t, err)

	return p
}

func TestCompute_Shape(t *testing.T) {
	bs, err := lt.Compute(context.Background(), dimer(), gxm(t, 10), interaction.Heisenberg, lt.DefaultOptions())
	require.NoError(t, err)

	require.Equal(t, 1, bs.SpinDim)
	require.Equal(t, 2, bs.NumBands())
	require.Len(t, bs.Bands, 2)
	require.Len(t, bs.Constraints, 2)
	for s := range bs.Bands {
		require.Len(t, bs.Bands[s], 2)
		require.Len(t, bs.Constraints[s], 2)
		for b := range bs.Bands[s] {
			require.Len(t, bs.Bands[s][b], 10)
			require.Len(t, bs.Constraints[s][b], 10)
		}
		for j := 0; j < 10; j++ {
			assert.LessOrEqual(t, bs.Bands[s][0][j], bs.Bands[s][1][j])
		}
	}
}

func TestCompute_DimerBands(t *testing.T) {
	// off-diagonal ½(e^{-ik/2} + ½e^{ik/2}); bands ±|…|
	bs, err := lt.Compute(context.Background(), dimer(), gxm(t, 8), interaction.Heisenberg, lt.DefaultOptions())
	require.NoError(t, err)

	samples := bs.Path.Samples(0)
	for j, k := range samples {
		x := k[0] / 2
		re := 0.5 * (math.Cos(x) + 0.5*math.Cos(x))
		im := 0.5 * (-math.Sin(x) + 0.5*math.Sin(x))
		want := math.Hypot(re, im)
		assert.InDelta(t, -want, bs.Bands[0][0][j], 1e-12)
		assert.InDelta(t, want, bs.Bands[0][1][j], 1e-12)
	}
}

func TestCompute_WorkersDeterministic(t *testing.T) {
	ctx := context.Background()
	p := gxm(t, 12)
	l := lattice.HoneycombKitaev()

	seq := lt.DefaultOptions()
	par := lt.DefaultOptions()
	par.Workers = 4

	a, err := lt.Compute(ctx, l, p, interaction.HeisenbergKitaev, seq)
	require.NoError(t, err)
	b, err := lt.Compute(ctx, l, p, interaction.HeisenbergKitaev, par)
	require.NoError(t, err)
	c, err := lt.Compute(ctx, l, p, interaction.HeisenbergKitaev, seq)
	require.NoError(t, err)

	assert.Equal(t, a.Bands, b.Bands)
	assert.Equal(t, a.Constraints, b.Constraints)
	assert.Equal(t, a.Bands, c.Bands)
	assert.Equal(t, a.Constraints, c.Constraints)
}

func TestCompute_ResolutionOverride(t *testing.T) {
	p := gxm(t, 10)
	opts := lt.DefaultOptions()
	opts.Resolution = 30

	bs, err := lt.Compute(context.Background(), dimer(), p, interaction.Heisenberg, opts)
	require.NoError(t, err)

	assert.Equal(t, []int{10, 10}, p.Resolutions, "caller's path is untouched")
	assert.Equal(t, []int{15, 15}, bs.Path.Resolutions)
	assert.Len(t, bs.Bands[0][0], 15)
	assert.Len(t, bs.Bands[1][1], 15)
}

func TestCompute_KitaevDegenerateClusters(t *testing.T) {
	// Pure Kitaev bonds decouple the three spin axes: every block gives ±½,
	// so each sample has two triply degenerate eigenspaces.
	bs, err := lt.Compute(context.Background(), lattice.HoneycombKitaev(), gxm(t, 6),
		interaction.HeisenbergKitaev, lt.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 3, bs.SpinDim)
	require.Equal(t, 6, bs.NumBands())

	for s := range bs.Bands {
		for j := range bs.Bands[s][0] {
			for b := 0; b < 3; b++ {
				assert.InDelta(t, -0.5, bs.Bands[s][b][j], 1e-9)
				assert.InDelta(t, 0.5, bs.Bands[s][b+3][j], 1e-9)
			}
			assert.Equal(t, bs.Constraints[s][0][j], bs.Constraints[s][1][j])
			assert.Equal(t, bs.Constraints[s][0][j], bs.Constraints[s][2][j])
			assert.Equal(t, bs.Constraints[s][3][j], bs.Constraints[s][4][j])
			assert.Equal(t, bs.Constraints[s][3][j], bs.Constraints[s][5][j])
			assert.GreaterOrEqual(t, bs.Constraints[s][0][j], 0.0)
		}
	}
}

func TestCompute_SquareGamma(t *testing.T) {
	p, err := kpath.New([]lattice.Vec{{0, 0}, {math.Pi, 0}}, []string{"Γ", "X"}, 4)
	require.NoError(t, err)

	bs, err := lt.Compute(context.Background(), lattice.Square(lattice.Label("J")), p,
		interaction.Heisenberg, lt.DefaultOptions())
	require.NoError(t, err)

	assert.InDelta(t, 2, bs.Bands[0][0][0], 1e-12)
	assert.InDelta(t, 0, bs.Constraints[0][0][0], 1e-12)

	energies, constraints := bs.Lowest()
	require.Len(t, energies, 1)
	// cos(kx) + 1 on Γ→X; the last sample before X is the minimum
	assert.InDelta(t, math.Cos(3*math.Pi/4)+1, energies[0], 1e-12)
	assert.InDelta(t, 0, constraints[0], 1e-12)
}

func TestCompute_Errors(t *testing.T) {
	ctx := context.Background()
	p := gxm(t, 4)

	bad := lt.DefaultOptions()
	bad.Workers = 0
	_, err := lt.Compute(ctx, dimer(), p, interaction.Heisenberg, bad)
	require.ErrorIs(t, err, lt.ErrBadOption)

	bad = lt.DefaultOptions()
	bad.EpsilonDegenerate = math.NaN()
	_, err = lt.Compute(ctx, dimer(), p, interaction.Heisenberg, bad)
	require.ErrorIs(t, err, lt.ErrBadOption)

	_, err = lt.Compute(ctx, dimer(), nil, interaction.Heisenberg, lt.DefaultOptions())
	require.ErrorIs(t, err, kpath.ErrTooFewPoints)

	p3, err := kpath.New([]lattice.Vec{{0, 0, 0}, {1, 0, 0}}, nil, 2)
	require.NoError(t, err)
	_, err = lt.Compute(ctx, dimer(), p3, interaction.Heisenberg, lt.DefaultOptions())
	require.ErrorIs(t, err, lattice.ErrDimensionMismatch)

	_, err = lt.Compute(ctx, &lattice.Lattice{}, p, interaction.Heisenberg, lt.DefaultOptions())
	require.ErrorIs(t, err, lattice.ErrNoSites)

	nan := func(lattice.Bond) *mat.Dense { return mat.NewDense(1, 1, []float64{math.NaN()}) }
	_, err = lt.Compute(ctx, dimer(), p, nan, lt.DefaultOptions())
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestCompute_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := lt.Compute(ctx, dimer(), gxm(t, 4), interaction.Heisenberg, lt.DefaultOptions())
	require.ErrorIs(t, err, context.Canceled)
}
