package kpath_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kspace/kpath"
	"github.com/katalvlaran/kspace/lattice"
)

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

func TestNew_Validation(t *testing.T) {
	_, err := kpath.New([]lattice.Vec{{0, 0}}, nil, 1)
	require.ErrorIs(t, err, kpath.ErrTooFewPoints)

	_, err = kpath.New([]lattice.Vec{{0, 0}, {1}}, nil, 1)
	require.ErrorIs(t, err, kpath.ErrDimensionMismatch)

	_, err = kpath.New([]lattice.Vec{{0, 0}, {1, 0}}, []string{"A"}, 1)
	require.ErrorIs(t, err, kpath.ErrLabelCount)

	_, err = kpath.New([]lattice.Vec{{0, 0}, {1, 0}}, nil, 0)
	require.ErrorIs(t, err, kpath.ErrResolution)

	_, err = kpath.NewWithResolutions([]lattice.Vec{{0, 0}, {1, 0}, {1, 1}}, nil, []int{3})
	require.ErrorIs(t, err, kpath.ErrResolution)
}

func TestNew_CopiesInput(t *testing.T) {
	pts := []lattice.Vec{{0, 0}, {1, 0}}
	p, err := kpath.New(pts, nil, 2)
	require.NoError(t, err)
	pts[1][0] = 42
	assert.Equal(t, 1.0, p.Points[1][0])
}

func TestSamples(t *testing.T) {
	p := gxm(t, 4)
	require.Equal(t, 2, p.NumSegments())
	require.Equal(t, 8, p.TotalResolution())

	s0 := p.Samples(0)
	require.Len(t, s0, 4)
	assert.Equal(t, lattice.Vec{0, 0}, s0[0])
	assert.InDelta(t, math.Pi*3/4, s0[3][0], 1e-15)

	s1 := p.Samples(1)
	assert.Equal(t, lattice.Vec{math.Pi, 0}, s1[0])
	assert.InDelta(t, math.Pi/4, s1[1][1], 1e-15)
}

func TestTicks(t *testing.T) {
	p := gxm(t, 4)
	ticks := p.Ticks()
	require.Len(t, ticks, 3)
	assert.Equal(t, 0.0, ticks[0])
	assert.InDelta(t, math.Pi, ticks[1], 1e-15)
	assert.InDelta(t, 2*math.Pi, ticks[2], 1e-15)
}

func TestWithTotalResolution(t *testing.T) {
	p, err := kpath.New([]lattice.Vec{{0, 0}, {3, 0}, {3, 1}}, nil, 5)
	require.NoError(t, err)

	for _, total := range []int{2, 3, 7, 40, 101} {
		q, err := p.WithTotalResolution(total)
		require.NoError(t, err)
		assert.Equal(t, total, q.TotalResolution(), "total %d", total)
		for _, r := range q.Resolutions {
			assert.GreaterOrEqual(t, r, 1)
		}
	}

	q, err := p.WithTotalResolution(40)
	require.NoError(t, err)
	assert.Equal(t, []int{30, 10}, q.Resolutions)
	assert.Equal(t, []int{5, 5}, p.Resolutions, "receiver must not change")

	_, err = p.WithTotalResolution(1)
	require.ErrorIs(t, err, kpath.ErrResolution)
}

func TestWithTotalResolution_ZeroLength(t *testing.T) {
	p, err := kpath.New([]lattice.Vec{{1, 1}, {1, 1}, {1, 1}}, nil, 1)
	require.NoError(t, err)
	q, err := p.WithTotalResolution(6)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 3}, q.Resolutions)
}
