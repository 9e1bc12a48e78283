package lt_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kspace/lt"
)

func TestEvaluateConstraint_Singlet(t *testing.T) {
	// equal site blocks of a d=3, N=2 vector
	r := complex(1/math.Sqrt2, 0)
	c, err := lt.EvaluateConstraint([][]complex128{{r, 0, 0, 0, r, 0}}, 3)
	require.NoError(t, err)
	assert.InDelta(t, 0, c, 1e-15)

	// lengths 0.8 and 0.2 deviate from their mean 0.5 by 0.3 each
	c, err = lt.EvaluateConstraint([][]complex128{{complex(math.Sqrt(0.8), 0), complex(0, math.Sqrt(0.2))}}, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.6, c, 1e-12)
}

func TestEvaluateConstraint_SingletIgnoresNorm(t *testing.T) {
	// uniform but not unit length: only self-consistency is measured
	c, err := lt.EvaluateConstraint([][]complex128{{2, 2, 2}}, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0, c, 1e-15)
}

func TestEvaluateConstraint_ClusterFindsUnitMix(t *testing.T) {
	r := 1 / math.Sqrt2
	vecs := [][]complex128{
		{complex(r, 0), complex(r, 0)},
		{complex(r, 0), complex(-r, 0)},
	}
	// α = (√2, 0) gives unit length on both sites
	c, err := lt.EvaluateConstraint(vecs, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0, c, 1e-4)
}

func TestEvaluateConstraint_ClusterNeverWorseThanStart(t *testing.T) {
	// Σ_c v_c at α = (1,1) is (1,0,0,1): value |1−1| + |1−1| = 0 already
	vecs := [][]complex128{
		{1, 0, 0, 0},
		{0, 0, 0, 1},
	}
	c, err := lt.EvaluateConstraint(vecs, 2)
	require.NoError(t, err)
	assert.InDelta(t, 0, c, 1e-12)
	assert.GreaterOrEqual(t, c, 0.0)
}

func TestEvaluateConstraint_Errors(t *testing.T) {
	_, err := lt.EvaluateConstraint(nil, 1)
	require.ErrorIs(t, err, lt.ErrBadCluster)

	_, err = lt.EvaluateConstraint([][]complex128{{1, 0, 0}}, 2)
	require.ErrorIs(t, err, lt.ErrBadCluster)

	_, err = lt.EvaluateConstraint([][]complex128{{1, 0}, {1}}, 1)
	require.ErrorIs(t, err, lt.ErrBadCluster)

	_, err = lt.EvaluateConstraint([][]complex128{{1}}, 0)
	require.ErrorIs(t, err, lt.ErrBadCluster)
}
