package lt

import (
	"fmt"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat"
)

// Minimizer budget for degenerate clusters.
const (
	constraintFuncEvaluations = 5000
	constraintConvergeAbs     = 1e-12
	constraintConvergeIters   = 200
)

// EvaluateConstraint returns the constraint-violation scalar of one
// eigenvector cluster. Each eigenvector has d·N entries laid out as N
// consecutive site blocks of length spinDim.
//
//   - one vector: Σ_s |ℓ_s − mean(ℓ)|, ℓ_s = Σ_c |v_{s,c}|²
//     (self-consistency of the site lengths, not unit length);
//   - m ≥ 2 vectors: min over real α ∈ ℝᵐ of Σ_s | ‖Σ_c α_c·v_c‖²_s − 1 |
//     (unit length), minimized by NelderMead from α = (1,…,1).
//
// A minimizer that stops early contributes its best value; only malformed
// input is an error.
//
// Errors: ErrBadCluster.
func EvaluateConstraint(vecs [][]complex128, spinDim int) (float64, error) {
	return evaluateConstraint(vecs, spinDim, nil)
}

func evaluateConstraint(vecs [][]complex128, spinDim int, log *slog.Logger) (float64, error) {
	if err := validateCluster(vecs, spinDim); err != nil {
		return 0, err
	}
	if len(vecs) == 1 {
		return singletConstraint(vecs[0], spinDim), nil
	}

	return clusterConstraint(vecs, spinDim, log), nil
}

func validateCluster(vecs [][]complex128, spinDim int) error {
	if len(vecs) == 0 {
		return fmt.Errorf("empty cluster: %w", ErrBadCluster)
	}
	if spinDim < 1 {
		return fmt.Errorf("spin dimension %d: %w", spinDim, ErrBadCluster)
	}
	n := len(vecs[0])
	if n == 0 || n%spinDim != 0 {
		return fmt.Errorf("length %d with spin dimension %d: %w", n, spinDim, ErrBadCluster)
	}
	for i, v := range vecs {
		if len(v) != n {
			return fmt.Errorf("vector %d has length %d, want %d: %w", i, len(v), n, ErrBadCluster)
		}
	}

	return nil
}

// siteLengths returns ℓ_s = Σ_c |v_{s,c}|² per site block.
func siteLengths(v []complex128, spinDim int) []float64 {
	sites := len(v) / spinDim
	out := make([]float64, sites)
	var (
		s, c int
		z    complex128
	)
	for s = 0; s < sites; s++ {
		for c = 0; c < spinDim; c++ {
			z = v[s*spinDim+c]
			out[s] += real(z)*real(z) + imag(z)*imag(z)
		}
	}

	return out
}

func singletConstraint(v []complex128, spinDim int) float64 {
	lengths := siteLengths(v, spinDim)
	mean := stat.Mean(lengths, nil)

	var dev float64
	for _, l := range lengths {
		dev += math.Abs(l - mean)
	}

	return dev
}

func clusterConstraint(vecs [][]complex128, spinDim int, log *slog.Logger) float64 {
	m := len(vecs)
	n := len(vecs[0])

	objective := func(alpha []float64) float64 {
		var (
			i, c  int
			a     complex128
			mixed = make([]complex128, n)
		)
		for c = 0; c < m; c++ {
			a = complex(alpha[c], 0)
			for i = 0; i < n; i++ {
				mixed[i] += a * vecs[c][i]
			}
		}

		var total float64
		for _, l := range siteLengths(mixed, spinDim) {
			total += math.Abs(l - 1)
		}

		return total
	}

	initial := make([]float64, m)
	for i := range initial {
		initial[i] = 1
	}
	best := objective(initial)

	problem := optimize.Problem{Func: objective}
	settings := &optimize.Settings{
		FuncEvaluations: constraintFuncEvaluations,
		Converger: &optimize.FunctionConverge{
			Absolute:   constraintConvergeAbs,
			Iterations: constraintConvergeIters,
		},
	}
	result, err := optimize.Minimize(problem, initial, settings, &optimize.NelderMead{})
	if err != nil && log != nil {
		log.Debug("constraint minimizer stopped early", "cluster", m, "err", err)
	}
	if result != nil && !math.IsNaN(result.F) && result.F < best {
		best = result.F
	}

	return best
}
