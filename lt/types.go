package lt

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/kspace/kpath"
)

// Defaults.
const (
	// DefaultEpsilonDegenerate is the gap below which neighbouring eigenvalues
	// are treated as one degenerate eigenspace.
	DefaultEpsilonDegenerate = 1e-6

	// DefaultWorkers runs samples sequentially.
	DefaultWorkers = 1
)

// Options configures Compute.
//
// Fields:
//   - Resolution:        0 keeps the path's per-segment resolutions; a
//     positive value is redistributed over segments by length
//     (kpath.Path.WithTotalResolution).
//   - EnforceHermitian:  Hermitize J(k) before decomposition.
//   - EpsilonDegenerate: degeneracy gap for GroupDegenerate.
//   - Workers:           concurrent samples (≥ 1).
//   - Logger:            debug records; nil discards.
type Options struct {
	Resolution        int
	EnforceHermitian  bool
	EpsilonDegenerate float64
	Workers           int
	Logger            *slog.Logger
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Resolution:        0,
		EnforceHermitian:  false,
		EpsilonDegenerate: DefaultEpsilonDegenerate,
		Workers:           DefaultWorkers,
		Logger:            nil,
	}
}

// Validate checks option ranges.
func (o Options) Validate() error {
	if o.Resolution < 0 {
		return fmt.Errorf("Resolution %d: %w", o.Resolution, ErrBadOption)
	}
	if math.IsNaN(o.EpsilonDegenerate) || math.IsInf(o.EpsilonDegenerate, 0) || o.EpsilonDegenerate < 0 {
		return fmt.Errorf("EpsilonDegenerate %g: %w", o.EpsilonDegenerate, ErrBadOption)
	}
	if o.Workers < 1 {
		return fmt.Errorf("Workers %d: %w", o.Workers, ErrBadOption)
	}

	return nil
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}

	return o.Logger
}

// Bandstructure is the immutable result of Compute.
//
// Bands and Constraints are indexed [segment][band][sample]; within one
// sample the bands ascend. Constraints holds the violation scalar of the
// degenerate eigenspace each band belongs to. Path is the (possibly
// re-resolved) path the samples were taken on.
type Bandstructure struct {
	Path        *kpath.Path
	SpinDim     int
	Bands       [][][]float64
	Constraints [][][]float64
}

// NumBands returns d·N.
func (b *Bandstructure) NumBands() int {
	if len(b.Bands) == 0 {
		return 0
	}

	return len(b.Bands[0])
}

// Lowest returns, per segment, the minimum of the lowest band and the
// constraint value at that minimum: the Luttinger-Tisza ground-state
// candidate on each segment.
func (b *Bandstructure) Lowest() (energies, constraints []float64) {
	energies = make([]float64, len(b.Bands))
	constraints = make([]float64, len(b.Bands))
	for s := range b.Bands {
		energies[s] = math.Inf(1)
		for j, e := range b.Bands[s][0] {
			if e < energies[s] {
				energies[s] = e
				constraints[s] = b.Constraints[s][0][j]
			}
		}
	}

	return energies, constraints
}
