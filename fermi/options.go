package fermi

import (
	"fmt"
	"log/slog"
	"math"
)

// Point is a momentum in the plane.
type Point = [2]float64

// Defaults.
const (
	DefaultEpsilon        = 1e-10
	DefaultEpsilonK       = 1e-10
	DefaultSlowdownFactor = 0.75
	DefaultMaxNewtonSteps = 100
	DefaultMaxAttempts    = 100000
	DefaultWorkers        = 1
)

// Gradient guards of the Newton step.
const (
	flatGradient      = 1e-20
	divergentGradient = 1e20
)

// Options configures Sample and Residual.
//
// Fields:
//   - FermiEnergy:      reference energy E_F.
//   - EnforceHermitian: Hermitize H(k) before diagonalization.
//   - Epsilon:          acceptance threshold on E(k).
//   - EpsilonK:         forward-difference step of the gradient.
//   - SlowdownFactor:   damping of every Newton step (1 = undamped).
//   - Lower, Upper:     per-axis box of random starts.
//   - MaxNewtonSteps:   iterations per attempt.
//   - RefoldToFirstBZ:  map accepted points into the first Brillouin zone.
//   - MaxAttempts:      random starts per point before ErrInfeasible.
//   - Seed:             root of the per-point RNG streams; 0 is a fixed default.
//   - Workers:          points searched concurrently.
//   - Logger:           debug records; nil discards.
type Options struct {
	FermiEnergy      float64
	EnforceHermitian bool
	Epsilon          float64
	EpsilonK         float64
	SlowdownFactor   float64
	Lower, Upper     Point
	MaxNewtonSteps   int
	RefoldToFirstBZ  bool
	MaxAttempts      int
	Seed             int64
	Workers          int
	Logger           *slog.Logger
}

// DefaultOptions returns the documented defaults; the start box is [−2π, 2π]².
func DefaultOptions() Options {
	return Options{
		FermiEnergy:      0,
		EnforceHermitian: false,
		Epsilon:          DefaultEpsilon,
		EpsilonK:         DefaultEpsilonK,
		SlowdownFactor:   DefaultSlowdownFactor,
		Lower:            Point{-2 * math.Pi, -2 * math.Pi},
		Upper:            Point{2 * math.Pi, 2 * math.Pi},
		MaxNewtonSteps:   DefaultMaxNewtonSteps,
		RefoldToFirstBZ:  false,
		MaxAttempts:      DefaultMaxAttempts,
		Seed:             0,
		Workers:          DefaultWorkers,
		Logger:           nil,
	}
}

// Validate checks option ranges.
func (o Options) Validate() error {
	if !finite(o.FermiEnergy) {
		return fmt.Errorf("FermiEnergy %g: %w", o.FermiEnergy, ErrBadOption)
	}
	if !positive(o.Epsilon) {
		return fmt.Errorf("Epsilon %g: %w", o.Epsilon, ErrBadOption)
	}
	if !positive(o.EpsilonK) {
		return fmt.Errorf("EpsilonK %g: %w", o.EpsilonK, ErrBadOption)
	}
	if !positive(o.SlowdownFactor) {
		return fmt.Errorf("SlowdownFactor %g: %w", o.SlowdownFactor, ErrBadOption)
	}
	for i := range o.Lower {
		if !finite(o.Lower[i]) || !finite(o.Upper[i]) || o.Lower[i] >= o.Upper[i] {
			return fmt.Errorf("bounds axis %d [%g, %g]: %w", i, o.Lower[i], o.Upper[i], ErrBadOption)
		}
	}
	if o.MaxNewtonSteps < 0 {
		return fmt.Errorf("MaxNewtonSteps %d: %w", o.MaxNewtonSteps, ErrBadOption)
	}
	if o.MaxAttempts < 1 {
		return fmt.Errorf("MaxAttempts %d: %w", o.MaxAttempts, ErrBadOption)
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

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

func positive(x float64) bool { return finite(x) && x > 0 }
