package fermi

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/kspace/lattice"
)

const opSample = "fermi.Sample"

// Sample returns exactly n points k with E(k) < opts.Epsilon.
//
// Implementation:
//   - Stage 1: validate options; build the scalar-hopping assembler once;
//     resolve reciprocal vectors when RefoldToFirstBZ is set.
//   - Stage 2: search points concurrently (≤ Workers), point i on its own
//     RNG stream, each writing only out[i].
//   - Stage 3: per attempt, draw k uniformly in [Lower, Upper]; accept at
//     once when E(k) < Epsilon, else iterate
//     k ← k − SlowdownFactor·g·E(k)/|g|² with g the forward-difference
//     gradient (step EpsilonK), accepting as soon as E(k) < Epsilon.
//     |g|² < 1e-20 (flat), |g|² > 1e20 (divergent) or MaxNewtonSteps without
//     success discard the attempt.
//
// Errors:
//   - ErrBadOption; lattice.* / interaction.* for an invalid or non-planar
//     lattice; matrix.* when H(k) cannot be diagonalized.
//   - ErrInfeasible when a point exhausts MaxAttempts.
//   - ctx.Err() on cancellation, checked between attempts.
//
// Complexity: O(n·attempts·MaxNewtonSteps·(N³)) in the worst case.
func Sample(ctx context.Context, l *lattice.Lattice, n int, opts Options) ([]Point, error) {
	// Stage 1: Validate and prepare
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", opSample, err)
	}
	if n < 0 {
		return nil, fmt.Errorf("%s: %d points: %w", opSample, n, ErrBadOption)
	}
	b, err := newBand(l, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSample, err)
	}
	var recip []lattice.Vec
	if opts.RefoldToFirstBZ {
		if recip, err = lattice.Reciprocal(l); err != nil {
			return nil, fmt.Errorf("%s: refold: %w", opSample, err)
		}
	}

	log := opts.logger()
	log.Debug("fermi: sampling", "points", n, "fermi_energy", opts.FermiEnergy, "workers", opts.Workers)

	// Stage 2: Fan out over points
	out := make([]Point, n)
	s := &searcher{band: b, opts: opts, recip: recip, log: log}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i := range out {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			p, err := s.find(gctx, i)
			if err != nil {
				return err
			}
			out[i] = p
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", opSample, err)
	}
	if err = ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", opSample, err)
	}

	return out, nil
}

// searcher holds the read-only state shared by all point searches.
type searcher struct {
	band  *band
	opts  Options
	recip []lattice.Vec
	log   *slog.Logger
}

// outcome of a single attempt.
type outcome int

const (
	accepted outcome = iota
	flat
	divergent
	exhausted
)

func (o outcome) String() string {
	switch o {
	case accepted:
		return "accepted"
	case flat:
		return "flat"
	case divergent:
		return "divergent"
	default:
		return "exhausted"
	}
}

// find runs random starts for point idx until one is accepted.
func (s *searcher) find(ctx context.Context, idx int) (Point, error) {
	r := streamRNG(s.opts.Seed, idx)
	for attempt := 1; attempt <= s.opts.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return Point{}, err
		}
		k, res, err := s.attempt(r)
		if err != nil {
			return Point{}, fmt.Errorf("point %d: %w", idx, err)
		}
		if res == accepted {
			if s.recip != nil {
				k = Refold(k, s.recip)
			}
			s.log.Debug("fermi: point accepted", "point", idx, "attempts", attempt)
			return k, nil
		}
		s.log.Debug("fermi: attempt discarded", "point", idx, "attempt", attempt, "reason", res.String())
	}

	return Point{}, fmt.Errorf("point %d after %d attempts: %w", idx, s.opts.MaxAttempts, ErrInfeasible)
}

// attempt performs one damped Newton search from a random start.
func (s *searcher) attempt(r *rand.Rand) (Point, outcome, error) {
	o := s.opts
	k := uniformIn(r, o.Lower, o.Upper)
	e, err := s.band.residual(k)
	if err != nil {
		return k, exhausted, err
	}
	if e < o.Epsilon {
		return k, accepted, nil
	}

	var (
		step   int
		grad   Point
		shift  Point
		g2     float64
		scale  float64
		probed float64
	)
	for step = 0; step < o.MaxNewtonSteps; step++ {
		// forward differences along both axes
		for i := range grad {
			shift = k
			shift[i] += o.EpsilonK
			if probed, err = s.band.residual(shift); err != nil {
				return k, exhausted, err
			}
			grad[i] = (probed - e) / o.EpsilonK
		}
		g2 = grad[0]*grad[0] + grad[1]*grad[1]
		if g2 < flatGradient {
			return k, flat, nil
		}
		if g2 > divergentGradient {
			return k, divergent, nil
		}

		scale = o.SlowdownFactor * e / g2
		k[0] -= grad[0] * scale
		k[1] -= grad[1] * scale
		if e, err = s.band.residual(k); err != nil {
			return k, exhausted, err
		}
		if e < o.Epsilon {
			return k, accepted, nil
		}
	}

	return k, exhausted, nil
}
