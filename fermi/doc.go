// Package fermi samples points of a 2D Fermi surface.
//
// 🚀 What is sampled?
//
//	For a tight-binding lattice with scalar hopping, the residual
//
//	  E(k) = min_i (λ_i(H(k)) − E_F)²
//
//	vanishes exactly on the Fermi surface. Sample draws random momenta in a
//	box and drives each one onto the surface with a damped Newton iteration
//	along the residual gradient.
//
// ✨ What this package provides:
//   - Sample:   exactly N accepted points, each with E(k) < Epsilon
//   - Residual: E(k) for a single momentum, for re-evaluation
//   - Refold:   Wigner–Seitz reduction of a momentum into the first
//     Brillouin zone
//
// ⚙️ Usage:
//
//	opts := fermi.DefaultOptions()
//	opts.Seed = 42
//	pts, err := fermi.Sample(ctx, lattice.Square(lattice.Label("J")), 200, opts)
//
// Determinism:
//
//	Point i draws from its own RNG stream derived from (Seed, i), so the
//	output does not depend on Options.Workers. Seed == 0 selects a fixed
//	default stream.
//
// Termination:
//
//	Each point gets at most MaxAttempts random starts. Exhausting them
//	returns ErrInfeasible; an attempt that goes flat, diverges or runs out of
//	Newton steps is discarded and logged at debug level.
package fermi
