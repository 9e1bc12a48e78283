// Package lt computes Luttinger-Tisza band structures of classical spin
// models along a k-space path.
//
// 🚀 What is the Luttinger-Tisza method?
//
//	The fixed-length constraint |S_i| = 1 on every site is relaxed to a
//	single global constraint. The ground state then lies in the lowest
//	eigenspace of the momentum-space interaction matrix J(k); whether a true
//	spin configuration exists there is measured by how far the eigenvectors
//	violate the per-site length constraint.
//
// ✨ What this package provides:
//   - Compute:       bands λ_b(k) along a kpath.Path plus, for each band and
//     sample, the constraint-violation scalar of its (possibly degenerate)
//     eigenspace
//   - GroupDegenerate: contiguous clustering of sorted eigenvalues
//   - EvaluateConstraint: closed form for singlets, NelderMead minimization
//     (gonum/optimize) for degenerate clusters
//
// ⚙️ Usage:
//
//	opts := lt.DefaultOptions()
//	bs, err := lt.Compute(ctx, lat, path, interaction.HeisenbergKitaev, opts)
//	// bs.Bands[segment][band][sample], bs.Constraints[segment][band][sample]
//
// Concurrency:
//
//	Samples are independent; Options.Workers bounds an errgroup fan-out.
//	Each goroutine writes only its own pre-allocated slots, so results do not
//	depend on the worker count.
package lt
