// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Vec is a real vector in D dimensions (site position, lattice vector, momentum).
type Vec = []float64

// Bond couples site From to site To (both 1-based).
//
// Wrap holds one integer per lattice vector: the number of translations the
// bond crosses. A nil or empty Wrap means the bond stays inside the home cell.
type Bond struct {
	From     int
	To       int
	Strength Strength
	Wrap     []int
}

// Lattice is an ordered basis of sites, lattice vectors and bonds.
// Vectors may be empty for finite (non-periodic) systems.
type Lattice struct {
	Sites   []Vec
	Vectors []Vec
	Bonds   []Bond
}

// Dim returns the spatial dimension D, taken from the first site (0 if empty).
func (l *Lattice) Dim() int {
	if len(l.Sites) == 0 {
		return 0
	}

	return len(l.Sites[0])
}

// NumSites returns the number of basis sites.
func (l *Lattice) NumSites() int { return len(l.Sites) }

// Validate checks the structural invariants used by the assemblers.
//
// Order of checks: sites present → site dimensions → lattice vector
// dimensions → per bond: endpoint range, wrap length.
//
// Errors:
//   - ErrNoSites, ErrDimensionMismatch, ErrSiteIndex (wrapped with position).
//
// Complexity: O(N·D + B·V).
func (l *Lattice) Validate() error {
	if len(l.Sites) == 0 {
		return ErrNoSites
	}

	d := l.Dim()
	var i int
	for i = range l.Sites {
		if len(l.Sites[i]) != d {
			return fmt.Errorf("site %d has dimension %d, want %d: %w", i+1, len(l.Sites[i]), d, ErrDimensionMismatch)
		}
	}
	for i = range l.Vectors {
		if len(l.Vectors[i]) != d {
			return fmt.Errorf("lattice vector %d has dimension %d, want %d: %w", i, len(l.Vectors[i]), d, ErrDimensionMismatch)
		}
	}

	n := l.NumSites()
	for i = range l.Bonds {
		b := l.Bonds[i]
		if b.From < 1 || b.From > n || b.To < 1 || b.To > n {
			return fmt.Errorf("bond %d (%d→%d) with %d sites: %w", i, b.From, b.To, n, ErrSiteIndex)
		}
		if len(b.Wrap) != 0 && len(b.Wrap) != len(l.Vectors) {
			return fmt.Errorf("bond %d wrap length %d, want %d: %w", i, len(b.Wrap), len(l.Vectors), ErrDimensionMismatch)
		}
	}

	return nil
}

// Displacement returns δ = r_to − r_from + Σ_a wrap[a]·A[a] for b.
// It assumes l.Validate() succeeded for b.
//
// Complexity: O(D·V).
func (l *Lattice) Displacement(b Bond) Vec {
	d := make(Vec, l.Dim())
	floats.SubTo(d, l.Sites[b.To-1], l.Sites[b.From-1])
	for a, w := range b.Wrap {
		if w != 0 {
			floats.AddScaled(d, float64(w), l.Vectors[a])
		}
	}

	return d
}
