// Package kpath provides piecewise-linear paths through momentum space.
//
// A Path is an ordered list of breakpoints (high-symmetry points) with
// labels and a sample count (resolution) per segment. Segment s runs from
// Points[s] to Points[s+1] and is sampled at t = j/res, j = 0..res-1, so the
// end of one segment is the first sample of the next.
//
// Invariants:
//   - len(Points) ≥ 2, all breakpoints share one dimension;
//   - len(Resolutions) == len(Points)-1, every entry ≥ 1;
//   - TotalResolution() == Σ Resolutions.
package kpath

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/kspace/lattice"
)

// Path is a labelled polyline through k-space.
type Path struct {
	Points      []lattice.Vec
	Labels      []string
	Resolutions []int
}

// New builds a path with the same resolution on every segment.
// labels may be nil; otherwise it must have one entry per breakpoint.
func New(points []lattice.Vec, labels []string, resolution int) (*Path, error) {
	if len(points) < 2 {
		return nil, ErrTooFewPoints
	}
	res := make([]int, len(points)-1)
	for i := range res {
		res[i] = resolution
	}

	return NewWithResolutions(points, labels, res)
}

// NewWithResolutions builds a path with explicit per-segment resolutions.
//
// Errors: ErrTooFewPoints, ErrDimensionMismatch, ErrLabelCount, ErrResolution.
func NewWithResolutions(points []lattice.Vec, labels []string, res []int) (*Path, error) {
	p := &Path{
		Points:      clonePoints(points),
		Labels:      append([]string(nil), labels...),
		Resolutions: append([]int(nil), res...),
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate checks the path invariants.
func (p *Path) Validate() error {
	if len(p.Points) < 2 {
		return ErrTooFewPoints
	}
	d := len(p.Points[0])
	for i, pt := range p.Points {
		if len(pt) != d {
			return fmt.Errorf("breakpoint %d: %w", i, ErrDimensionMismatch)
		}
	}
	if len(p.Labels) != 0 && len(p.Labels) != len(p.Points) {
		return fmt.Errorf("%d labels for %d breakpoints: %w", len(p.Labels), len(p.Points), ErrLabelCount)
	}
	if len(p.Resolutions) != len(p.Points)-1 {
		return fmt.Errorf("%d resolutions for %d segments: %w", len(p.Resolutions), len(p.Points)-1, ErrResolution)
	}
	for s, r := range p.Resolutions {
		if r < 1 {
			return fmt.Errorf("segment %d resolution %d: %w", s, r, ErrResolution)
		}
	}

	return nil
}

// Dim returns the momentum dimension of the path.
func (p *Path) Dim() int { return len(p.Points[0]) }

// NumSegments returns len(Points)-1.
func (p *Path) NumSegments() int { return len(p.Points) - 1 }

// TotalResolution returns Σ Resolutions.
func (p *Path) TotalResolution() int {
	total := 0
	for _, r := range p.Resolutions {
		total += r
	}

	return total
}

// SegmentLength returns |Points[s+1] − Points[s]|.
func (p *Path) SegmentLength(s int) float64 {
	return floats.Distance(p.Points[s+1], p.Points[s], 2)
}

// Samples returns the Resolutions[s] momentum points of segment s,
// k_j = P_s + (j/res)·(P_{s+1} − P_s).
//
// Complexity: O(res·D).
func (p *Path) Samples(s int) []lattice.Vec {
	res := p.Resolutions[s]
	from, to := p.Points[s], p.Points[s+1]
	out := make([]lattice.Vec, res)

	var (
		j int
		t float64
	)
	for j = 0; j < res; j++ {
		t = float64(j) / float64(res)
		k := make(lattice.Vec, len(from))
		for d := range from {
			k[d] = from[d] + t*(to[d]-from[d])
		}
		out[j] = k
	}

	return out
}

// Ticks returns the cumulative path distance at every breakpoint, starting at 0.
// Renderers use it to place labelled ticks.
func (p *Path) Ticks() []float64 {
	ticks := make([]float64, len(p.Points))
	for s := 0; s < p.NumSegments(); s++ {
		ticks[s+1] = ticks[s] + p.SegmentLength(s)
	}

	return ticks
}

// Clone returns a deep copy of p.
func (p *Path) Clone() *Path {
	return &Path{
		Points:      clonePoints(p.Points),
		Labels:      append([]string(nil), p.Labels...),
		Resolutions: append([]int(nil), p.Resolutions...),
	}
}

// WithTotalResolution returns a copy of p whose per-segment resolutions sum to
// total and are proportional to segment lengths (largest-remainder rounding,
// at least one sample per segment). p is not modified.
//
// Degenerate paths with all segments of zero length are split uniformly.
//
// Errors: ErrResolution when total < NumSegments().
//
// Complexity: O(S log S).
func (p *Path) WithTotalResolution(total int) (*Path, error) {
	segs := p.NumSegments()
	if total < segs {
		return nil, fmt.Errorf("total %d for %d segments: %w", total, segs, ErrResolution)
	}

	lengths := make([]float64, segs)
	var sum float64
	for s := range lengths {
		lengths[s] = p.SegmentLength(s)
		sum += lengths[s]
	}
	if sum == 0 || math.IsNaN(sum) || math.IsInf(sum, 0) {
		for s := range lengths {
			lengths[s] = 1
		}
		sum = float64(segs)
	}

	raw := make([]float64, segs)
	res := make([]int, segs)
	assigned := 0
	for s := range raw {
		raw[s] = float64(total) * lengths[s] / sum
		res[s] = int(math.Floor(raw[s]))
		if res[s] < 1 {
			res[s] = 1
		}
		assigned += res[s]
	}

	// order segments by fractional remainder, largest first
	order := make([]int, segs)
	for s := range order {
		order[s] = s
	}
	sort.SliceStable(order, func(a, b int) bool {
		return raw[order[a]]-float64(res[order[a]]) > raw[order[b]]-float64(res[order[b]])
	})

	for i := 0; assigned < total; i = (i + 1) % segs {
		res[order[i]]++
		assigned++
	}
	for i := segs - 1; assigned > total; i = (i - 1 + segs) % segs {
		if res[order[i]] > 1 {
			res[order[i]]--
			assigned--
		}
	}

	out := p.Clone()
	out.Resolutions = res

	return out, nil
}

func clonePoints(points []lattice.Vec) []lattice.Vec {
	out := make([]lattice.Vec, len(points))
	for i, pt := range points {
		out[i] = append(lattice.Vec(nil), pt...)
	}

	return out
}
