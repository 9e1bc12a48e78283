package lt

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/kspace/interaction"
	"github.com/katalvlaran/kspace/kpath"
	"github.com/katalvlaran/kspace/lattice"
	"github.com/katalvlaran/kspace/matrix"
)

const opCompute = "lt.Compute"

// Compute evaluates the Luttinger-Tisza band structure of l under the bond
// policy fn along path p.
//
// Implementation:
//   - Stage 1: validate options and path; apply the resolution override on a
//     copy of p (p itself is never modified).
//   - Stage 2: build one interaction.Assembler; allocate zeroed
//     [segment][band][sample] arrays.
//   - Stage 3: for every sample k (t = j/res on each segment): J(k),
//     Hermitian eigen-decomposition, bands ← eigenvalues, clusters ←
//     GroupDegenerate, constraint of each cluster broadcast to its bands.
//
// Errors:
//   - ErrBadOption, kpath.* (invalid path), lattice.* / interaction.*
//     (invalid lattice or policy), matrix.ErrNaNInf / ErrNotHermitian /
//     ErrEigenFailed (per sample, wrapped with segment and sample index),
//     ctx.Err() on cancellation.
//
// Complexity: O(S·R·(d·N)³) time; O(S·R·d·N) memory for the result.
func Compute(ctx context.Context, l *lattice.Lattice, p *kpath.Path, fn interaction.BondMatrixFn, opts Options) (*Bandstructure, error) {
	// Stage 1: Validate input
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", opCompute, err)
	}
	if p == nil {
		return nil, fmt.Errorf("%s: nil path: %w", opCompute, kpath.ErrTooFewPoints)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", opCompute, err)
	}
	path := p.Clone()
	if opts.Resolution > 0 {
		var err error
		if path, err = p.WithTotalResolution(opts.Resolution); err != nil {
			return nil, fmt.Errorf("%s: %w", opCompute, err)
		}
	}

	// Stage 2: Prepare assembler and output
	asm, err := interaction.NewAssembler(l, fn, interaction.WithHermitize(opts.EnforceHermitian))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCompute, err)
	}
	if path.Dim() != l.Dim() {
		return nil, fmt.Errorf("%s: path dimension %d, lattice dimension %d: %w",
			opCompute, path.Dim(), l.Dim(), lattice.ErrDimensionMismatch)
	}
	nb := asm.Size()
	segs := path.NumSegments()
	bs := &Bandstructure{
		Path:        path,
		SpinDim:     asm.SpinDim(),
		Bands:       make([][][]float64, segs),
		Constraints: make([][][]float64, segs),
	}
	for s := 0; s < segs; s++ {
		bs.Bands[s] = make([][]float64, nb)
		bs.Constraints[s] = make([][]float64, nb)
		for b := 0; b < nb; b++ {
			bs.Bands[s][b] = make([]float64, path.Resolutions[s])
			bs.Constraints[s][b] = make([]float64, path.Resolutions[s])
		}
	}

	log := opts.logger()
	log.Debug("lt: computing band structure",
		"segments", segs, "bands", nb, "samples", path.TotalResolution(), "workers", opts.Workers)

	// Stage 3: Evaluate samples
	e := &sampler{asm: asm, eps: opts.EpsilonDegenerate, out: bs, log: log}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

loop:
	for s := 0; s < segs; s++ {
		for j, k := range path.Samples(s) {
			if gctx.Err() != nil {
				break loop
			}
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				return e.sample(s, j, k)
			})
		}
	}
	if err = g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", opCompute, err)
	}
	if err = ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", opCompute, err)
	}

	log.Debug("lt: band structure done", "clusters", e.clusters.Load())

	return bs, nil
}

// sampler evaluates one k-point into its pre-allocated slots.
type sampler struct {
	asm      *interaction.Assembler
	eps      float64
	out      *Bandstructure
	log      *slog.Logger
	clusters atomic.Int64
}

func (e *sampler) sample(s, j int, k lattice.Vec) error {
	h, err := e.asm.At(k)
	if err != nil {
		return fmt.Errorf("segment %d sample %d: %w", s, j, err)
	}
	vals, vecs, err := matrix.EigenHermitian(h)
	if err != nil {
		return fmt.Errorf("segment %d sample %d: %w", s, j, err)
	}

	for b, v := range vals {
		e.out.Bands[s][b][j] = v
	}

	d := e.asm.SpinDim()
	for _, cluster := range GroupDegenerate(vals, e.eps) {
		c, err := evaluateConstraint(columns(vecs, cluster), d, e.log)
		if err != nil {
			return fmt.Errorf("segment %d sample %d: %w", s, j, err)
		}
		for _, b := range cluster {
			e.out.Constraints[s][b][j] = c
		}
		e.clusters.Add(1)
	}

	return nil
}

// columns extracts the eigenvector columns listed in idx.
func columns(v *mat.CDense, idx []int) [][]complex128 {
	n, _ := v.Dims()
	out := make([][]complex128, len(idx))
	for c, col := range idx {
		vec := make([]complex128, n)
		for i := range vec {
			vec[i] = v.At(i, col)
		}
		out[c] = vec
	}

	return out
}
