package lattice

import "math"

// Axis-specific bond labels used by the honeycomb preset.
const (
	LabelTx = "tx"
	LabelTy = "ty"
	LabelTz = "tz"
)

// Square returns a one-site square lattice with unit lattice vectors and one
// nearest-neighbour bond along each axis, all carrying strength s.
//
// The tight-binding band of this lattice under the scalar policy is
// ε(k) = s·(cos kx + cos ky).
func Square(s Strength) *Lattice {
	return &Lattice{
		Sites:   []Vec{{0, 0}},
		Vectors: []Vec{{1, 0}, {0, 1}},
		Bonds: []Bond{
			{From: 1, To: 1, Strength: s, Wrap: []int{1, 0}},
			{From: 1, To: 1, Strength: s, Wrap: []int{0, 1}},
		},
	}
}

// Chain returns a one-site chain embedded in 2D with a single bond along x.
// Useful as a flat-in-ky toy model.
func Chain(s Strength) *Lattice {
	return &Lattice{
		Sites:   []Vec{{0, 0}},
		Vectors: []Vec{{1, 0}, {0, 1}},
		Bonds: []Bond{
			{From: 1, To: 1, Strength: s, Wrap: []int{1, 0}},
		},
	}
}

// HoneycombKitaev returns the two-site honeycomb lattice with its three bond
// directions labelled tx, ty, tz (Kitaev convention).
//
//	a1 = (1, 0), a2 = (1/2, √3/2)
//	A  = (0, 0), B  = (1/2, 1/(2√3))
func HoneycombKitaev() *Lattice {
	h := math.Sqrt(3) / 2
	return &Lattice{
		Sites:   []Vec{{0, 0}, {0.5, 1 / (2 * math.Sqrt(3))}},
		Vectors: []Vec{{1, 0}, {0.5, h}},
		Bonds: []Bond{
			{From: 1, To: 2, Strength: Label(LabelTx), Wrap: []int{0, 0}},
			{From: 1, To: 2, Strength: Label(LabelTy), Wrap: []int{-1, 0}},
			{From: 1, To: 2, Strength: Label(LabelTz), Wrap: []int{0, -1}},
		},
	}
}
